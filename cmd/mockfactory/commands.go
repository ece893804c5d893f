package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/mockfactory/internal/config"
	"github.com/conn-castle/mockfactory/internal/messages"
	"github.com/conn-castle/mockfactory/internal/seed"
	"github.com/conn-castle/mockfactory/internal/svws"
)

func newPatchSchoolCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.PatchSchoolUse,
		Short: messages.PatchSchoolShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadLenient(flags.configPath)
			if err != nil {
				return err
			}
			client := svws.NewClient(cfg)
			if err := confirmWrite(flags, client.BaseURL()); err != nil {
				return err
			}
			runner, err := seed.NewRunner(client, seed.Options{Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			return runner.PatchSchool(cmd.Context())
		},
	}
}

func newClassesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ClassesUse,
		Short: messages.ClassesShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := newRunner(flags, 0, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := confirmWrite(flags, flags.configPath); err != nil {
				return err
			}
			_, err = runner.SeedClasses(cmd.Context())
			return err
		},
	}
}

func newLeadersCmd(flags *rootFlags) *cobra.Command {
	var randSeed int64
	cmd := &cobra.Command{
		Use:   messages.LeadersUse,
		Short: messages.LeadersShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := newRunner(flags, randSeed, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := confirmWrite(flags, flags.configPath); err != nil {
				return err
			}
			_, err = runner.AssignLeaders(cmd.Context())
			return err
		},
	}
	cmd.Flags().Int64Var(&randSeed, "seed", 0, messages.LeadersFlagSeed)
	return cmd
}

func newSeedCmd(flags *rootFlags) *cobra.Command {
	var randSeed int64
	cmd := &cobra.Command{
		Use:   messages.SeedUse,
		Short: messages.SeedShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := newRunner(flags, randSeed, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := confirmWrite(flags, flags.configPath); err != nil {
				return err
			}
			report, err := runner.SeedClasses(cmd.Context())
			if err != nil {
				return err
			}
			if report.Created == 0 {
				return nil
			}
			_, err = runner.AssignLeaders(cmd.Context())
			return err
		},
	}
	cmd.Flags().Int64Var(&randSeed, "seed", 0, messages.LeadersFlagSeed)
	return cmd
}
