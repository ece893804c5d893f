package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/mockfactory/internal/config"
	"github.com/conn-castle/mockfactory/internal/messages"
	"github.com/conn-castle/mockfactory/internal/svws"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.CheckUse,
		Short: messages.CheckShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg, err := config.LoadLenient(flags.configPath)
			if err != nil {
				return err
			}
			client := svws.NewClient(cfg)
			_, _ = fmt.Fprintf(out, messages.CheckTargetFmt, client.BaseURL())
			if err := client.Alive(cmd.Context()); err != nil {
				return fmt.Errorf(messages.CheckDeadFmt, err)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.CheckAlive))
			return nil
		},
	}
}
