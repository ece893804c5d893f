package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/conn-castle/mockfactory/internal/config"
	"github.com/conn-castle/mockfactory/internal/messages"
	"github.com/conn-castle/mockfactory/internal/seed"
	"github.com/conn-castle/mockfactory/internal/structure"
	"github.com/conn-castle/mockfactory/internal/svws"
	"github.com/conn-castle/mockfactory/internal/terminal"
)

// rootFlags are the persistent flags shared by all subcommands.
type rootFlags struct {
	configPath    string
	structurePath string
	yes           bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "config.json", messages.RootFlagConfig)
	cmd.PersistentFlags().StringVar(&flags.structurePath, "structure", "", messages.RootFlagStructure)
	cmd.PersistentFlags().BoolVarP(&flags.yes, "yes", "y", false, messages.RootFlagYes)

	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newPatchSchoolCmd(flags))
	cmd.AddCommand(newClassesCmd(flags))
	cmd.AddCommand(newLeadersCmd(flags))
	cmd.AddCommand(newSeedCmd(flags))
	return cmd
}

// newRunner wires a seeding runner from the validated config and flags.
// randSeed fixes the leadership selection when non-zero.
func newRunner(flags *rootFlags, randSeed int64, out io.Writer) (*seed.Runner, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	cachePath, err := cfg.ResolvedCachePath(flags.configPath)
	if err != nil {
		return nil, err
	}

	var catalog *structure.Catalog
	if flags.structurePath != "" {
		catalog, err = structure.Load(flags.structurePath)
		if err != nil {
			return nil, err
		}
	}

	if randSeed == 0 {
		randSeed = time.Now().UnixNano()
	}

	return seed.NewRunner(svws.NewClient(cfg), seed.Options{
		TotalStudents:   cfg.TotalStudents,
		TargetClassSize: cfg.TargetClassSize,
		CachePath:       cachePath,
		Catalog:         catalog,
		Rand:            rand.New(rand.NewSource(randSeed)),
		Out:             out,
	})
}

// confirmWrite asks before writing to the server. --yes skips the
// prompt; without a terminal the prompt cannot run and --yes is required.
func confirmWrite(flags *rootFlags, target string) error {
	if flags.yes {
		return nil
	}
	if !isInteractiveFunc() {
		return errors.New(messages.ConfirmRequiresTTY)
	}
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf(messages.ConfirmWritePromptFmt, target)).
			Value(&confirmed),
	))
	if err := runFormFunc(form); err != nil {
		return err
	}
	if !confirmed {
		return errors.New(messages.ConfirmAborted)
	}
	return nil
}

var (
	isInteractiveFunc = terminal.IsInteractive
	runFormFunc       = func(form *huh.Form) error { return form.Run() }
)
