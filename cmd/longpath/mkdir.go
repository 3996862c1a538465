package main

import (
	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/cmd"
)

func mkdirMain(_ *cobra.Command, arguments []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	targets, err := env.paths(arguments)
	if err != nil {
		return err
	}
	for _, target := range targets {
		if err := env.filesystem.CreateDirectory(target, mkdirConfiguration.parents); err != nil {
			return err
		}
	}

	// Success.
	return nil
}

var mkdirCommand = &cobra.Command{
	Use:   "mkdir [flags] <directory>...",
	Short: "Create directories",
	Args:  cmd.MinimumArguments(1),
	Run:   cmd.Mainify(mkdirMain),
}

var mkdirConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// parents indicates whether or not missing parent directories should be
	// created.
	parents bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := mkdirCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&mkdirConfiguration.help, "help", "h", false, "Show help information")

	// Wire up creation flags.
	flags.BoolVarP(&mkdirConfiguration.parents, "parents", "p", false, "Create missing parent directories")
}
