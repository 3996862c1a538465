package main

import (
	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/cmd"
)

func copyMain(_ *cobra.Command, arguments []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	endpoints, err := env.paths(arguments)
	if err != nil {
		return err
	}
	return env.filesystem.CopyFile(endpoints[0], endpoints[1], copyConfiguration.force)
}

var copyCommand = &cobra.Command{
	Use:   "copy [flags] <source> <target>",
	Short: "Copy a file",
	Args:  cmd.ExactArguments(2),
	Run:   cmd.Mainify(copyMain),
}

var copyConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// force indicates whether or not an existing target should be overwritten.
	force bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := copyCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&copyConfiguration.help, "help", "h", false, "Show help information")

	// Wire up copy flags.
	flags.BoolVarP(&copyConfiguration.force, "force", "f", false, "Overwrite an existing target")
}
