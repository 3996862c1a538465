package main

import (
	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/cmd"
)

func moveMain(_ *cobra.Command, arguments []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	endpoints, err := env.paths(arguments)
	if err != nil {
		return err
	}
	return env.filesystem.MoveFile(endpoints[0], endpoints[1])
}

var moveCommand = &cobra.Command{
	Use:   "move <source> <target>",
	Short: "Move or rename a file or directory",
	Args:  cmd.ExactArguments(2),
	Run:   cmd.Mainify(moveMain),
}

var moveConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := moveCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&moveConfiguration.help, "help", "h", false, "Show help information")
}
