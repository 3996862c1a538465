package main

import (
	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/cmd"
	"github.com/mutagen-io/longpath/pkg/must"
)

func attributesMain(command *cobra.Command, _ []string) error {
	// If no commands were given, then print help information and bail.
	must.CommandHelp(command, nil)

	// Success.
	return nil
}

var attributesCommand = &cobra.Command{
	Use:   "attributes",
	Short: "Query and modify entry attributes",
	Args:  cmd.DisallowArguments,
	Run:   cmd.Mainify(attributesMain),
}

var attributesConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := attributesCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&attributesConfiguration.help, "help", "h", false, "Show help information")

	// Register commands.
	attributesCommand.AddCommand(
		attributesGetCommand,
		attributesSetCommand,
		attributesAddCommand,
		attributesRemoveCommand,
	)
}
