package main

import (
	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/cmd"
)

func attributesSetMain(_ *cobra.Command, arguments []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	targets, err := env.paths(arguments)
	if err != nil {
		return err
	}
	for _, target := range targets {
		if err := env.filesystem.SetAttributes(target, attributesSetConfiguration.attributes.Attributes()); err != nil {
			return err
		}
	}

	// Success.
	return nil
}

var attributesSetCommand = &cobra.Command{
	Use:   "set [flags] <path>...",
	Short: "Replace the attributes of entries",
	Args:  cmd.MinimumArguments(1),
	Run:   cmd.Mainify(attributesSetMain),
}

var attributesSetConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// attributes is the new attribute mask.
	attributes cmd.AttributesValue
}

func init() {
	// Grab a handle for the command line flags.
	flags := attributesSetCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&attributesSetConfiguration.help, "help", "h", false, "Show help information")

	// Wire up attribute flags.
	flags.VarP(&attributesSetConfiguration.attributes, "attribute", "a", "Specify attributes to set (e.g. readonly,hidden)")
}
