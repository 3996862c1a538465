package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/cmd"
)

func attributesAddMain(_ *cobra.Command, arguments []string) error {
	attributes := attributesAddConfiguration.attributes.Attributes()
	if attributes == 0 {
		return errors.New("no attributes specified")
	}
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	targets, err := env.paths(arguments)
	if err != nil {
		return err
	}
	for _, target := range targets {
		changed, err := env.filesystem.AddAttribute(target, attributes)
		if err != nil {
			return err
		} else if changed {
			env.logger.Infof("Added %s on %s", attributes, target)
		}
	}

	// Success.
	return nil
}

var attributesAddCommand = &cobra.Command{
	Use:   "add [flags] <path>...",
	Short: "Set attributes on entries",
	Args:  cmd.MinimumArguments(1),
	Run:   cmd.Mainify(attributesAddMain),
}

var attributesAddConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// attributes are the attribute bits to modify.
	attributes cmd.AttributesValue
}

func init() {
	// Grab a handle for the command line flags.
	flags := attributesAddCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&attributesAddConfiguration.help, "help", "h", false, "Show help information")

	// Wire up attribute flags.
	flags.VarP(&attributesAddConfiguration.attributes, "attribute", "a", "Specify attributes to modify (e.g. readonly,hidden)")
}
