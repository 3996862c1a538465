package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/cmd"
)

func attributesGetMain(_ *cobra.Command, arguments []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	targets, err := env.paths(arguments)
	if err != nil {
		return err
	}
	for _, target := range targets {
		attributes, err := env.filesystem.GetAttributes(target)
		if err != nil {
			return err
		}
		if attributesGetConfiguration.numeric {
			fmt.Printf("0x%08X  %s\n", uint32(attributes), target)
		} else {
			fmt.Printf("%s  %s\n", attributes, target)
		}
	}

	// Success.
	return nil
}

var attributesGetCommand = &cobra.Command{
	Use:   "get [flags] <path>...",
	Short: "Show the attributes of entries",
	Args:  cmd.MinimumArguments(1),
	Run:   cmd.Mainify(attributesGetMain),
}

var attributesGetConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// numeric indicates whether or not attribute masks should be printed in
	// hexadecimal.
	numeric bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := attributesGetCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&attributesGetConfiguration.help, "help", "h", false, "Show help information")

	// Wire up output flags.
	flags.BoolVarP(&attributesGetConfiguration.numeric, "numeric", "n", false, "Print attribute masks in hexadecimal")
}
