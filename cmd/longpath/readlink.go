package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/cmd"
)

func readlinkMain(_ *cobra.Command, arguments []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	links, err := env.paths(arguments)
	if err != nil {
		return err
	}
	for _, link := range links {
		target, err := env.filesystem.ReadSymbolicLink(link)
		if err != nil {
			return err
		}
		fmt.Println(target)
	}

	// Success.
	return nil
}

var readlinkCommand = &cobra.Command{
	Use:   "readlink <link>...",
	Short: "Show the targets of symbolic links",
	Args:  cmd.MinimumArguments(1),
	Run:   cmd.Mainify(readlinkMain),
}

var readlinkConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := readlinkCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&readlinkConfiguration.help, "help", "h", false, "Show help information")
}
