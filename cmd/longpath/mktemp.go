package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/cmd"
)

func mktempMain(_ *cobra.Command, arguments []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	parent, err := env.filesystem.Path(arguments[0])
	if err != nil {
		return err
	}
	directory, err := env.filesystem.CreateTemporaryDirectory(parent)
	if err != nil {
		return err
	}
	fmt.Println(directory)

	// Success.
	return nil
}

var mktempCommand = &cobra.Command{
	Use:   "mktemp <parent>",
	Short: "Create a uniquely named temporary directory",
	Args:  cmd.ExactArguments(1),
	Run:   cmd.Mainify(mktempMain),
}

var mktempConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := mktempCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&mktempConfiguration.help, "help", "h", false, "Show help information")
}
