package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/cmd"
	"github.com/mutagen-io/longpath/pkg/longpath"
)

func legalMain(_ *cobra.Command, _ []string) error {
	// Print legal information.
	fmt.Print(longpath.LegalNotice)

	// Success.
	return nil
}

var legalCommand = &cobra.Command{
	Use:   "legal",
	Short: "Show legal information",
	Args:  cmd.DisallowArguments,
	Run:   cmd.Mainify(legalMain),
}

var legalConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := legalCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&legalConfiguration.help, "help", "h", false, "Show help information")
}
