package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/cmd"
	"github.com/mutagen-io/longpath/pkg/filesystem/paths"
)

// printResult prints a parsed path.
func printResult(argument string, result *paths.Result) {
	fmt.Println("Path:", argument)
	fmt.Println("\tRegular:", result.Regular)
	fmt.Println("\tExtended:", result.Extended)
	fmt.Println("\tLocation:", result.Location)
	fmt.Println("\tForm:", result.Form)
	if result.IsRoot {
		fmt.Println("\tRoot: yes")
	} else {
		fmt.Println("\tName:", result.Name)
		fmt.Println("\tParent:", result.Parent)
		fmt.Println("\tRoot:", result.Root)
	}
	if paths.ExceedsRegularLimit(result.Extended) {
		fmt.Println("\tRequires extended form: yes")
	}
}

func parseMain(_ *cobra.Command, arguments []string) error {
	for _, argument := range arguments {
		var result *paths.Result
		var err error
		if parseConfiguration.workingDirectory != "" {
			result, err = paths.ParseRelative(argument, parseConfiguration.workingDirectory)
		} else {
			result, err = paths.Parse(argument)
		}
		if err != nil {
			return errors.Wrapf(err, "unable to parse %q", argument)
		}
		printResult(argument, result)
	}

	// Success.
	return nil
}

var parseCommand = &cobra.Command{
	Use:   "parse <path>...",
	Short: "Classify and decompose paths without accessing the filesystem",
	Args:  cmd.MinimumArguments(1),
	Run:   cmd.Mainify(parseMain),
}

var parseConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// workingDirectory is the directory against which relative paths are
	// resolved.
	workingDirectory string
}

func init() {
	// Grab a handle for the command line flags.
	flags := parseCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&parseConfiguration.help, "help", "h", false, "Show help information")

	// Wire up resolution flags.
	flags.StringVarP(&parseConfiguration.workingDirectory, "working-directory", "w", "", "Resolve relative paths against the specified directory")
}
