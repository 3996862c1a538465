package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/cmd"
	"github.com/mutagen-io/longpath/pkg/longpath"
	"github.com/mutagen-io/longpath/pkg/must"
)

func rootMain(command *cobra.Command, _ []string) error {
	// If no commands were given, then print help information and bail. We don't
	// have to worry about warning about arguments being present here (which
	// would be incorrect usage) because arguments can't even reach this point
	// (they will be mistaken for subcommands and a error will be displayed).
	must.CommandHelp(command, nil)

	// Success.
	return nil
}

var rootCommand = &cobra.Command{
	Use:     "longpath",
	Version: longpath.Version,
	Short:   "longpath inspects and manipulates Windows paths beyond the 260 character limit",
	Run:     cmd.Mainify(rootMain),
}

var rootConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Disable Cobra's use of mousetrap.
	cobra.MousetrapHelpText = ""

	// Set the template used by the version flag.
	rootCommand.SetVersionTemplate("longpath version {{ .Version }}\n")

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		parseCommand,
		statCommand,
		listCommand,
		treeCommand,
		mkdirCommand,
		mktempCommand,
		removeCommand,
		copyCommand,
		moveCommand,
		attributesCommand,
		touchCommand,
		linkCommand,
		readlinkCommand,
		versionCommand,
		legalCommand,
	)
}

func main() {
	// Check if a mintty terminal requires relaunching inside winpty.
	cmd.HandleTerminalCompatibility()

	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
