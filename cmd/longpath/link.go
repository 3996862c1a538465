package main

import (
	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/cmd"
	"github.com/mutagen-io/longpath/pkg/filesystem"
	"github.com/mutagen-io/longpath/pkg/filesystem/paths"
)

func linkMain(_ *cobra.Command, arguments []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	link, err := env.filesystem.Path(arguments[0])
	if err != nil {
		return err
	}
	target := arguments[1]

	// Unless explicitly specified, create a directory link if the target
	// resolves to an existing directory. Relative targets are relative to the
	// directory containing the link.
	directory := linkConfiguration.directory
	if !directory {
		candidate := target
		if resolved, err := paths.Resolve(target, link.ParentPath()); err == nil {
			candidate = resolved
		}
		if resolved, err := env.filesystem.Path(candidate); err == nil {
			if entryType, err := resolved.EntryType(); err == nil {
				directory = entryType == filesystem.EntryTypeDirectory
			}
		}
	}

	return env.filesystem.CreateSymbolicLink(link, target, directory)
}

var linkCommand = &cobra.Command{
	Use:   "link [flags] <link> <target>",
	Short: "Create a symbolic link",
	Args:  cmd.ExactArguments(2),
	Run:   cmd.Mainify(linkMain),
}

var linkConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// directory indicates whether or not a directory link should be created.
	directory bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := linkCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&linkConfiguration.help, "help", "h", false, "Show help information")

	// Wire up link flags.
	flags.BoolVarP(&linkConfiguration.directory, "directory", "d", false, "Create a directory link")
}
