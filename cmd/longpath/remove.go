package main

import (
	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/cmd"
	"github.com/mutagen-io/longpath/pkg/filesystem"
)

// remove removes a single file or directory.
func remove(env *environment, target *filesystem.Path) error {
	entryType, err := target.EntryType()
	if err != nil {
		return err
	}
	if entryType == filesystem.EntryTypeFile {
		return env.filesystem.DeleteFile(target)
	} else if removeConfiguration.contents {
		return env.filesystem.DeleteFiles(target, removeConfiguration.recursive)
	}
	return env.filesystem.DeleteDirectory(target, removeConfiguration.recursive)
}

func removeMain(_ *cobra.Command, arguments []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	targets, err := env.paths(arguments)
	if err != nil {
		return err
	}
	for _, target := range targets {
		if err := remove(env, target); err != nil {
			return err
		}
		env.logger.Infof("Removed %s", target)
	}

	// Success.
	return nil
}

var removeCommand = &cobra.Command{
	Use:   "remove [flags] <path>...",
	Short: "Remove files and directories",
	Args:  cmd.MinimumArguments(1),
	Run:   cmd.Mainify(removeMain),
}

var removeConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// recursive indicates whether or not directory contents should be removed.
	recursive bool
	// contents indicates whether or not only the files within directories
	// should be removed.
	contents bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := removeCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&removeConfiguration.help, "help", "h", false, "Show help information")

	// Wire up removal flags.
	flags.BoolVarP(&removeConfiguration.recursive, "recursive", "r", false, "Remove directory contents recursively")
	flags.BoolVar(&removeConfiguration.contents, "files-only", false, "Remove only the files within directories, keeping the directory structure")
}
