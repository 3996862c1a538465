package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/cmd"
	"github.com/mutagen-io/longpath/pkg/filesystem"
)

// printFileDetail prints the detail of a file.
func printFileDetail(detail *filesystem.FileDetail, human bool) {
	fmt.Println("File:", detail.FullName())
	fmt.Println("\tExtended:", detail.ExtendedName())
	fmt.Println("\tSize:", formatSize(detail.Size(), human))
	fmt.Println("\tAttributes:", detail.Attributes())
	fmt.Println("\tCreated:", formatTime(detail.CreationTime()))
	fmt.Println("\tAccessed:", formatTime(detail.LastAccessTime()))
	fmt.Println("\tModified:", formatTime(detail.LastWriteTime()))
	if detail.Metadata.SymbolicLink {
		fmt.Println("\tSymbolic link: yes")
	}
}

// printDirectoryDetail prints the detail of a directory. Roots only print
// their names.
func printDirectoryDetail(detail *filesystem.DirectoryDetail) {
	fmt.Println("Directory:", detail.FullName())
	fmt.Println("\tExtended:", detail.ExtendedName())
	if detail.Metadata == nil {
		fmt.Println("\tRoot: yes")
		return
	}
	fmt.Println("\tAttributes:", detail.Metadata.Attributes)
	fmt.Println("\tCreated:", formatTime(detail.Metadata.CreationTime))
	fmt.Println("\tAccessed:", formatTime(detail.Metadata.LastAccessTime))
	fmt.Println("\tModified:", formatTime(detail.Metadata.LastWriteTime))
	if detail.Metadata.SymbolicLink {
		fmt.Println("\tSymbolic link: yes")
	}
}

func statMain(_ *cobra.Command, arguments []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	targets, err := env.paths(arguments)
	if err != nil {
		return err
	}
	human := env.configuration.Output.HumanReadableSizes && !statConfiguration.bytes

	for _, target := range targets {
		entryType, err := target.EntryType()
		if err != nil {
			return err
		}
		if entryType == filesystem.EntryTypeDirectory {
			detail, err := env.filesystem.ReadDirectoryDetail(target)
			if err != nil {
				return err
			}
			printDirectoryDetail(detail)
		} else {
			detail, err := env.filesystem.ReadFileDetail(target)
			if err != nil {
				return err
			}
			printFileDetail(detail, human)
		}
	}

	// Success.
	return nil
}

var statCommand = &cobra.Command{
	Use:   "stat <path>...",
	Short: "Show the metadata of files and directories",
	Args:  cmd.MinimumArguments(1),
	Run:   cmd.Mainify(statMain),
}

var statConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// bytes indicates whether or not sizes should be shown as exact byte
	// counts.
	bytes bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := statCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&statConfiguration.help, "help", "h", false, "Show help information")

	// Wire up output flags.
	flags.BoolVarP(&statConfiguration.bytes, "bytes", "b", false, "Show sizes as exact byte counts")
}
