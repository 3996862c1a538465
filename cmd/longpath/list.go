package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/cmd"
	"github.com/mutagen-io/longpath/pkg/filesystem"
	"github.com/mutagen-io/longpath/pkg/logging"
	"github.com/mutagen-io/longpath/pkg/must"
)

// printEntry prints an enumerated entry.
func printEntry(logger *logging.Logger, entry *filesystem.Entry, extended, long, human bool) {
	name := entry.Path.Regular()
	if extended {
		name = entry.Path.Extended()
	}
	if !long {
		must.Fprintf(os.Stdout, logger, "%s\n", name)
		return
	}
	size := "<DIR>"
	if !entry.IsDirectory() {
		size = formatSize(entry.Metadata.Size, human)
	} else if entry.Metadata.SymbolicLink {
		size = "<LINK>"
	}
	must.Fprintf(os.Stdout, logger, "%s  %10s  %-24s  %s\n",
		formatTime(entry.Metadata.LastWriteTime), size, entry.Metadata.Attributes, name,
	)
}

func listMain(_ *cobra.Command, arguments []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	directory, err := env.filesystem.Path(arguments[0])
	if err != nil {
		return err
	}
	excluder, err := newExcluder(directory, listConfiguration.exclude)
	if err != nil {
		return err
	}

	// Compute enumeration options, falling back to the configured defaults.
	options := filesystem.EnumerateOptions{
		Pattern:     listConfiguration.pattern,
		Recursive:   listConfiguration.recursive,
		ErrorPolicy: listConfiguration.errorPolicy.Policy(env.configuration.Enumeration.ErrorPolicy),
	}
	if options.Pattern == "" {
		options.Pattern = env.configuration.Enumeration.Pattern
	}
	if listConfiguration.files {
		options.Filter |= filesystem.FilterFiles
	}
	if listConfiguration.directories {
		options.Filter |= filesystem.FilterDirectories
	}
	human := env.configuration.Output.HumanReadableSizes && !listConfiguration.bytes

	// Watch for termination requests.
	ctx, cancel := cmd.TerminationContext()
	defer cancel()

	// Enumerate. Breaking out of the loop releases any open find cursors.
	var count int
	for entry, err := range env.filesystem.Enumerate(directory, options) {
		if err != nil {
			return err
		} else if ctx.Err() != nil {
			return errors.New("enumeration interrupted")
		} else if excluder.excluded(entry.Path) {
			continue
		}
		printEntry(env.logger, entry, listConfiguration.extended, listConfiguration.long, human)
		count++
	}
	if listConfiguration.long {
		fmt.Println(formatCount(count), "entries")
	}

	// Success.
	return nil
}

var listCommand = &cobra.Command{
	Use:   "list [flags] <directory>",
	Short: "List the entries of a directory",
	Args:  cmd.ExactArguments(1),
	Run:   cmd.Mainify(listMain),
}

var listConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// pattern is the find pattern.
	pattern string
	// recursive indicates whether or not subdirectories should be listed.
	recursive bool
	// files restricts output to files.
	files bool
	// directories restricts output to directories.
	directories bool
	// errorPolicy is the failure handling policy.
	errorPolicy cmd.ErrorPolicyValue
	// exclude are doublestar patterns for entries to omit from output.
	exclude []string
	// extended indicates whether or not paths should be printed in extended
	// form.
	extended bool
	// long indicates whether or not metadata should be printed.
	long bool
	// bytes indicates whether or not sizes should be shown as exact byte
	// counts.
	bytes bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := listCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&listConfiguration.help, "help", "h", false, "Show help information")

	// Wire up enumeration flags.
	flags.StringVarP(&listConfiguration.pattern, "pattern", "p", "", "Specify the find pattern (* and ? wildcards)")
	flags.BoolVarP(&listConfiguration.recursive, "recursive", "r", false, "List subdirectories recursively")
	flags.BoolVarP(&listConfiguration.files, "files", "f", false, "List files")
	flags.BoolVarP(&listConfiguration.directories, "directories", "d", false, "List directories")
	flags.Var(&listConfiguration.errorPolicy, "error-policy", "Specify the failure handling policy (propagate|suppress)")
	flags.StringSliceVarP(&listConfiguration.exclude, "exclude", "e", nil, "Omit entries matching the specified doublestar pattern")

	// Wire up output flags.
	flags.BoolVarP(&listConfiguration.extended, "extended", "x", false, "Print paths in extended-length form")
	flags.BoolVarP(&listConfiguration.long, "long", "l", false, "Print metadata with each entry")
	flags.BoolVarP(&listConfiguration.bytes, "bytes", "b", false, "Show sizes as exact byte counts")
}
