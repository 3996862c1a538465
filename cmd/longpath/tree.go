package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/cmd"
	"github.com/mutagen-io/longpath/pkg/filesystem"
	"github.com/mutagen-io/longpath/pkg/must"
)

func treeMain(_ *cobra.Command, arguments []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	directory, err := env.filesystem.Path(arguments[0])
	if err != nil {
		return err
	}
	policy := treeConfiguration.errorPolicy.Policy(env.configuration.Enumeration.ErrorPolicy)
	human := env.configuration.Output.HumanReadableSizes && !treeConfiguration.bytes

	// Capture the tree.
	tree, err := env.filesystem.Snapshot(directory, policy)
	if err != nil {
		return err
	}

	// Print the tree unless only the summary was requested.
	if !treeConfiguration.summary {
		tree.Walk(func(depth int, directory *filesystem.DirectoryMetadata, file *filesystem.FileDetail) bool {
			if treeConfiguration.depth >= 0 && depth > treeConfiguration.depth {
				return false
			}
			indent := strings.Repeat("  ", depth)
			if file != nil {
				if treeConfiguration.files {
					must.Fprintf(os.Stdout, env.logger, "%s%s (%s)\n", indent, file.Name(), formatSize(file.Size(), human))
				}
				return true
			}
			name := directory.Path.Name()
			if directory.Path.IsRoot() {
				name = strings.TrimSuffix(directory.Path.Regular(), `\`)
			}
			suffix := ""
			if directory.IsSymbolicLink() {
				suffix = " -> (symbolic link)"
			}
			must.Fprintf(os.Stdout, env.logger, "%s%s\\ [%s]%s\n", indent, name, formatSize(directory.Bytes(), human), suffix)
			return true
		})
	}

	// Print the summary.
	fmt.Printf("%s directories, %s files, %s\n",
		formatCount(tree.DirectoryCount()),
		formatCount(tree.FileCount()),
		formatSize(tree.Bytes(), human),
	)

	// Success.
	return nil
}

var treeCommand = &cobra.Command{
	Use:   "tree [flags] <directory>",
	Short: "Show a directory tree with aggregated sizes",
	Args:  cmd.ExactArguments(1),
	Run:   cmd.Mainify(treeMain),
}

var treeConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// errorPolicy is the failure handling policy.
	errorPolicy cmd.ErrorPolicyValue
	// depth is the maximum depth to print, or -1 for no limit.
	depth int
	// files indicates whether or not files should be printed.
	files bool
	// summary indicates whether or not only the summary should be printed.
	summary bool
	// bytes indicates whether or not sizes should be shown as exact byte
	// counts.
	bytes bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := treeCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&treeConfiguration.help, "help", "h", false, "Show help information")

	// Wire up traversal flags.
	flags.Var(&treeConfiguration.errorPolicy, "error-policy", "Specify the failure handling policy (propagate|suppress)")

	// Wire up output flags.
	flags.IntVarP(&treeConfiguration.depth, "depth", "L", -1, "Limit the printed depth")
	flags.BoolVarP(&treeConfiguration.files, "files", "f", false, "Print files as well as directories")
	flags.BoolVarP(&treeConfiguration.summary, "summary", "s", false, "Print only the summary")
	flags.BoolVarP(&treeConfiguration.bytes, "bytes", "b", false, "Show sizes as exact byte counts")
}
