package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/cmd"
	"github.com/mutagen-io/longpath/pkg/filesystem"
)

// parseTimestamp parses an optional RFC 3339 timestamp flag value.
func parseTimestamp(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	result, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s timestamp", name)
	}
	return &result, nil
}

// touchTimes computes the timestamp updates requested by the touch flags. If
// none are specified, the access and modification times are set to now.
func touchTimes(now time.Time) (filesystem.Times, error) {
	var times filesystem.Times
	var err error
	if times.Created, err = parseTimestamp("creation", touchConfiguration.created); err != nil {
		return times, err
	} else if times.Accessed, err = parseTimestamp("access", touchConfiguration.accessed); err != nil {
		return times, err
	} else if times.Written, err = parseTimestamp("modification", touchConfiguration.modified); err != nil {
		return times, err
	}
	if times.Created == nil && times.Accessed == nil && times.Written == nil {
		times.Accessed = &now
		times.Written = &now
	}
	return times, nil
}

func touchMain(_ *cobra.Command, arguments []string) error {
	times, err := touchTimes(time.Now())
	if err != nil {
		return err
	}
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	targets, err := env.paths(arguments)
	if err != nil {
		return err
	}
	for _, target := range targets {
		if !target.Exists() {
			if touchConfiguration.noCreate {
				continue
			} else if err := env.filesystem.WriteFile(target, nil); err != nil {
				return err
			}
		}
		if err := env.filesystem.SetTimes(target, times); err != nil {
			return err
		}
	}

	// Success.
	return nil
}

var touchCommand = &cobra.Command{
	Use:   "touch [flags] <path>...",
	Short: "Create files or update their timestamps",
	Args:  cmd.MinimumArguments(1),
	Run:   cmd.Mainify(touchMain),
}

var touchConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// noCreate indicates whether or not missing files should be skipped.
	noCreate bool
	// created is the creation timestamp.
	created string
	// accessed is the last access timestamp.
	accessed string
	// modified is the last modification timestamp.
	modified string
}

func init() {
	// Grab a handle for the command line flags.
	flags := touchCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&touchConfiguration.help, "help", "h", false, "Show help information")

	// Wire up timestamp flags.
	flags.BoolVarP(&touchConfiguration.noCreate, "no-create", "c", false, "Skip missing files instead of creating them")
	flags.StringVar(&touchConfiguration.created, "created", "", "Set the creation time (RFC 3339)")
	flags.StringVar(&touchConfiguration.accessed, "accessed", "", "Set the last access time (RFC 3339)")
	flags.StringVar(&touchConfiguration.modified, "modified", "", "Set the last modification time (RFC 3339)")
}
