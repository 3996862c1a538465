package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Mainify is a small utility that wraps a non-standard Cobra entry point (one
// returning an error) and generates a standard Cobra entry point. It allows
// entry points to rely on defer-based cleanup (such as closing find cursors
// and handles), which wouldn't occur if the entry point terminated the process
// itself.
func Mainify(entry func(*cobra.Command, []string) error) func(*cobra.Command, []string) {
	return func(command *cobra.Command, arguments []string) {
		if err := entry(command, arguments); err != nil {
			Fatal(err)
		}
	}
}

// DisallowArguments is a Cobra arguments validator that disallows positional
// arguments.
func DisallowArguments(_ *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errors.New("unexpected arguments provided")
	}
	return nil
}

// ExactArguments returns a Cobra arguments validator that requires exactly
// count positional arguments.
func ExactArguments(count int) cobra.PositionalArgs {
	return func(_ *cobra.Command, arguments []string) error {
		if len(arguments) != count {
			return errors.Errorf("expected %d argument(s), received %d", count, len(arguments))
		}
		return nil
	}
}

// MinimumArguments returns a Cobra arguments validator that requires at least
// count positional arguments.
func MinimumArguments(count int) cobra.PositionalArgs {
	return func(_ *cobra.Command, arguments []string) error {
		if len(arguments) < count {
			return errors.Errorf("expected at least %d argument(s), received %d", count, len(arguments))
		}
		return nil
	}
}
