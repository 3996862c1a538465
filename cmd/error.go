package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Warning prints a warning message to standard error.
func Warning(message string) {
	color.New(color.FgYellow).Fprintln(color.Error, "Warning:", message)
}

// Error prints an error message to standard error.
func Error(err error) {
	color.New(color.FgRed).Fprintln(color.Error, "Error:", err)
}

// Fatal prints an error message to standard error and then terminates the
// process with an error exit code.
func Fatal(err error) {
	Error(err)
	os.Exit(1)
}

// Usage prints a usage error and the command's usage to standard error and
// then terminates the process with an error exit code.
func Usage(usage string, err error) {
	Error(err)
	fmt.Fprint(os.Stderr, usage)
	os.Exit(1)
}
