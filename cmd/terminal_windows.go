package cmd

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"

	isatty "github.com/mattn/go-isatty"
)

// HandleTerminalCompatibility restarts the current process inside a terminal
// compatibility emulator if necessary. It handles mintty consoles (such as
// those of Git for Windows), which require relaunching the command inside
// winpty for console output and Ctrl-C handling to behave.
func HandleTerminalCompatibility() {
	// Nothing is required unless standard output is a mintty-based terminal.
	if !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return
	}

	// Locate winpty and the current executable.
	winpty, err := exec.LookPath("winpty")
	if err != nil {
		Fatal(errors.New("running inside mintty terminal and unable to locate winpty"))
	}
	executable, err := os.Executable()
	if err != nil {
		Fatal(errors.Wrap(err, "running inside mintty terminal and unable to locate current executable"))
	}

	// Relaunch with the original arguments and forward the exit code.
	relaunch := exec.Command(winpty, append([]string{executable}, os.Args[1:]...)...)
	relaunch.Stdin = os.Stdin
	relaunch.Stdout = os.Stdout
	relaunch.Stderr = os.Stderr
	if err := relaunch.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			Fatal(errors.Wrap(err, "unable to relaunch inside winpty"))
		}
	}
	os.Exit(relaunch.ProcessState.ExitCode())
}
