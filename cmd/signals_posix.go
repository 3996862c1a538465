//go:build !windows

package cmd

import (
	"os"
	"syscall"
)

// TerminationSignals are those signals which the longpath command considers to
// be requesting termination.
var TerminationSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}
