package cmd

import (
	"os"
	"syscall"
)

// TerminationSignals are those signals which the longpath command considers to
// be requesting termination. SIGINT is emulated by Go on Ctrl-C in console
// environments.
var TerminationSignals = []os.Signal{
	syscall.SIGINT,
}
