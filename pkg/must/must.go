// Package must provides wrappers for cleanup operations whose failures can't be
// meaningfully propagated (typically because they run in a defer) but still
// deserve a warning.
package must

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/longpath/pkg/filesystem/native"
	"github.com/mutagen-io/longpath/pkg/logging"
)

func Fprint(w io.Writer, logger *logging.Logger, a ...any) {
	s := fmt.Sprint(a...)
	n, err := fmt.Fprint(w, s)
	if err != nil {
		logger.Warnf("Unable to Fprint '%s'; %s", s, err.Error())
	}
	if n < len(s) {
		logger.Warnf("Unable to Fprint all of '%s'; printed only %d of %d bytes", s, n, len(s))
	}
}

func Fprintf(w io.Writer, logger *logging.Logger, format string, a ...any) {
	Fprint(w, logger, fmt.Sprintf(format, a...))
}

func Close(c io.Closer, logger *logging.Logger) {
	err := c.Close()
	if err != nil {
		logger.Warnf("Unable to close: %s", err.Error())
	}
}

func FindClose(n native.Interface, cursor native.Cursor, logger *logging.Logger) {
	err := n.FindClose(cursor)
	if err != nil {
		logger.Warnf("Unable to close find cursor %d: %s", cursor, err.Error())
	}
}

func CloseHandle(n native.Interface, handle native.Handle, logger *logging.Logger) {
	err := n.CloseHandle(handle)
	if err != nil {
		logger.Warnf("Unable to close handle %d: %s", handle, err.Error())
	}
}

func CommandHelp(c *cobra.Command, logger *logging.Logger) {
	err := c.Help()
	if err != nil {
		logger.Warnf("Unable to help: %s", err.Error())
	}
}
