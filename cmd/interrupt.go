package cmd

import (
	"context"
	"os/signal"
)

// TerminationContext returns a context that's cancelled when one of the
// TerminationSignals is received. The returned function must be called to
// stop signal delivery.
func TerminationContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), TerminationSignals...)
}
