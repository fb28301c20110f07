package commands

import (
	"context"
	"time"

	"github.com/goliatone/go-pagetree/internal/logging"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

// DefaultCommandTimeout bounds a render or preview command when the
// commands config leaves the timeout unset.
const DefaultCommandTimeout = 30 * time.Second

// commandContext returns the context a command body runs under. A nil ctx
// becomes Background and a non-positive timeout adds no deadline.
func commandContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// EnsureLogger falls back to logging.NoOp.
func EnsureLogger(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return logging.NoOp()
	}
	return logger
}
