package host

import (
	"log/slog"

	"github.com/slatehq/slate-sdk/domain/ports"
)

// Option defines a functional option for configuring the Runtime.
type Option func(*Runtime)

// WithRegistry configures the runtime with a program registry.
func WithRegistry(reg ports.ProgramRegistry) Option {
	return func(rt *Runtime) {
		rt.registry = reg
	}
}

// WithLogger configures the runtime's logger.
func WithLogger(log *slog.Logger) Option {
	return func(rt *Runtime) {
		rt.log = log
	}
}
