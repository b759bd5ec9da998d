package adapter

import (
	"time"

	"go.uber.org/zap"
)

// ExecOption is a functional option for configuring ExecRunner
type ExecOption func(*ExecRunner)

// WithTimeout bounds every command invocation. Zero disables the bound.
func WithTimeout(d time.Duration) ExecOption {
	return func(r *ExecRunner) {
		r.timeout = d
	}
}

// WithLogger sets the logger used for command tracing
func WithLogger(logger *zap.Logger) ExecOption {
	return func(r *ExecRunner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithLookPath replaces the binary lookup, mainly for tests
func WithLookPath(lookPath func(string) (string, error)) ExecOption {
	return func(r *ExecRunner) {
		r.lookPath = lookPath
	}
}
