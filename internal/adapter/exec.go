package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// DefaultCommandTimeout bounds a single xsetwacom or xrandr invocation
const DefaultCommandTimeout = 5 * time.Second

// ExecRunner runs commands with os/exec
type ExecRunner struct {
	timeout  time.Duration
	logger   *zap.Logger
	lookPath func(string) (string, error)
}

// NewExecRunner creates a runner with the default timeout
func NewExecRunner(opts ...ExecOption) *ExecRunner {
	r := &ExecRunner{
		timeout:  DefaultCommandTimeout,
		logger:   zap.NewNop(),
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes name with args and returns its standard output.
// Failures are reported as ErrToolUnavailable, ErrCommandTimeout or *CommandError.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	path, err := r.lookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrToolUnavailable, name, err)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	r.logger.Debug("running command", zap.String("name", name), zap.Strings("args", args))
	start := time.Now()

	cmd := exec.CommandContext(ctx, path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Children of the tool may keep the pipes open after it is killed.
	cmd.WaitDelay = time.Second

	err = cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("%w: %s after %s", ErrCommandTimeout, name, r.timeout)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &CommandError{
				Name:     name,
				Args:     args,
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		return "", fmt.Errorf("run %s: %w", name, err)
	}

	if !utf8.Valid(stdout.Bytes()) {
		return "", fmt.Errorf("%s: output is not valid UTF-8", name)
	}

	r.logger.Debug("command finished",
		zap.String("name", name),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("stdout_bytes", stdout.Len()))

	return stdout.String(), nil
}
