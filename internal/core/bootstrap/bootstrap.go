// Package bootstrap checks that the desktop session can run tablet mappings:
// an X11 display is reachable, the external tools are installed, and the
// directories wacomsync reads and writes are usable.
package bootstrap

import (
	"context"
	"os"
	"os/exec"
	"time"

	"go.uber.org/zap"
)

// Category groups related checks
type Category string

const (
	CategoryEnvironment Category = "environment"
	CategoryTools       Category = "tools"
	CategoryPermissions Category = "permissions"
)

// Status is the verdict of one check
type Status string

const (
	StatusOK   Status = "ok"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Check is a single finding
type Check struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Status   Status   `json:"status"`
	Detail   string   `json:"detail"`
}

// Options names what to check. Zero-valued hooks fall back to the process
// environment.
type Options struct {
	Tools        []string
	WatchDir     string
	ProfilesPath string
	HistoryPath  string

	Getenv   func(string) string
	LookPath func(string) (string, error)
	Logger   *zap.Logger
}

func (o *Options) defaults() {
	if o.Getenv == nil {
		o.Getenv = os.Getenv
	}
	if o.LookPath == nil {
		o.LookPath = exec.LookPath
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// Result contains all bootstrap findings
type Result struct {
	Timestamp time.Time
	Duration  time.Duration
	Checks    []Check
}

// Failed returns the checks that make mapping impossible
func (r *Result) Failed() []Check {
	return r.filter(StatusFail)
}

// Warnings returns the checks that may degrade mapping
func (r *Result) Warnings() []Check {
	return r.filter(StatusWarn)
}

// OK reports whether nothing failed
func (r *Result) OK() bool {
	return len(r.Failed()) == 0
}

func (r *Result) filter(s Status) []Check {
	var out []Check
	for _, c := range r.Checks {
		if c.Status == s {
			out = append(out, c)
		}
	}
	return out
}

// Run executes every check in order
func Run(ctx context.Context, opts Options) *Result {
	opts.defaults()
	logger := opts.Logger
	start := time.Now()

	var checks []Check
	checks = append(checks, DetectDisplay(opts.Getenv)...)
	checks = append(checks, DetectTools(opts.Tools, opts.LookPath)...)
	checks = append(checks, DetectPermissions(opts.WatchDir, opts.ProfilesPath, opts.HistoryPath)...)

	result := &Result{
		Timestamp: time.Now(),
		Duration:  time.Since(start),
		Checks:    checks,
	}

	for _, c := range checks {
		logger.Debug("bootstrap check",
			zap.String("category", string(c.Category)),
			zap.String("name", c.Name),
			zap.String("status", string(c.Status)),
			zap.String("detail", c.Detail))
	}
	logger.Info("bootstrap complete",
		zap.Duration("duration", result.Duration),
		zap.Int("checks", len(checks)),
		zap.Int("warnings", len(result.Warnings())),
		zap.Int("failed", len(result.Failed())))

	return result
}
