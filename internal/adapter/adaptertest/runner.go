// Package adaptertest provides a scripted Runner for tests that exercise code
// built on the external desktop tools.
package adaptertest

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Response is the scripted result of one command line
type Response struct {
	Output string
	Err    error
}

// Call records one invocation
type Call struct {
	Name string
	Args []string
}

// String renders the call as a command line
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Runner answers commands from a script keyed by the full command line.
// Unscripted commands succeed with empty output unless Strict is set.
type Runner struct {
	mu        sync.Mutex
	responses map[string]Response
	calls     []Call
	Strict    bool
}

// NewRunner creates an empty scripted runner
func NewRunner() *Runner {
	return &Runner{responses: make(map[string]Response)}
}

// On scripts the output for a command line such as "xrandr --listmonitors"
func (r *Runner) On(cmdline, output string) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[cmdline] = Response{Output: output}
	return r
}

// Fail scripts an error for a command line
func (r *Runner) Fail(cmdline string, err error) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[cmdline] = Response{Err: err}
	return r
}

// Run implements adapter.Runner
func (r *Runner) Run(_ context.Context, name string, args ...string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	call := Call{Name: name, Args: append([]string(nil), args...)}
	r.calls = append(r.calls, call)

	resp, ok := r.responses[call.String()]
	if !ok {
		if r.Strict {
			return "", fmt.Errorf("unscripted command: %s", call)
		}
		return "", nil
	}
	return resp.Output, resp.Err
}

// Calls returns the recorded command lines in order
func (r *Runner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.String()
	}
	return out
}

// Reset clears the recorded calls but keeps the script
func (r *Runner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
