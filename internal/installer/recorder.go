package installer

import (
	"context"
	"fmt"
	"sync"

	lkerrors "github.com/wexinc/lintkit/internal/errors"
)

// Recorder is a Runner that records commands instead of executing them.
// Tests use it to observe install order and to simulate failures.
type Recorder struct {
	mu       sync.Mutex
	commands []string

	// Fail maps a command to the exit code it should fail with.
	Fail map[string]int
	// OnRun, if set, is called for every command before the failure check.
	// Use it to simulate side effects such as a migration tool writing files.
	OnRun func(command string) error
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{Fail: map[string]int{}}
}

// Run records command and returns the configured outcome.
func (r *Recorder) Run(ctx context.Context, command string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	r.commands = append(r.commands, command)
	r.mu.Unlock()

	if r.OnRun != nil {
		if err := r.OnRun(command); err != nil {
			return err
		}
	}
	if code, ok := r.Fail[command]; ok {
		return lkerrors.CommandFailed(command, code, fmt.Errorf("exit status %d", code))
	}
	return nil
}

// Commands returns a copy of the recorded commands in call order.
func (r *Recorder) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.commands))
	copy(out, r.commands)
	return out
}
