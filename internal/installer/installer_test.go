package installer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	lkerrors "github.com/wexinc/lintkit/internal/errors"
	"github.com/wexinc/lintkit/internal/logging"
)

func newTestRunner(dir string) (*ShellRunner, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &ShellRunner{
		Dir:    dir,
		Stdout: &stdout,
		Stderr: &stderr,
		Logger: logging.NewNoop(),
	}, &stdout, &stderr
}

func TestShellRunner_Success(t *testing.T) {
	dir := t.TempDir()
	r, stdout, _ := newTestRunner(dir)

	if err := r.Run(context.Background(), "echo 'hello world' && touch marker"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "hello world") {
		t.Errorf("stdout = %q, want to contain 'hello world'", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "marker")); err != nil {
		t.Errorf("command did not run in Dir: %v", err)
	}
}

func TestShellRunner_Failure(t *testing.T) {
	r, _, stderr := newTestRunner(t.TempDir())

	err := r.Run(context.Background(), "echo boom >&2; exit 3")
	if err == nil {
		t.Fatal("Run() should fail on non-zero exit")
	}
	if !errors.Is(err, lkerrors.ErrCommand) {
		t.Errorf("error kind = %v, want ErrCommand", err)
	}

	var lkErr *lkerrors.LintkitError
	if !errors.As(err, &lkErr) {
		t.Fatalf("error type = %T, want *LintkitError", err)
	}
	if lkErr.Details["exit_code"] != "3" {
		t.Errorf("exit_code = %q, want 3", lkErr.Details["exit_code"])
	}
	if lkErr.Details["command"] != "echo boom >&2; exit 3" {
		t.Errorf("command = %q", lkErr.Details["command"])
	}
	if !strings.Contains(stderr.String(), "boom") {
		t.Errorf("stderr = %q, want to contain 'boom'", stderr.String())
	}
}

func TestShellRunner_Cancelled(t *testing.T) {
	r, _, _ := newTestRunner(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := r.Run(ctx, "echo never"); err == nil {
		t.Error("Run() should fail with a cancelled context")
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.Fail["npm install bad"] = 1

	var seen []string
	r.OnRun = func(command string) error {
		seen = append(seen, command)
		return nil
	}

	ctx := context.Background()
	if err := r.Run(ctx, "npm install --save-dev eslint"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	err := r.Run(ctx, "npm install bad")
	if !errors.Is(err, lkerrors.ErrCommand) {
		t.Errorf("Run() error = %v, want ErrCommand", err)
	}

	want := []string{"npm install --save-dev eslint", "npm install bad"}
	if got := r.Commands(); !slices.Equal(got, want) {
		t.Errorf("Commands() = %v, want %v", got, want)
	}
	if !slices.Equal(seen, want) {
		t.Errorf("OnRun saw %v, want %v", seen, want)
	}
}

func TestRecorder_OnRunError(t *testing.T) {
	r := NewRecorder()
	boom := errors.New("boom")
	r.OnRun = func(string) error { return boom }

	if err := r.Run(context.Background(), "x"); !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want %v", err, boom)
	}
}
