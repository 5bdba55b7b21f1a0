package toolcheck

import (
	"bytes"
	"context"
	"os/exec"
)

// Runner abstracts command execution for testability. It is shared by
// the engine, compose, and display checks, which all shell out to the
// tools they verify.
type Runner interface {
	LookPath(file string) (string, error)
	RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct{}

// LookPath searches for an executable in PATH.
func (r *RealRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// RunCommandContext executes a command and returns its output.
func (r *RealRunner) RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	LookPathFunc   func(file string) (string, error)
	RunCommandFunc func(name string, args ...string) (string, string, error)
}

// LookPath calls the mock function.
func (m *MockRunner) LookPath(file string) (string, error) {
	return m.LookPathFunc(file)
}

// RunCommandContext calls the mock function, ignoring the context.
func (m *MockRunner) RunCommandContext(_ context.Context, name string, args ...string) (string, string, error) {
	return m.RunCommandFunc(name, args...)
}
