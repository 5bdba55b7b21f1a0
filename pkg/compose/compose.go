package compose

import (
	"errors"
	"os"
	"os/exec"
)

// Runner abstracts interactive command execution for testability.
type Runner interface {
	RunInteractive(name string, args ...string) error
}

// RealRunner runs commands with inherited stdio so compose output and
// prompts reach the terminal directly.
type RealRunner struct{}

func (r *RealRunner) RunInteractive(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}

// MockRunner records invocations and returns a fixed error.
type MockRunner struct {
	Calls [][]string
	Err   error
}

func (m *MockRunner) RunInteractive(name string, args ...string) error {
	m.Calls = append(m.Calls, append([]string{name}, args...))
	return m.Err
}

// Compose wraps the orchestration CLI for the dev environment. It is an
// opaque collaborator: denv only invokes it and propagates its exit
// status, it never models compose files or volumes.
type Compose struct {
	File    string // compose file path, "" = compose's own lookup
	Project string // project name override
	Runner  Runner
}

// Build builds the dev environment image.
func (c *Compose) Build() error {
	return c.Runner.RunInteractive("docker", c.args("build")...)
}

// Up starts the dev environment in the background.
func (c *Compose) Up() error {
	return c.Runner.RunInteractive("docker", c.args("up", "-d")...)
}

// Down stops the dev environment.
func (c *Compose) Down() error {
	return c.Runner.RunInteractive("docker", c.args("down")...)
}

func (c *Compose) args(sub ...string) []string {
	args := []string{"compose"}
	if c.File != "" {
		args = append(args, "-f", c.File)
	}
	if c.Project != "" {
		args = append(args, "-p", c.Project)
	}
	return append(args, sub...)
}

// ExitCode extracts the exit code from a failed invocation so the
// caller can propagate it as its own exit status.
func ExitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}
