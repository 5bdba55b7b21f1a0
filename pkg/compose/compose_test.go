package compose

import (
	"errors"
	"reflect"
	"testing"
)

func TestComposeCommands(t *testing.T) {
	tests := []struct {
		name string
		call func(*Compose) error
		want []string
	}{
		{"build", (*Compose).Build, []string{"docker", "compose", "build"}},
		{"up", (*Compose).Up, []string{"docker", "compose", "up", "-d"}},
		{"down", (*Compose).Down, []string{"docker", "compose", "down"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &MockRunner{}
			c := &Compose{Runner: runner}

			if err := tt.call(c); err != nil {
				t.Fatalf("%s: %v", tt.name, err)
			}
			if len(runner.Calls) != 1 || !reflect.DeepEqual(runner.Calls[0], tt.want) {
				t.Errorf("Calls = %v, want [%v]", runner.Calls, tt.want)
			}
		})
	}
}

func TestComposeFileAndProjectFlags(t *testing.T) {
	runner := &MockRunner{}
	c := &Compose{
		File:    "docker/compose.yaml",
		Project: "devbox",
		Runner:  runner,
	}

	if err := c.Up(); err != nil {
		t.Fatalf("Up: %v", err)
	}

	want := []string{"docker", "compose", "-f", "docker/compose.yaml", "-p", "devbox", "up", "-d"}
	if !reflect.DeepEqual(runner.Calls[0], want) {
		t.Errorf("Calls[0] = %v, want %v", runner.Calls[0], want)
	}
}

func TestComposeErrorPropagates(t *testing.T) {
	wantErr := errors.New("exit status 17")
	c := &Compose{Runner: &MockRunner{Err: wantErr}}

	if err := c.Build(); !errors.Is(err, wantErr) {
		t.Errorf("Build() error = %v, want %v", err, wantErr)
	}
}

func TestExitCodeNonExecError(t *testing.T) {
	if code, ok := ExitCode(errors.New("plain")); ok || code != 0 {
		t.Errorf("ExitCode(plain error) = %d, %v; want 0, false", code, ok)
	}
	if _, ok := ExitCode(nil); ok {
		t.Error("ExitCode(nil) should not report a code")
	}
}
