package main

import (
	"errors"
	"testing"

	"github.com/denvtool/denv/pkg/check"
)

type stubChecker struct {
	result check.Result
}

func (s *stubChecker) Run() check.Result {
	return s.result
}

func TestRunCheck(t *testing.T) {
	tests := []struct {
		name    string
		status  check.Status
		wantErr bool
	}{
		{"ok passes", check.StatusOK, false},
		{"warning passes", check.StatusWarn, false},
		{"failure returns sentinel", check.StatusFail, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &stubChecker{result: check.Result{Name: "stub", Status: tt.status}}

			err := runCheck(c)

			if tt.wantErr {
				if !errors.Is(err, ErrCheckFailed) {
					t.Errorf("runCheck() error = %v, want ErrCheckFailed", err)
				}
			} else if err != nil {
				t.Errorf("runCheck() error = %v, want nil", err)
			}
		})
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"doctor":  false,
		"tool":    false,
		"display": false,
		"keys":    false,
		"up":      false,
		"build":   false,
		"down":    false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
