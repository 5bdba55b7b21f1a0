package denv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/denvtool/denv/pkg/check"
	"github.com/denvtool/denv/pkg/displaycheck"
	"github.com/denvtool/denv/pkg/distro"
	"github.com/denvtool/denv/pkg/doctor"
	"github.com/denvtool/denv/pkg/keycheck"
	"github.com/denvtool/denv/pkg/toolcheck"
)

// Integration tests verify the Real* implementations against actual
// system resources. Unit tests in each package cover the edge cases.

func TestIntegration_Tool(t *testing.T) {
	c := toolcheck.Check{
		Tool:   "sh", // universally available
		Runner: &toolcheck.RealRunner{},
	}

	result := c.Run()

	// sh may reject --version depending on the shell behind it, which
	// downgrades to a warning; presence must never fail.
	if result.Status == check.StatusFail {
		t.Errorf("Status = FAIL, want OK or WARN (details: %v)", result.Details)
	}
}

func TestIntegration_ToolFabricatedPath(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "faketool")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho faketool 1.2.3\n"), 0o755); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("PATH", dir)

	c := toolcheck.Check{
		Tool:   "faketool",
		Runner: &toolcheck.RealRunner{},
	}

	result := c.Run()

	if result.Status != check.StatusOK {
		t.Errorf("Status = %v, want OK (details: %v)", result.Status, result.Details)
	}
}

func TestIntegration_ToolMissing(t *testing.T) {
	c := toolcheck.Check{
		Tool:   "denv-no-such-tool",
		Runner: &toolcheck.RealRunner{},
	}

	result := c.Run()

	if result.Status != check.StatusFail {
		t.Errorf("Status = %v, want FAIL", result.Status)
	}
}

func TestIntegration_DisplayNeverFatal(t *testing.T) {
	c := displaycheck.Check{
		Getter: &displaycheck.RealEnvGetter{},
		Runner: &toolcheck.RealRunner{},
	}

	result := c.Run()

	if result.Status == check.StatusFail {
		t.Errorf("display check must never be fatal, got FAIL (details: %v)", result.Details)
	}
}

func TestIntegration_Keys(t *testing.T) {
	home := t.TempDir()

	c := keycheck.Check{Home: home, FS: &keycheck.RealFileStater{}}
	if result := c.Run(); result.Status != check.StatusWarn {
		t.Errorf("empty home: Status = %v, want WARN", result.Status)
	}

	sshDir := filepath.Join(home, ".ssh")
	if err := os.MkdirAll(sshDir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"id_ed25519", "id_ed25519.pub"} {
		if err := os.WriteFile(filepath.Join(sshDir, name), []byte("test"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	if result := c.Run(); result.Status != check.StatusOK {
		t.Errorf("with keys: Status = %v, want OK (details: %v)", result.Status, result.Details)
	}
}

func TestIntegration_DistroDetect(t *testing.T) {
	known := map[distro.Family]bool{
		distro.FamilyDebian:  true,
		distro.FamilyFedora:  true,
		distro.FamilyArch:    true,
		distro.FamilyAlpine:  true,
		distro.FamilyUnknown: true,
	}

	if f := distro.Detect(&distro.RealReleaser{}); !known[f] {
		t.Errorf("Detect() = %v, not a known family", f)
	}
}

func TestIntegration_EmptySuite(t *testing.T) {
	results := doctor.Run(nil)
	if len(results) != 0 {
		t.Errorf("Run(nil) = %v, want empty", results)
	}
	if s := doctor.Summarize(results); !s.Ok(true) {
		t.Errorf("empty run must pass, got %+v", s)
	}
}
