package toolcheck

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/denvtool/denv/pkg/check"
	"github.com/denvtool/denv/pkg/version"
)

// DefaultTimeout bounds the version sub-process. The whole doctor run
// is expected to finish in well under a second on a healthy host.
const DefaultTimeout = 10 * time.Second

// Check verifies that a tool exists on PATH and optionally meets a
// minimum version.
//
// Version policy: an installed version that cannot be parsed downgrades
// the constraint to a warning. Presence is kept; only a version that
// parses and falls below MinVersion is fatal.
type Check struct {
	Tool        string           // executable name to look up
	MinVersion  *version.Version // minimum version required (inclusive), nil = presence only
	VersionArgs []string         // args to get version (default: --version)
	Advisory    bool             // absence warns instead of failing
	Hint        []string         // remediation lines shown on absence or version mismatch
	Timeout     time.Duration    // timeout for the version command (default: DefaultTimeout)
	Runner      Runner           // injected for testing
}

// Run executes the tool check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("tool: %s", c.Tool),
	}

	path, err := c.Runner.LookPath(c.Tool)
	if err != nil {
		for _, h := range c.Hint {
			result.AddDetail(h)
		}
		if c.Advisory {
			return result.Warn("not found in PATH")
		}
		return result.Fail("not found in PATH", fmt.Errorf("required tool %s not found in PATH", c.Tool))
	}
	result.AddDetailf("path: %s", path)

	args := c.VersionArgs
	if len(args) == 0 {
		args = []string{"--version"}
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := c.Runner.RunCommandContext(ctx, c.Tool, args...)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return result.Warnf("version command timed out after %s", timeout)
		}
		return result.Warnf("version command failed: %v", err)
	}

	output := firstLine(stdout)
	if output == "" {
		output = firstLine(stderr)
	}

	if c.MinVersion == nil {
		if output != "" {
			result.AddDetailf("version: %s", output)
		}
		result.Status = check.StatusOK
		return result
	}

	installed, err := version.Extract(output)
	if err != nil {
		return result.Warnf("could not determine version (required >= %s)", c.MinVersion)
	}
	result.AddDetailf("version: %s", installed)

	if !installed.GreaterThanOrEqual(*c.MinVersion) {
		for _, h := range c.Hint {
			result.AddDetail(h)
		}
		return result.Failf("version %s < minimum %s", installed, c.MinVersion)
	}

	result.Status = check.StatusOK
	return result
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
