package composecheck

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/denvtool/denv/pkg/check"
	"github.com/denvtool/denv/pkg/toolcheck"
	"github.com/denvtool/denv/pkg/version"
)

// Check verifies the orchestration CLI. The compose plugin is probed
// first; a standalone docker-compose binary on PATH also satisfies the
// requirement.
type Check struct {
	Hint    []string         // install hints shown when neither flavor is found
	Timeout time.Duration    // timeout per probe (default: toolcheck.DefaultTimeout)
	Runner  toolcheck.Runner // injected for testing
}

// Run executes the compose check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "compose",
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = toolcheck.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := c.Runner.RunCommandContext(ctx, "docker", "compose", "version")
	if err == nil {
		result.AddDetail("flavor: plugin")
		addVersionDetail(&result, stdout, stderr)
		result.Status = check.StatusOK
		return result
	}

	// Older hosts ship compose as its own binary.
	path, err := c.Runner.LookPath("docker-compose")
	if err != nil {
		for _, h := range c.Hint {
			result.AddDetail(h)
		}
		return result.Fail("neither the compose plugin nor docker-compose found",
			fmt.Errorf("orchestration CLI not available"))
	}
	result.AddDetail("flavor: standalone")
	result.AddDetailf("path: %s", path)

	stdout, stderr, err = c.Runner.RunCommandContext(ctx, "docker-compose", "version")
	if err == nil {
		addVersionDetail(&result, stdout, stderr)
	}

	result.Status = check.StatusOK
	return result
}

func addVersionDetail(result *check.Result, stdout, stderr string) {
	output := strings.TrimSpace(stdout)
	if output == "" {
		output = strings.TrimSpace(stderr)
	}
	if v, err := version.Extract(output); err == nil {
		result.AddDetailf("version: %s", v)
	}
}
