package enginecheck

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/denvtool/denv/pkg/check"
	"github.com/denvtool/denv/pkg/toolcheck"
	"github.com/denvtool/denv/pkg/version"
)

// Check verifies the container engine: the docker binary on PATH, the
// client version against a minimum, and daemon reachability. A dead
// daemon is fatal since everything downstream depends on it.
type Check struct {
	MinVersion *version.Version // minimum client version (inclusive)
	Hint       []string         // install hints shown when the binary is missing
	Timeout    time.Duration    // timeout for docker version (default: toolcheck.DefaultTimeout)
	Runner     toolcheck.Runner // injected for testing
}

// Run executes the engine check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "engine: docker",
	}

	path, err := c.Runner.LookPath("docker")
	if err != nil {
		for _, h := range c.Hint {
			result.AddDetail(h)
		}
		return result.Fail("not found in PATH", fmt.Errorf("container engine not found in PATH"))
	}
	result.AddDetailf("path: %s", path)

	timeout := c.Timeout
	if timeout == 0 {
		timeout = toolcheck.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// docker version prints the client block even when the daemon is
	// down; the command then exits non-zero with only the server block
	// missing.
	stdout, stderr, runErr := c.Runner.RunCommandContext(ctx, "docker", "version", "--format", "{{json .}}")
	if ctx.Err() == context.DeadlineExceeded {
		return result.Failf("docker version timed out after %s", timeout)
	}

	clientUnknown := false
	if client := gjson.Get(stdout, "Client.Version"); client.Exists() {
		installed, perr := version.Parse(client.String())
		switch {
		case perr != nil:
			clientUnknown = true
			result.AddDetailf("client: %s", client.String())
		default:
			result.AddDetailf("client: %s", installed)
			if c.MinVersion != nil && !installed.GreaterThanOrEqual(*c.MinVersion) {
				for _, h := range c.Hint {
					result.AddDetail(h)
				}
				return result.Failf("client version %s < minimum %s", installed, c.MinVersion)
			}
		}
	} else {
		clientUnknown = true
	}

	server := gjson.Get(stdout, "Server.Version")
	if runErr != nil || !server.Exists() {
		result.AddDetail("is the docker service running? try: sudo systemctl start docker")
		if msg := strings.TrimSpace(stderr); msg != "" {
			result.AddDetailf("stderr: %s", firstLine(msg))
		}
		return result.Fail("daemon unreachable", fmt.Errorf("container engine daemon unreachable"))
	}
	result.AddDetailf("server: %s", server.String())

	if clientUnknown && c.MinVersion != nil {
		return result.Warnf("could not determine client version (required >= %s)", c.MinVersion)
	}

	result.Status = check.StatusOK
	return result
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
