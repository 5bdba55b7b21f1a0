package displaycheck

import (
	"context"
	"strings"
	"time"

	"github.com/denvtool/denv/pkg/check"
	"github.com/denvtool/denv/pkg/toolcheck"
)

// Check inspects the display-server address and requests container
// access to it. The whole check is advisory: a host without a display
// can still build and run the environment, GUI applications just won't
// start. The access grant is the verifier's only side effect and is
// strictly best-effort.
type Check struct {
	Timeout time.Duration    // timeout for the grant command (default: toolcheck.DefaultTimeout)
	Getter  EnvGetter        // injected for testing
	Runner  toolcheck.Runner // injected for testing
}

// Run executes the display check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "display",
	}

	display, _ := c.Getter.LookupEnv("DISPLAY")
	if display == "" {
		if wayland, _ := c.Getter.LookupEnv("WAYLAND_DISPLAY"); wayland != "" {
			result.AddDetailf("wayland: %s", wayland)
			return result.Warn("no X11 display address; run under XWayland or set DISPLAY")
		}
		return result.Warn("DISPLAY not set; GUI applications will not be available")
	}
	result.AddDetailf("display: %s", display)

	if _, err := c.Runner.LookPath("xhost"); err != nil {
		return result.Warn("xhost not found; cannot grant container display access")
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = toolcheck.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, stderr, err := c.Runner.RunCommandContext(ctx, "xhost", "+local:")
	if err != nil {
		if msg := strings.TrimSpace(stderr); msg != "" {
			result.AddDetailf("stderr: %s", msg)
		}
		return result.Warnf("display access grant failed: %v", err)
	}
	result.AddDetail("granted local container access (xhost +local:)")

	result.Status = check.StatusOK
	return result
}
