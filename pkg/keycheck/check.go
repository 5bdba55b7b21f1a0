package keycheck

import (
	"os"
	"path/filepath"

	"github.com/denvtool/denv/pkg/check"
)

// keyNames are the conventional private key file names, in preference
// order.
var keyNames = []string{"id_ed25519", "id_rsa"}

// Check looks for an SSH key pair under the user's home directory.
// Advisory: keys can be generated after setup, so absence only warns.
type Check struct {
	Home string     // home directory override, defaults to os.UserHomeDir
	FS   FileStater // injected for testing
}

// Run executes the key-pair check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "ssh keys",
	}

	home := c.Home
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return result.Warnf("cannot resolve home directory: %v", err)
		}
	}

	sshDir := filepath.Join(home, ".ssh")
	for _, name := range keyNames {
		private := filepath.Join(sshDir, name)
		if _, err := c.FS.Stat(private); err != nil {
			continue
		}
		result.AddDetailf("found: %s", private)
		if _, err := c.FS.Stat(private + ".pub"); err != nil {
			result.AddDetailf("public half missing: %s.pub", private)
		}
		result.Status = check.StatusOK
		return result
	}

	result.AddDetail("generate one with: ssh-keygen -t ed25519")
	return result.Warnf("no key pair under %s", sshDir)
}
