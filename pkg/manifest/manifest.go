package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/denvtool/denv/pkg/distro"
	"github.com/denvtool/denv/pkg/doctor"
	"github.com/denvtool/denv/pkg/version"
)

// FileName is the manifest searched for when no explicit path is given.
const FileName = ".denv.yaml"

// Manifest is the optional per-project configuration. It extends the
// built-in requirement suite and names the compose project to launch;
// every field may be omitted.
type Manifest struct {
	Project     string   `yaml:"project"`      // compose project name
	ComposeFile string   `yaml:"compose_file"` // compose file path
	EngineMin   string   `yaml:"engine_min"`   // minimum engine client version
	Skip        []string `yaml:"skip"`         // built-in checks to leave out
	Tools       []Tool   `yaml:"tools"`        // extra tool requirements
}

// Tool is one extra requirement declared in the manifest.
type Tool struct {
	Name       string `yaml:"name"`
	Min        string `yaml:"min"`
	VersionCmd string `yaml:"version_cmd"`
	Advisory   bool   `yaml:"advisory"`
}

// Find locates the manifest. An explicit path must exist; otherwise the
// search walks up from startDir, stopping at the user's home directory
// or a repository root. A missing manifest is not an error: the
// built-in suite applies.
func Find(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("manifest not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		manifestPath := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(manifestPath); err == nil {
			return manifestPath, nil
		}

		if currentDir == homeDir {
			break
		}

		gitPath := filepath.Join(currentDir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", nil
}

// Load reads and strictly decodes a manifest. Unknown fields are
// rejected so a typoed key does not silently skip a requirement.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading the project manifest
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for i, t := range m.Tools {
		if t.Name == "" {
			return nil, fmt.Errorf("%s: tools[%d] is missing a name", path, i)
		}
	}
	return &m, nil
}

// Apply merges the manifest into a suite: engine minimum override,
// extra tools appended after the built-ins, skip labels unioned.
func (m *Manifest) Apply(s doctor.Suite) (doctor.Suite, error) {
	if m.EngineMin != "" {
		v, err := version.ParseOptional(m.EngineMin)
		if err != nil {
			return s, fmt.Errorf("invalid engine_min: %w", err)
		}
		s.EngineMin = v
	}

	for _, t := range m.Tools {
		r := doctor.Requirement{
			Name:     t.Name,
			Advisory: t.Advisory,
			Hints:    distro.PackageHints(t.Name),
		}
		var err error
		if r.MinVersion, err = version.ParseOptional(t.Min); err != nil {
			return s, fmt.Errorf("invalid min for tool %s: %w", t.Name, err)
		}
		if t.VersionCmd != "" {
			r.VersionArgs = strings.Fields(t.VersionCmd)
		}
		s.Tools = append(s.Tools, r)
	}

	if len(m.Skip) > 0 {
		if s.Skip == nil {
			s.Skip = make(map[string]bool, len(m.Skip))
		}
		for _, label := range m.Skip {
			s.Skip[label] = true
		}
	}
	return s, nil
}
