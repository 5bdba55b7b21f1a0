package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denvtool/denv/pkg/doctor"
	"github.com/denvtool/denv/pkg/version"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
project: devbox
compose_file: docker/compose.yaml
engine_min: "24.0"
skip:
  - display
tools:
  - name: nvim
    min: "0.9"
  - name: rg
    advisory: true
    version_cmd: --version
`)

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "devbox", m.Project)
	assert.Equal(t, "docker/compose.yaml", m.ComposeFile)
	assert.Equal(t, "24.0", m.EngineMin)
	assert.Equal(t, []string{"display"}, m.Skip)
	require.Len(t, m.Tools, 2)
	assert.Equal(t, "nvim", m.Tools[0].Name)
	assert.True(t, m.Tools[1].Advisory)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "projcet: typo\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnnamedTool(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "tools:\n  - min: \"1.0\"\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing a name")
}

func TestApply(t *testing.T) {
	m := &Manifest{
		EngineMin: "24.0",
		Skip:      []string{"keys", "git"},
		Tools: []Tool{
			{Name: "nvim", Min: "0.9"},
			{Name: "rg", Advisory: true, VersionCmd: "--version"},
		},
	}

	suite, err := m.Apply(doctor.DefaultSuite())
	require.NoError(t, err)

	assert.Equal(t, &version.Version{Major: 24}, suite.EngineMin)
	assert.True(t, suite.Skip["keys"])
	assert.True(t, suite.Skip["git"])

	require.Len(t, suite.Tools, 4) // make, git built-ins + nvim, rg
	nvim := suite.Tools[2]
	assert.Equal(t, "nvim", nvim.Name)
	assert.Equal(t, &version.Version{Major: 0, Minor: 9}, nvim.MinVersion)
	assert.True(t, suite.Tools[3].Advisory)
}

func TestApplyRejectsBadVersions(t *testing.T) {
	_, err := (&Manifest{EngineMin: "not.a.version!"}).Apply(doctor.DefaultSuite())
	assert.Error(t, err)

	_, err = (&Manifest{Tools: []Tool{{Name: "x", Min: "bogus!"}}}).Apply(doctor.DefaultSuite())
	assert.Error(t, err)
}

func TestFindExplicitPath(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "project: devbox\n")

	got, err := Find(t.TempDir(), path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	_, err = Find(t.TempDir(), "/nonexistent/.denv.yaml")
	assert.Error(t, err)
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, "project: devbox\n")
	nested := filepath.Join(root, "src", "app")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := Find(nested, "")
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestFindStopsAtRepoRoot(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "project: devbox\n")
	repo := filepath.Join(root, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	// The manifest above the repo boundary must not leak in.
	got, err := Find(repo, "")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestFindMissingIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))

	got, err := Find(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
