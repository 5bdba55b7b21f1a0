package doctor

import (
	"github.com/denvtool/denv/pkg/distro"
	"github.com/denvtool/denv/pkg/version"
)

// Requirement describes one tool prerequisite of the dev environment.
// Requirements are immutable descriptors: they are built once per run
// and turned into checkers by Build.
type Requirement struct {
	Name        string           // executable name, also the skip label
	MinVersion  *version.Version // minimum version (inclusive), nil = presence only
	VersionArgs []string         // args to get version (default: --version)
	Advisory    bool             // absence warns instead of failing
	Hints       distro.Hints     // per-family install hints
}

// Suite is the full prerequisite set for one doctor run.
type Suite struct {
	EngineMin *version.Version // minimum container engine client version
	Tools     []Requirement    // plain tool requirements, checked in order
	Skip      map[string]bool  // labels to leave out: "engine", "compose", "display", "keys", or a tool name
}

// DefaultSuite returns the built-in prerequisites: the container
// engine, the compose CLI, the tools the Makefile wrapper shells out
// to, plus the advisory display and SSH key checks that Build always
// appends.
func DefaultSuite() Suite {
	engineMin := version.Version{Major: 20, Minor: 10}
	return Suite{
		EngineMin: &engineMin,
		Tools: []Requirement{
			{
				Name:  "make",
				Hints: distro.PackageHints("make"),
			},
			{
				Name:  "git",
				Hints: distro.PackageHints("git"),
			},
		},
	}
}

// EngineHints returns install hints for the container engine, whose
// package name differs per family.
func EngineHints() distro.Hints {
	return distro.Hints{
		distro.FamilyDebian: "sudo apt install docker.io",
		distro.FamilyFedora: "sudo dnf install moby-engine",
		distro.FamilyArch:   "sudo pacman -S docker",
		distro.FamilyAlpine: "sudo apk add docker",
	}
}

// ComposeHints returns install hints for the compose plugin.
func ComposeHints() distro.Hints {
	return distro.Hints{
		distro.FamilyDebian: "sudo apt install docker-compose-plugin",
		distro.FamilyFedora: "sudo dnf install docker-compose-plugin",
		distro.FamilyArch:   "sudo pacman -S docker-compose",
		distro.FamilyAlpine: "sudo apk add docker-cli-compose",
	}
}
