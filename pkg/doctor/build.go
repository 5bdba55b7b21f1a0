package doctor

import (
	"github.com/denvtool/denv/pkg/check"
	"github.com/denvtool/denv/pkg/composecheck"
	"github.com/denvtool/denv/pkg/displaycheck"
	"github.com/denvtool/denv/pkg/distro"
	"github.com/denvtool/denv/pkg/enginecheck"
	"github.com/denvtool/denv/pkg/keycheck"
	"github.com/denvtool/denv/pkg/toolcheck"
)

// Deps carries the injected collaborators shared by the suite's checks.
type Deps struct {
	Runner toolcheck.Runner
	Env    displaycheck.EnvGetter
	FS     keycheck.FileStater
	Family distro.Family
	Home   string // home directory override for the key check, "" = real home
}

// RealDeps wires the real implementations and probes the host's
// packaging family once for the whole run.
func RealDeps() Deps {
	return Deps{
		Runner: &toolcheck.RealRunner{},
		Env:    &displaycheck.RealEnvGetter{},
		FS:     &keycheck.RealFileStater{},
		Family: distro.Detect(&distro.RealReleaser{}),
	}
}

// Build assembles the checker pipeline in a fixed order: engine,
// compose, tools, display, keys. The pipeline is pure data; nothing
// runs until Run.
func Build(s Suite, d Deps) []check.Checker {
	var checkers []check.Checker

	if !s.Skip["engine"] {
		checkers = append(checkers, &enginecheck.Check{
			MinVersion: s.EngineMin,
			Hint:       EngineHints().For(d.Family),
			Runner:     d.Runner,
		})
	}
	if !s.Skip["compose"] {
		checkers = append(checkers, &composecheck.Check{
			Hint:   ComposeHints().For(d.Family),
			Runner: d.Runner,
		})
	}
	for _, r := range s.Tools {
		if s.Skip[r.Name] {
			continue
		}
		checkers = append(checkers, &toolcheck.Check{
			Tool:        r.Name,
			MinVersion:  r.MinVersion,
			VersionArgs: r.VersionArgs,
			Advisory:    r.Advisory,
			Hint:        r.Hints.For(d.Family),
			Runner:      d.Runner,
		})
	}
	if !s.Skip["display"] {
		checkers = append(checkers, &displaycheck.Check{
			Getter: d.Env,
			Runner: d.Runner,
		})
	}
	if !s.Skip["keys"] {
		checkers = append(checkers, &keycheck.Check{
			Home: d.Home,
			FS:   d.FS,
		})
	}
	return checkers
}
