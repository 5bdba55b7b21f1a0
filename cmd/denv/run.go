package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/denvtool/denv/pkg/check"
	"github.com/denvtool/denv/pkg/doctor"
	"github.com/denvtool/denv/pkg/manifest"
	"github.com/denvtool/denv/pkg/output"
)

// Checker is implemented by all check types.
type Checker interface {
	Run() check.Result
}

// ErrCheckFailed is returned when a fatal check fails.
// The returned error causes Cobra to exit with code 1.
var ErrCheckFailed = errors.New("check failed")

// runCheck executes a single check, prints the result, and returns an
// error on a fatal result. Warnings pass: they are advisory.
func runCheck(c Checker) error {
	result := c.Run()
	output.PrintResult(result)

	if result.Fatal() {
		return ErrCheckFailed
	}
	return nil
}

// loadManifest resolves and loads the project manifest, which may be
// absent.
func loadManifest() (*manifest.Manifest, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	path, err := manifest.Find(wd, manifestFile)
	if err != nil || path == "" {
		return nil, err
	}
	return manifest.Load(path)
}

// runSuite builds the full checker pipeline (manifest applied when
// present), runs it, and prints per-check results plus the summary.
func runSuite() (doctor.Summary, *manifest.Manifest, error) {
	suite := doctor.DefaultSuite()

	m, err := loadManifest()
	if err != nil {
		return doctor.Summary{}, nil, err
	}
	if m != nil {
		if suite, err = m.Apply(suite); err != nil {
			return doctor.Summary{}, nil, err
		}
	}

	results := doctor.Run(doctor.Build(suite, doctor.RealDeps()))
	for _, r := range results {
		output.PrintResult(r)
	}
	summary := doctor.Summarize(results)
	output.PrintSummary(summary)
	return summary, m, nil
}
