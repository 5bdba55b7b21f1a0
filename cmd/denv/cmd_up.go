package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/denvtool/denv/pkg/compose"
	"github.com/denvtool/denv/pkg/manifest"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Verify the environment, then start the dev container",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runGated((*compose.Compose).Up)
	},
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Verify the environment, then build the dev container image",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runGated((*compose.Compose).Build)
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Stop the dev container",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		// Stopping never needs a verified environment.
		m, err := loadManifest()
		if err != nil {
			return err
		}
		return delegate(m, (*compose.Compose).Down)
	},
}

func init() {
	rootCmd.AddCommand(upCmd, buildCmd, downCmd)
}

// runGated runs the doctor suite and only delegates to compose on a
// clean verdict. Fatal checks abort before compose is ever invoked.
func runGated(op func(*compose.Compose) error) error {
	summary, m, err := runSuite()
	if err != nil {
		return err
	}
	if !summary.Ok(false) {
		return ErrCheckFailed
	}
	return delegate(m, op)
}

func delegate(m *manifest.Manifest, op func(*compose.Compose) error) error {
	c := &compose.Compose{Runner: &compose.RealRunner{}}
	if m != nil {
		c.File = m.ComposeFile
		c.Project = m.Project
	}

	if err := op(c); err != nil {
		if code, ok := compose.ExitCode(err); ok {
			os.Exit(code)
		}
		return err
	}
	return nil
}
