package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/denvtool/denv/pkg/distro"
	"github.com/denvtool/denv/pkg/toolcheck"
	"github.com/denvtool/denv/pkg/version"
)

var (
	toolMin        string
	toolVersionCmd string
	toolAdvisory   bool
)

var toolCmd = &cobra.Command{
	Use:   "tool <command>",
	Short: "Check that a tool exists and meets a minimum version",
	Args:  cobra.ExactArgs(1),
	RunE:  runToolCheck,
}

func init() {
	toolCmd.Flags().StringVar(&toolMin, "min", "", "minimum version required (inclusive)")
	toolCmd.Flags().StringVar(&toolVersionCmd, "version-cmd", "--version", "command to get version")
	toolCmd.Flags().BoolVar(&toolAdvisory, "advisory", false, "warn instead of failing when absent")
	rootCmd.AddCommand(toolCmd)
}

func runToolCheck(_ *cobra.Command, args []string) error {
	name := args[0]

	c := &toolcheck.Check{
		Tool:        name,
		VersionArgs: strings.Fields(toolVersionCmd),
		Advisory:    toolAdvisory,
		Hint:        distro.PackageHints(name).For(distro.Detect(&distro.RealReleaser{})),
		Runner:      &toolcheck.RealRunner{},
	}

	var err error
	if c.MinVersion, err = version.ParseOptional(toolMin); err != nil {
		return fmt.Errorf("invalid --min version: %w", err)
	}

	return runCheck(c)
}
