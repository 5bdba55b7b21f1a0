package main

import (
	"github.com/spf13/cobra"

	"github.com/denvtool/denv/pkg/displaycheck"
	"github.com/denvtool/denv/pkg/toolcheck"
)

var displayCmd = &cobra.Command{
	Use:   "display",
	Short: "Check display-server availability and grant container access",
	Args:  cobra.NoArgs,
	RunE:  runDisplayCheck,
}

func init() {
	rootCmd.AddCommand(displayCmd)
}

func runDisplayCheck(_ *cobra.Command, _ []string) error {
	c := &displaycheck.Check{
		Getter: &displaycheck.RealEnvGetter{},
		Runner: &toolcheck.RealRunner{},
	}
	return runCheck(c)
}
