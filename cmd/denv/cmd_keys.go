package main

import (
	"github.com/spf13/cobra"

	"github.com/denvtool/denv/pkg/keycheck"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Check for an SSH key pair (advisory)",
	Args:  cobra.NoArgs,
	RunE:  runKeysCheck,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func runKeysCheck(_ *cobra.Command, _ []string) error {
	c := &keycheck.Check{
		FS: &keycheck.RealFileStater{},
	}
	return runCheck(c)
}
