package main

import (
	"github.com/spf13/cobra"
)

var doctorStrict bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run every environment check and report a verdict",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorStrict, "strict", false, "treat warnings as failures")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	summary, _, err := runSuite()
	if err != nil {
		return err
	}
	if !summary.Ok(doctorStrict) {
		return ErrCheckFailed
	}
	return nil
}
