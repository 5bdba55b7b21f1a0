package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var manifestFile string

var rootCmd = &cobra.Command{
	Use:   "denv",
	Short: "Preflight doctor and launcher for the containerized dev environment",
	Long: "denv verifies host prerequisites (container engine, compose CLI, build tools,\n" +
		"display server, SSH keys) and gates the compose build/start sequence on the\n" +
		"verdict. Mandatory tools block setup when missing; display and key checks\n" +
		"only warn.",
	Version:      Version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&manifestFile, "manifest", "",
		"path to .denv.yaml (default: search up from current directory)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
