// Package main is the entry point for the kosha CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kosha",
		Short: "Sanskrit morphology store builder",
		Long:  `Kosha builds a relational store of Sanskrit morphology from declarative resource files: roots and their paradigms, inflected and derived forms, and the enumerated grammatical categories they reference.`,
	}

	cmd.AddCommand(buildCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}
