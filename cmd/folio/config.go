package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the search path, .env and environment
overrides are applied. The contact access key is masked. Useful as a starting point for ~/.folio/config.yaml.

Examples:
  folio config > ~/.folio/config.yaml
  folio config --config ./my-folio.yaml`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg := mustConfig()
	if cfg.Contact.AccessKey != "" {
		cfg.Contact.AccessKey = "********"
	}

	data, err := cfg.YAML()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
