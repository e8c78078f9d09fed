// Command articlectl administers a remediation-portal deployment: schema
// migrations, user accounts and session tokens.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"remediation-portal/internal/config"
	"remediation-portal/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Configuration is read from the same
// environment variables as the server.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "articlectl",
		Short:        "Administer the remediation portal",
		SilenceUsage: true,
	}

	root.AddCommand(newMigrateCmd(), newUserCmd(), newTokenCmd())
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Configure(cfg.LogLevel)
	return cfg, nil
}
