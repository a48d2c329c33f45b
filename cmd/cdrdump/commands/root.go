// Package commands implements the cdrdump CLI command tree.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/thebagchi/go-cdr/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "cdrdump",
	Short:         "Decode and print CDR-encoded binary streams",
	Long:          `cdrdump reads a binary file and decodes it as CDR (classic or DDS-CDR), printing the decoded fields described by a schema.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML/TOML/JSON)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (config.Config, error) {
	return config.Load(cfgFile)
}
