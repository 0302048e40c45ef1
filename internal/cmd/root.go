// Package cmd implements the harfctl command line.
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/harfsearch/internal/config"
	logpkg "github.com/kailas-cloud/harfsearch/internal/logger"
)

const (
	groupText  = "text"
	groupStore = "store"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "harfctl",
	Short: "Arabic spelling-tolerant search toolkit",
	Long: `harfctl - inspect and drive harfsearch from the terminal
  - normalize, variants, patterns: see what a query expands into
  - seed, search: load fixtures and query the configured store`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: groupText, Title: "Text commands:"},
		&cobra.Group{ID: groupStore, Title: "Store commands:"},
	)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default: config/<ENV>.yaml)")

	rootCmd.AddCommand(versionCmd)
}

func loadConfig() (config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load(config.GetEnv())
}

func newLogger(cfg *config.Config) *zap.Logger {
	logger, err := logpkg.New("cli", "")
	if err != nil {
		return zap.NewNop()
	}
	return logger.With(zap.String("db_driver", cfg.Database.Driver))
}
