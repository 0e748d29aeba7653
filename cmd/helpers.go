package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/scholarsite/internal/config"
	"github.com/ziadkadry99/scholarsite/internal/loader"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `scholarsite init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// applySourceFlag lets --source override the configured data source. A
// local override also moves site_dir when it was left at the default or
// pointed at the old source.
func applySourceFlag(cmd *cobra.Command, cfg *config.Config) error {
	src, _ := cmd.Flags().GetString("source")
	if src == "" {
		return nil
	}
	prev := cfg.Source
	cfg.Source = src
	if !cfg.RemoteSource() && (cfg.SiteDir == config.DefaultConfig().SiteDir || cfg.SiteDir == prev) {
		cfg.SiteDir = src
	}
	return cfg.Validate()
}

// newLoader creates the resource loader for the configured source.
func newLoader(cfg *config.Config) (*loader.Loader, error) {
	l, err := loader.New(cfg.Source,
		loader.WithTimeout(cfg.Timeout()),
		loader.WithLogger(logger.Named("loader")),
	)
	if err != nil {
		return nil, fmt.Errorf("opening source %s: %w", cfg.Source, err)
	}
	return l, nil
}
