package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/config"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/logger"
)

var (
	dataDir    string
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "regionmap",
	Short: "Offline region map: interactive Russia map with per-region tile downloads",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Setup()

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if !cmd.Flags().Changed("data-dir") {
			dataDir = cfg.Data.Dir
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "Directory for the tile cache and registry")
}

func Execute() error {
	return rootCmd.Execute()
}
