// Command dungeond запускает симуляцию обороны подземелья из терминала
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RemiF1908/pcd/internal/engine"
	"github.com/RemiF1908/pcd/pkg/logger"
)

var (
	configPath string
	cfg        engine.Config
)

var rootCmd = &cobra.Command{
	Use:           "dungeond",
	Short:         "Dungeon defense simulation",
	Long:          `dungeond строит подземелье, запускает волны героев и считает очки обороны.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = engine.LoadConfig(configPath); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		logger.Configure(cfg.LogLevel, cfg.LogFormat, os.Stderr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
