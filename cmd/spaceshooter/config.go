package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would run with, after the config file
search and the difficulty preset are applied.

Config search order:
  1. --config <path>
  2. ~/.spaceshooter/configs/shooter.yaml
  3. ./configs/shooter.yaml
  4. Built-in defaults

The output is valid YAML and can be saved as a starting point:
  spaceshooter config > ~/.spaceshooter/configs/shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
