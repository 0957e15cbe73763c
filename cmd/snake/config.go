package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in snake.yaml. Save it to ~/.snake/configs/snake.yaml
or ./configs/snake.yaml and edit it to change speeds, scoring or the
difficulty curve.

Example:
  snake config > ~/.snake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	},
}
