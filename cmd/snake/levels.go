package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `Shows the campaign levels with their size, food target and speed.
A custom level set from board.levels_file in --config is listed instead
of the built-in one.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
}

func runLevels(_ *cobra.Command, _ []string) error {
	levels, err := loadGameSettings()
	if err != nil {
		return err
	}

	fmt.Println("Campaign levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-20s  %-7s  %-5s  %s\n", "#", "Name", "Size", "Food", "Speed")
	fmt.Printf("  %-3s  %-20s  %-7s  %-5s  %s\n", "-", "----", "----", "----", "-----")
	for i, l := range levels {
		w, h := l.Size()
		fmt.Printf("  %-3d  %-20s  %-7s  %-5d  %d\n", i+1, l.Name, fmt.Sprintf("%dx%d", w, h), l.TargetFood, l.MoveEveryTicks)
	}

	fmt.Println()
	fmt.Println("Run 'snake play --mode campaign --level N' to start from a level.")
	return nil
}
