package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game of snake. Without --mode a menu lets you pick the
campaign, endless mode, a starting level or the scoreboard.

Controls:
  Arrows/WASD/HJKL - Turn
  P/Space          - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at the level's speed

Examples:
  snake play
  snake play --mode endless
  snake play --mode campaign --level 4
  snake play --difficulty hard
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Skip the menu: campaign or endless")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start from (1-based)")
}

// loadGameSettings reads the config and level set, hands them to the
// snake package and returns the levels in play.
func loadGameSettings() ([]snake.Level, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}
	config.ApplySnakePreset(&cfg, preset)

	levels := snake.Levels
	if cfg.Board.LevelsFile != "" {
		if levels, err = snake.LoadLevelsFile(cfg.Board.LevelsFile); err != nil {
			return nil, err
		}
		snake.SetLevels(levels)
	}
	snake.SetConfig(cfg)
	return levels, nil
}

func levelNames(levels []snake.Level) []string {
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.Name
	}
	return names
}

// selectionFromFlags turns --mode and --level into a menu selection.
func selectionFromFlags(levelCount int) (*tui.Selection, error) {
	if flagLevel < 0 || flagLevel > levelCount {
		return nil, fmt.Errorf("--level must be between 1 and %d", levelCount)
	}
	switch flagMode {
	case "campaign":
		return &tui.Selection{GameID: tui.CampaignID, Level: flagLevel}, nil
	case "endless":
		if flagLevel > 0 {
			return nil, fmt.Errorf("--level only applies to the campaign")
		}
		return &tui.Selection{GameID: tui.EndlessID}, nil
	}
	return nil, fmt.Errorf("unknown mode %q (want campaign or endless)", flagMode)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// The game owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger("snake", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	levels, err := loadGameSettings()
	if err != nil {
		return err
	}
	names := levelNames(levels)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var selection *tui.Selection
	if cmd.Flags().Changed("mode") {
		if selection, err = selectionFromFlags(len(names)); err != nil {
			return err
		}
	}

	for selection == nil {
		selection, err = tui.RunModeSelector(names, cfg)
		if err != nil {
			return err
		}
		// Player quit the menu
		if selection == nil {
			return nil
		}
		if !selection.Scoreboard {
			break
		}

		goBack, err := tui.RunScoreboard(store, "", cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			return err
		}
		if !goBack {
			return nil
		}
		selection = nil
	}

	game, err := registry.Create(selection.GameID)
	if err != nil {
		return err
	}
	if ls, ok := game.(registry.LevelStarter); ok && selection.Level > 0 {
		ls.StartAt(selection.Level)
	}

	logger.Info("starting game", "game", selection.GameID, "level", selection.Level, "seed", cfg.Seed)
	return tui.Run(game, store, cfg, logger)
}
