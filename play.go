package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/transport/terminal"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play against the bot in this terminal",
	Long: `Play one local game as X. The bot plays O and never loses.

Controls:
  1-9    - Claim the cell with that number
  reset  - Start over
  quit   - Leave (Ctrl+C or Ctrl+D also work)`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	conf := initConfig()

	// only warnings and errors reach the screen during play
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: max(parseLevel(conf.LogLevel), slog.LevelWarn),
	}))

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "tictactoe> ",
		InterruptPrompt:   "^C",
		EOFPrompt:         "quit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start prompt: %w", err)
	}
	defer rl.Close()

	gameManager := app.NewGameManager(logger, conf, repository.NewMemoryGameRepository(0))

	if err = terminal.New(logger, gameManager, rl, rl.Stdout()).Run(cmd.Context()); err != nil {
		return fmt.Errorf("play failed: %w", err)
	}

	return nil
}
