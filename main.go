package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic-tac-toe against a bot that never loses",
	Long: `Play tic-tac-toe against an exhaustive minimax bot.

Commands:
  serve  - Start the HTTP and WebSocket server (default)
  play   - Play in this terminal`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "config.yml", "Path to the config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
}

// main - is the entry point of the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initialize config.
func initConfig() *config.Config {
	return config.MustLoad(flagConfig)
}

// initialize logger.
func initLogger(conf *config.Config, out io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: parseLevel(conf.LogLevel)}))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
