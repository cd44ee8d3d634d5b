package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}

	for level, want := range cases {
		assert.Equal(t, want, parseLevel(level), level)
	}
}

func TestRootCommand(t *testing.T) {
	t.Run("Registers serve and play", func(t *testing.T) {
		names := make([]string, 0, 2)
		for _, cmd := range rootCmd.Commands() {
			names = append(names, cmd.Name())
		}

		assert.Contains(t, names, "serve")
		assert.Contains(t, names, "play")
	})

	t.Run("Config flag defaults to config.yml", func(t *testing.T) {
		flag := rootCmd.PersistentFlags().Lookup("config")

		assert.NotNil(t, flag)
		assert.Equal(t, "config.yml", flag.DefValue)
	})
}
