package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const helpText = "Type a cell number 1-9 to play, \"reset\" to start over or \"quit\" to leave."

type lineReader interface {
	Readline() (string, error)
}

type gameUseCase interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int, hook tictactoe.PostMoveHook) (tictactoe.Result, *entity.Game, error)
	Reset(ctx context.Context, id string) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

// Client plays one local game against the bot over a line based prompt.
type Client struct {
	logger *slog.Logger
	games  gameUseCase
	reader lineReader
	out    io.Writer
}

func New(logger *slog.Logger, games gameUseCase, reader lineReader, out io.Writer) *Client {
	return &Client{
		logger: logger.With("component", "terminal"),
		games:  games,
		reader: reader,
		out:    out,
	}
}

// Run blocks until the player quits, sends EOF or interrupts an empty line.
func (that *Client) Run(ctx context.Context) error {
	game, err := that.games.CreateGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	defer func() {
		if err := that.games.DeleteGame(context.WithoutCancel(ctx), game.ID); err != nil {
			that.logger.Warn("failed to delete game", "gameID", game.ID, "error", err)
		}
	}()

	that.println(titleStyle.Render("Tic-Tac-Toe"), "You are X, the bot is O.")
	that.println(helpStyle.Render(helpText))
	that.println(renderGame(*game))

	for {
		line, err := that.reader.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		switch command := strings.ToLower(strings.TrimSpace(line)); command {
		case "":
		case "quit", "exit", "q":
			return nil
		case "help", "?":
			that.println(helpStyle.Render(helpText))
		case "reset":
			if game, err = that.games.Reset(ctx, game.ID); err != nil {
				return fmt.Errorf("failed to reset game: %w", err)
			}
			that.println(renderGame(*game))
		default:
			if game, err = that.play(ctx, game, command); err != nil {
				return err
			}
		}
	}
}

func (that *Client) play(ctx context.Context, game *entity.Game, command string) (*entity.Game, error) {
	number, err := strconv.Atoi(command)
	if err != nil {
		that.println(errorStyle.Render(fmt.Sprintf("Unknown command %q.", command)), helpStyle.Render(helpText))
		return game, nil
	}

	hook := func(snapshot entity.Game) {
		that.println(fmt.Sprintf("You played %d", number), RenderBoard(snapshot.Board))
	}

	result, updated, err := that.games.MakeTurn(ctx, game.ID, number-1, hook)
	if err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if !result.Accepted {
		that.println(errorStyle.Render("Move rejected: " + result.Reason.Error()))
		return updated, nil
	}

	if result.BotMove != nil {
		that.println(fmt.Sprintf("Bot played %d", *result.BotMove+1))
	}
	that.println(renderGame(*updated))

	if !updated.IsActive() {
		that.println(helpStyle.Render("Type \"reset\" to play again or \"quit\" to leave."))
	}

	return updated, nil
}

func (that *Client) println(lines ...string) {
	if _, err := fmt.Fprintln(that.out, strings.Join(lines, "\n")); err != nil {
		that.logger.Debug("failed to write output", "error", err)
	}
}
