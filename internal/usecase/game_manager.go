package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type GameManager struct {
	logger     *slog.Logger
	gameRepo   gameRepo
	controller *tictactoe.GameController

	locks *gameLocks
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, controller *tictactoe.GameController) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game_manager"),
		gameRepo:   gameRepo,
		controller: controller,

		locks: newGameLocks(),
	}
}

// CreateGame starts a fresh game under a new random id.
func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame")

	game := entity.NewGame(uuid.NewString())

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("game created", "gameID", game.ID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn applies the human move on game id and lets the bot answer.
// A rejected move is not an error: it comes back with Result.Accepted set to false and nothing is stored.
func (that *GameManager) MakeTurn(
	ctx context.Context, id string, cell int, hook tictactoe.PostMoveHook,
) (tictactoe.Result, *entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id, "cell", cell)

	unlock := that.locks.Lock(id)
	defer unlock()

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return tictactoe.Result{}, nil, fmt.Errorf("failed to get game: %w", err)
	}

	result, err := that.controller.ApplyHumanMove(game, cell, hook)
	if err != nil {
		log.Error("bot could not answer", "error", err, "board", game.Board)
		return result, nil, fmt.Errorf("failed make turn: %w", err)
	}

	if !result.Accepted {
		log.Debug("move rejected", "reason", result.Reason)
		return result, game, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return tictactoe.Result{}, nil, fmt.Errorf("failed update game: %w", err)
	}

	if result.BotMove != nil {
		log = log.With("botMove", *result.BotMove)
	}
	log.Info("turn applied", "status", game.Status)

	return result, game, nil
}

// Reset restarts game id from the empty board.
func (that *GameManager) Reset(ctx context.Context, id string) (*entity.Game, error) {
	log := that.logger.With("method", "Reset", "gameID", id)

	unlock := that.locks.Lock(id)
	defer unlock()

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	that.controller.Reset(game)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	log.Info("game reset")

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	unlock := that.locks.Lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// BotMove answers an arbitrary board without touching any stored game.
func (that *GameManager) BotMove(board entity.Board) (int, error) {
	if err := board.Validate(); err != nil {
		return -1, fmt.Errorf("invalid board: %w", err)
	}

	cell, err := that.controller.AutomatedMove(board)
	if err != nil {
		return -1, err
	}

	return cell, nil
}
