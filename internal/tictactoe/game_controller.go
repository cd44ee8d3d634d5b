package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// PostMoveHook receives the position right after an accepted human move, before the bot replies.
// Presentation layers use it to show the human move first or to pause cosmetically.
type PostMoveHook func(snapshot entity.Game)

// Result is what the presentation layer gets back after a human move.
type Result struct {
	Accepted bool          `json:"accepted"`
	Reason   error         `json:"-"`
	Status   entity.Status `json:"status"`
	Turn     entity.Mark   `json:"turn"`
	Board    entity.Board  `json:"board"`
	BotMove  *int          `json:"bot_move,omitempty"`
}

type GameController struct {
	selector *Selector
}

func NewGameController(selector *Selector) *GameController {
	return &GameController{
		selector: selector,
	}
}

// BotMark is the mark played by the automated opponent.
func (that *GameController) BotMark() entity.Mark {
	return that.selector.Mark()
}

// ApplyHumanMove applies cell for the human and, if the game is still active, the bot's reply.
// Invalid input is reported as a rejected no-op in Result; the error is reserved for a
// corrupted game the bot cannot answer.
func (that *GameController) ApplyHumanMove(game *entity.Game, cell int, hook PostMoveHook) (Result, error) {
	if game.IsActive() && game.Turn == that.BotMark() {
		return rejected(game, fmt.Errorf("%w: bot plays %s", apperror.ErrNotYourTurn, that.BotMark())), nil
	}

	if err := game.ApplyMove(cell); err != nil {
		return rejected(game, err), nil
	}

	result := Result{Accepted: true}

	if game.IsActive() && game.Turn == that.BotMark() {
		if hook != nil {
			hook(game.Snapshot())
		}

		botMove, err := that.applyBotMove(game)
		if err != nil {
			return fill(result, game), err
		}
		result.BotMove = &botMove
	}

	return fill(result, game), nil
}

// AutomatedMove computes the bot's cell for an arbitrary board.
func (that *GameController) AutomatedMove(board entity.Board) (int, error) {
	cell, err := that.selector.BestMove(board)
	if err != nil {
		return -1, fmt.Errorf("failed to select move: %w", err)
	}

	return cell, nil
}

func (that *GameController) Reset(game *entity.Game) entity.Game {
	game.Reset()

	return game.Snapshot()
}

func (that *GameController) applyBotMove(game *entity.Game) (int, error) {
	cell, err := that.AutomatedMove(game.Board)
	if err != nil {
		return -1, err
	}

	if err = game.ApplyMove(cell); err != nil {
		return -1, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return cell, nil
}

func rejected(game *entity.Game, reason error) Result {
	return fill(Result{Accepted: false, Reason: reason}, game)
}

func fill(result Result, game *entity.Game) Result {
	result.Status = game.Status
	result.Turn = game.Turn
	result.Board = game.Board

	return result
}
