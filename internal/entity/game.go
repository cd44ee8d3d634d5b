package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Game is the authoritative board, turn marker and status of one match.
type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Turn   Mark   `json:"turn"`
	Status Status `json:"status"`
}

func NewGame(id string) *Game {
	game := &Game{ID: id}
	game.Reset()

	return game
}

// Reset clears the board and hands the first turn to StartingMark. Allowed at any time.
func (that *Game) Reset() {
	that.Board = Board{}
	that.Turn = StartingMark
	that.Status = StatusActive
}

func (that *Game) IsActive() bool {
	return that.Status == StatusActive
}

func (that *Game) CheckWin(mark Mark) bool {
	return that.Board.CheckWin(mark)
}

// ApplyMove places the current turn's mark on cell. A rejected move leaves the game untouched.
func (that *Game) ApplyMove(cell int) error {
	if !that.IsActive() {
		return fmt.Errorf("%w: status %s", apperror.ErrGameNotActive, that.Status)
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidIndex, cell)
	}

	if that.Board[cell] != Empty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.Board[cell] = that.Turn
	that.updateStatus()

	return nil
}

// updateStatus - the turn marker stays frozen once the game is over.
func (that *Game) updateStatus() {
	switch {
	case that.Board.CheckWin(that.Turn):
		that.Status = WinStatus(that.Turn)
	case that.Board.IsFull():
		that.Status = StatusDraw
	default:
		that.Turn = Opponent(that.Turn)
	}
}

// Snapshot returns a detached copy of the game.
func (that *Game) Snapshot() Game {
	return *that
}

// Message is a one-line status text for display.
func (that *Game) Message() string {
	switch that.Status {
	case StatusActive:
		return fmt.Sprintf("%s's turn", that.Turn)
	case StatusWinX, StatusWinO:
		return fmt.Sprintf("%s wins!", that.Status.Winner())
	case StatusDraw:
		return "It's a draw!"
	default:
		return ""
	}
}
