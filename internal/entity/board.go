package entity

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Mark string

const (
	Empty   Mark = ""
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	// StartingMark opens every fresh or reset game.
	StartingMark = PlayerX
)

// WinCombos - the 8 triples that win when fully owned by one mark.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other player's mark. Empty has no opponent.
func Opponent(mark Mark) Mark {
	switch mark {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// Board is a row-major 3x3 grid.
type Board [9]Mark

// CheckWin reports whether mark fully occupies any winning triple.
func (that Board) CheckWin(mark Mark) bool {
	if !mark.IsPlayer() {
		return false
	}

	for _, combo := range WinCombos {
		if that[combo[0]] == mark && that[combo[1]] == mark && that[combo[2]] == mark {
			return true
		}
	}

	return false
}

func (that Board) IsFull() bool {
	return !lo.Contains(that[:], Empty)
}

// EmptyCells returns the indexes of empty cells in ascending order.
func (that Board) EmptyCells() []int {
	return lo.Filter(lo.Range(len(that)), func(cell int, _ int) bool {
		return that[cell] == Empty
	})
}

// Validate checks that every cell holds a known mark.
func (that Board) Validate() error {
	for i, cell := range that {
		if cell != Empty && !cell.IsPlayer() {
			return fmt.Errorf("%w: %q at cell %d", apperror.ErrInvalidMark, cell, i)
		}
	}

	return nil
}
