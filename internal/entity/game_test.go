package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	x = PlayerX
	o = PlayerO
	e = Empty
)

func TestBoard_CheckWin(t *testing.T) {
	t.Run("Every winning triple is detected for both marks", func(t *testing.T) {
		for _, mark := range []Mark{x, o} {
			for _, combo := range WinCombos {
				// Given: a board where only the combo cells hold the mark
				var board Board
				for _, cell := range combo {
					board[cell] = mark
				}

				// Then: the mark wins and its opponent does not
				assert.True(t, board.CheckWin(mark), "combo %v for %s", combo, mark)
				assert.False(t, board.CheckWin(Opponent(mark)), "combo %v for %s", combo, Opponent(mark))
			}
		}
	})

	t.Run("Empty board has no winner", func(t *testing.T) {
		// Given: an all-empty board
		var board Board

		// Then: nobody wins, including the empty mark
		assert.False(t, board.CheckWin(x))
		assert.False(t, board.CheckWin(o))
		assert.False(t, board.CheckWin(e))
	})

	t.Run("Full board without a completed triple has no winner", func(t *testing.T) {
		// Given: a drawn position
		board := Board{
			x, o, x,
			x, o, o,
			o, x, x,
		}

		// Then: neither mark wins
		assert.False(t, board.CheckWin(x))
		assert.False(t, board.CheckWin(o))
	})

	t.Run("Two in a row is not a win", func(t *testing.T) {
		// Given: X holds cells 0 and 1 but not 2
		board := Board{x, x, o, e, o, e, e, e, e}

		// Then: X does not win
		assert.False(t, board.CheckWin(x))
	})
}

func TestBoard_EmptyCells(t *testing.T) {
	// Given: a board with some cells taken
	board := Board{x, e, o, e, x, e, e, e, o}

	// When: listing empty cells
	cells := board.EmptyCells()

	// Then: the free indexes come back in ascending order
	assert.Equal(t, []int{1, 3, 5, 6, 7}, cells)
	assert.False(t, board.IsFull())
}

func TestBoard_Validate(t *testing.T) {
	t.Run("Known marks pass", func(t *testing.T) {
		board := Board{x, o, e, e, e, e, e, e, e}

		require.NoError(t, board.Validate())
	})

	t.Run("Unknown mark fails", func(t *testing.T) {
		board := Board{x, "Z", e, e, e, e, e, e, e}

		err := board.Validate()

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
		assert.Contains(t, err.Error(), "cell 1")
	})
}

func TestNewGame(t *testing.T) {
	// When: creating a new game
	game := NewGame("123")

	// Then: it is active, empty and X moves first
	expectedGame := &Game{
		ID:     "123",
		Board:  Board{},
		Turn:   PlayerX,
		Status: StatusActive,
	}

	require.Equal(t, expectedGame, game)
	assert.Equal(t, "X's turn", game.Message())
}

func TestGame_ApplyMove(t *testing.T) {
	t.Run("Successful move", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")

		// When: X plays the center
		err := game.ApplyMove(4)
		require.NoError(t, err)

		// Then: exactly the center changed and the turn flipped
		expectedGame := &Game{
			ID:     "123",
			Board:  Board{e, e, e, e, x, e, e, e, e},
			Turn:   PlayerO,
			Status: StatusActive,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where cell 3 is occupied
		game := NewGame("123")
		game.Board = Board{e, e, e, o, x, e, e, e, e}
		before := game.Snapshot()

		// When: the current player targets cell 3
		err := game.ApplyMove(3)

		// Then: the move is rejected and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.Equal(t, before, *game)
	})

	t.Run("Error on invalid cell index (greater than range)", func(t *testing.T) {
		game := NewGame("123")

		err := game.ApplyMove(9)

		assert.ErrorIs(t, err, apperror.ErrInvalidIndex)
		assert.Equal(t, Board{}, game.Board)
	})

	t.Run("Error on invalid cell index (negative)", func(t *testing.T) {
		game := NewGame("123")

		err := game.ApplyMove(-1)

		assert.ErrorIs(t, err, apperror.ErrInvalidIndex)
		assert.Equal(t, PlayerX, game.Turn)
	})

	t.Run("Error on move after game finished", func(t *testing.T) {
		// Given: a game X has already won
		game := NewGame("123")
		game.Board = Board{x, x, x, e, o, e, e, o, e}
		game.Status = StatusWinX
		before := game.Snapshot()

		// When: anyone tries to move
		err := game.ApplyMove(3)

		// Then: the move is rejected and nothing changes
		require.ErrorIs(t, err, apperror.ErrGameNotActive)
		require.Equal(t, before, *game)
	})

	t.Run("Error on move after draw", func(t *testing.T) {
		game := &Game{Status: StatusDraw, Turn: PlayerX}

		err := game.ApplyMove(0)

		require.ErrorIs(t, err, apperror.ErrGameNotActive)
	})

	t.Run("Winning move freezes the turn marker", func(t *testing.T) {
		// Given: X holds 0 and 1, O holds 4, and it is X's turn
		game := NewGame("123")
		game.Board = Board{x, x, e, e, o, e, e, e, e}

		// When: X completes the top row
		err := game.ApplyMove(2)
		require.NoError(t, err)

		// Then: X wins and the turn stays with X
		assert.True(t, game.CheckWin(PlayerX))
		assert.Equal(t, StatusWinX, game.Status)
		assert.Equal(t, PlayerX, game.Turn)
		assert.Equal(t, "X wins!", game.Message())
	})

	t.Run("Filling the last cell without a triple is a draw", func(t *testing.T) {
		// Given: one empty cell left and no line available
		game := NewGame("123")
		game.Board = Board{
			x, o, x,
			x, o, o,
			o, x, e,
		}

		// When: X fills the last cell
		err := game.ApplyMove(8)
		require.NoError(t, err)

		// Then: the game is drawn and the turn is unchanged
		assert.Equal(t, StatusDraw, game.Status)
		assert.Equal(t, PlayerX, game.Turn)
		assert.Equal(t, "It's a draw!", game.Message())
	})

	t.Run("Last cell that completes a triple is a win, not a draw", func(t *testing.T) {
		game := NewGame("123")
		game.Board = Board{
			x, o, x,
			o, x, o,
			o, x, e,
		}

		err := game.ApplyMove(8)
		require.NoError(t, err)

		assert.Equal(t, StatusWinX, game.Status)
	})

	t.Run("Turn marker alternates across accepted moves", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")
		expectedTurn := PlayerX

		// When: several non-terminal moves are made
		for _, cell := range []int{0, 4, 8, 2, 6} {
			require.Equal(t, expectedTurn, game.Turn)
			before := game.Board

			require.NoError(t, game.ApplyMove(cell))

			// Then: exactly one cell changed, from empty to the mover's mark
			changed := 0
			for i := range game.Board {
				if game.Board[i] != before[i] {
					changed++
					assert.Equal(t, Empty, before[i])
					assert.Equal(t, expectedTurn, game.Board[i])
				}
			}
			assert.Equal(t, 1, changed)

			if game.IsActive() {
				expectedTurn = Opponent(expectedTurn)
			}
		}
	})
}

func TestGame_Reset(t *testing.T) {
	t.Run("Reset mid-game", func(t *testing.T) {
		// Given: a game in progress
		game := NewGame("123")
		require.NoError(t, game.ApplyMove(0))
		require.NoError(t, game.ApplyMove(4))
		require.NoError(t, game.ApplyMove(1))

		// When: resetting
		game.Reset()

		// Then: the game looks freshly created
		require.Equal(t, NewGame("123"), game)
	})

	t.Run("Reset after a finished game reproduces the same outcome", func(t *testing.T) {
		moves := []int{0, 3, 1, 4, 2}

		play := func(game *Game) Game {
			for _, cell := range moves {
				require.NoError(t, game.ApplyMove(cell))
			}
			return game.Snapshot()
		}

		// Given: a game played to a win and then reset
		reused := NewGame("123")
		play(reused)
		reused.Reset()

		// When: the same moves are replayed on the reset game and on a fresh one
		replayed := play(reused)
		fresh := play(NewGame("123"))

		// Then: both end identically
		assert.Equal(t, StatusWinX, replayed.Status)
		assert.Equal(t, fresh, replayed)
	})
}

func TestStatus(t *testing.T) {
	t.Run("ParseStatus accepts known values", func(t *testing.T) {
		for _, value := range []string{"active", "win:X", "win:O", "draw"} {
			status, err := ParseStatus(value)

			require.NoError(t, err)
			assert.Equal(t, Status(value), status)
		}
	})

	t.Run("ParseStatus rejects unknown values", func(t *testing.T) {
		_, err := ParseStatus("finished")

		require.ErrorIs(t, err, ErrUnknownGameStatus)
	})

	t.Run("Winner and terminal flags", func(t *testing.T) {
		assert.Equal(t, PlayerX, StatusWinX.Winner())
		assert.Equal(t, PlayerO, StatusWinO.Winner())
		assert.Equal(t, Empty, StatusDraw.Winner())
		assert.False(t, StatusActive.IsTerminal())
		assert.True(t, StatusDraw.IsTerminal())
		assert.Equal(t, StatusWinO, WinStatus(PlayerO))
	})
}

func TestGame_JSON(t *testing.T) {
	t.Run("Round trip keeps the wire values", func(t *testing.T) {
		// Given: a game in progress
		game := NewGame("123")
		require.NoError(t, game.ApplyMove(4))

		// When: encoding it
		data, err := json.Marshal(game)
		require.NoError(t, err)

		// Then: marks and status use their plain strings
		assert.JSONEq(t, `{"id":"123","board":["","","","","X","","","",""],"turn":"O","status":"active"}`, string(data))

		var decoded Game
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, *game, decoded)
	})

	t.Run("Unknown status is rejected", func(t *testing.T) {
		var decoded Game
		err := json.Unmarshal([]byte(`{"id":"123","status":"finished"}`), &decoded)

		require.ErrorIs(t, err, ErrUnknownGameStatus)
	})
}
