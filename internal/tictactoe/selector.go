package tictactoe

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	scoreWin  = 1
	scoreLoss = -1
	scoreDraw = 0
)

// ErrNoEmptyCell is returned when a move is requested for a full board.
var ErrNoEmptyCell = fmt.Errorf("%w: board is full", apperror.ErrNoEmptyCellForSearch)

type SelectorOption func(*Selector)

// WithMark sets the mark the selector plays for. The opponent minimizes.
func WithMark(mark entity.Mark) SelectorOption {
	return func(that *Selector) {
		that.max = mark
		that.min = entity.Opponent(mark)
	}
}

// WithParallelRoot scores every root candidate in its own goroutine on a private board copy.
func WithParallelRoot() SelectorOption {
	return func(that *Selector) {
		that.parallel = true
	}
}

// Selector picks the optimal cell for its mark with exhaustive minimax.
// There is no pruning and no depth limit; a 3x3 tree always completes quickly.
type Selector struct {
	max      entity.Mark
	min      entity.Mark
	parallel bool
}

func NewSelector(opts ...SelectorOption) *Selector {
	selector := &Selector{
		max: entity.PlayerO,
		min: entity.PlayerX,
	}

	for _, opt := range opts {
		opt(selector)
	}

	return selector
}

func (that *Selector) Mark() entity.Mark {
	return that.max
}

// BestMove returns the cell with the strictly greatest score, the lowest index winning ties.
// The board is taken by value, so the caller's board is never touched.
func (that *Selector) BestMove(board entity.Board) (int, error) {
	candidates := board.EmptyCells()
	if len(candidates) == 0 {
		return -1, ErrNoEmptyCell
	}

	var scores []int
	if that.parallel {
		scores = that.scoreParallel(board, candidates)
	} else {
		scores = that.scoreSequential(&board, candidates)
	}

	bestMove, bestScore := -1, math.MinInt
	for i, cell := range candidates {
		if scores[i] > bestScore {
			bestScore = scores[i]
			bestMove = cell
		}
	}

	return bestMove, nil
}

func (that *Selector) scoreSequential(board *entity.Board, candidates []int) []int {
	scores := make([]int, len(candidates))

	for i, cell := range candidates {
		board[cell] = that.max
		scores[i] = that.minimax(board, 0, false)
		board[cell] = entity.Empty
	}

	return scores
}

func (that *Selector) scoreParallel(board entity.Board, candidates []int) []int {
	scores := make([]int, len(candidates))

	var group errgroup.Group
	for i, cell := range candidates {
		branch := board
		branch[cell] = that.max

		group.Go(func() error {
			scores[i] = that.minimax(&branch, 0, false)
			return nil
		})
	}

	// never returns error
	_ = group.Wait()

	return scores
}

// Score evaluates board with the given side to move.
func (that *Selector) Score(board entity.Board, maximizing bool) int {
	return that.minimax(&board, 0, maximizing)
}

// minimax mutates board during exploration and restores every cell it places.
// depth is tracked but does not weight the score: a win is a win at any depth.
func (that *Selector) minimax(board *entity.Board, depth int, maximizing bool) int {
	switch {
	case board.CheckWin(that.max):
		return scoreWin
	case board.CheckWin(that.min):
		return scoreLoss
	case board.IsFull():
		return scoreDraw
	}

	mark, best := that.min, math.MaxInt
	if maximizing {
		mark, best = that.max, math.MinInt
	}

	for cell := range board {
		if board[cell] != entity.Empty {
			continue
		}

		board[cell] = mark
		score := that.minimax(board, depth+1, !maximizing)
		board[cell] = entity.Empty

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
