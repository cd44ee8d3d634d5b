package apperror

import "errors"

var (
	ErrInvalidIndex         = errors.New("cell index is out of range")
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrGameNotActive        = errors.New("game is not active")
	ErrNoEmptyCellForSearch = errors.New("no empty cell to search")
	ErrNotYourTurn          = errors.New("it's not your turn")
	ErrGameNotFound         = errors.New("game not found")
	ErrInvalidMark          = errors.New("invalid mark")
)
