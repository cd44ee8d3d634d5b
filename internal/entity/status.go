package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Status values are exposed as-is to clients: "active", "win:<mark>", "draw".
type Status string

const (
	StatusActive Status = "active"
	StatusWinX   Status = "win:X"
	StatusWinO   Status = "win:O"
	StatusDraw   Status = "draw"
)

func WinStatus(mark Mark) Status {
	if mark == PlayerO {
		return StatusWinO
	}
	return StatusWinX
}

func ParseStatus(value string) (Status, error) {
	switch status := Status(value); status {
	case StatusActive, StatusWinX, StatusWinO, StatusDraw:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownGameStatus, value)
	}
}

// UnmarshalJSON rejects status strings outside the known set.
func (that *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal status: %w", err)
	}

	status, err := ParseStatus(raw)
	if err != nil {
		return err
	}

	*that = status

	return nil
}

func (that Status) IsTerminal() bool {
	return that == StatusWinX || that == StatusWinO || that == StatusDraw
}

// Winner returns the winning mark, or Empty for draws and active games.
func (that Status) Winner() Mark {
	switch that {
	case StatusWinX:
		return PlayerX
	case StatusWinO:
		return PlayerO
	default:
		return Empty
	}
}
