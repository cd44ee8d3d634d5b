package websocket

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	actionGameState    = "game:state"
	actionGameTurn     = "game:turn"
	actionGameReset    = "game:reset"
	actionGameBot      = "game:bot"
	actionGameRejected = "game:rejected"
	actionError        = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type TurnPayload struct {
	Cell *int `json:"cell"`
}

type ResponsePayload struct {
	Game   *GameState `json:"game,omitempty"`
	Cell   *int       `json:"cell,omitempty"`
	Action string     `json:"action,omitempty"`
	Error  string     `json:"error,omitempty"`
}

type GameState struct {
	ID      string        `json:"id"`
	Board   entity.Board  `json:"board"`
	Turn    entity.Mark   `json:"turn"`
	Status  entity.Status `json:"status"`
	Message string        `json:"message"`
}

func newGameState(game *entity.Game) *GameState {
	return &GameState{
		ID:      game.ID,
		Board:   game.Board,
		Turn:    game.Turn,
		Status:  game.Status,
		Message: game.Message(),
	}
}

// connection is written to only from the goroutine that reads it.
type connection struct {
	ws     *websocket.Conn
	gameID string
}

func (that *connection) send(action string, payload ResponsePayload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = that.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.ws.WriteJSON(Message{Action: action, Payload: payloadBytes}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *connection) sendError(action, errorMsg string) error {
	return that.send(actionError, ResponsePayload{Action: action, Error: errorMsg})
}

func (that *connection) close() {
	deadline := time.Now().Add(writeWait)
	_ = that.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	_ = that.ws.Close()
}
