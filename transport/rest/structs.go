package rest

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

type gameResponse struct {
	ID      string        `json:"id"`
	Board   entity.Board  `json:"board"`
	Turn    entity.Mark   `json:"turn"`
	Status  entity.Status `json:"status"`
	Message string        `json:"message"`
}

func newGameResponse(game *entity.Game) gameResponse {
	return gameResponse{
		ID:      game.ID,
		Board:   game.Board,
		Turn:    game.Turn,
		Status:  game.Status,
		Message: game.Message(),
	}
}

type gameEnvelope struct {
	Game gameResponse `json:"game"`
}

type moveRequest struct {
	Cell *int `json:"cell"`
}

type moveResponse struct {
	Accepted bool         `json:"accepted"`
	Reason   string       `json:"reason,omitempty"`
	BotMove  *int         `json:"bot_move,omitempty"`
	Game     gameResponse `json:"game"`
}

type botMoveRequest struct {
	Board []entity.Mark `json:"board"`
}

type botMoveResponse struct {
	Cell int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}
