package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameUseCase interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int, hook tictactoe.PostMoveHook) (tictactoe.Result, *entity.Game, error)
	Reset(ctx context.Context, id string) (*entity.Game, error)
	BotMove(board entity.Board) (int, error)
}

type GameHandler struct {
	logger *slog.Logger
	games  gameUseCase
}

func NewGameHandler(logger *slog.Logger, games gameUseCase) *GameHandler {
	return &GameHandler{
		logger: logger.With("component", "rest"),
		games:  games,
	}
}

func (that *GameHandler) Register(router *mux.Router) {
	router.HandleFunc("/games", that.CreateGame).Methods(http.MethodPost)
	router.HandleFunc("/games/{id}", that.GetGame).Methods(http.MethodGet)
	router.HandleFunc("/games/{id}/moves", that.MakeTurn).Methods(http.MethodPost)
	router.HandleFunc("/games/{id}/reset", that.Reset).Methods(http.MethodPost)
	router.HandleFunc("/bot/move", that.BotMove).Methods(http.MethodPost)
}

func (that *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.CreateGame(r.Context())
	if err != nil {
		that.writeError(w, "CreateGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, gameEnvelope{Game: newGameResponse(game)})
}

func (that *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		that.writeError(w, "GetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, gameEnvelope{Game: newGameResponse(game)})
}

func (that *GameHandler) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be {\"cell\": <0-8>}"})
		return
	}

	result, game, err := that.games.MakeTurn(r.Context(), mux.Vars(r)["id"], *req.Cell, nil)
	if err != nil {
		that.writeError(w, "MakeTurn", err)
		return
	}

	resp := moveResponse{
		Accepted: result.Accepted,
		BotMove:  result.BotMove,
		Game:     newGameResponse(game),
	}
	if result.Reason != nil {
		resp.Reason = result.Reason.Error()
	}

	that.writeJSON(w, http.StatusOK, resp)
}

func (that *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.Reset(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		that.writeError(w, "Reset", err)
		return
	}

	that.writeJSON(w, http.StatusOK, gameEnvelope{Game: newGameResponse(game)})
}

// BotMove answers a board posted by the client. Nothing is stored.
func (that *GameHandler) BotMove(w http.ResponseWriter, r *http.Request) {
	var req botMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Board) != len(entity.Board{}) {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be {\"board\": [9 marks]}"})
		return
	}

	var board entity.Board
	copy(board[:], req.Board)

	cell, err := that.games.BotMove(board)
	if err != nil {
		that.writeError(w, "BotMove", err)
		return
	}

	that.writeJSON(w, http.StatusOK, botMoveResponse{Cell: cell})
}

func (that *GameHandler) writeError(w http.ResponseWriter, method string, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidMark):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrNoEmptyCellForSearch):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, status, errorResponse{Error: "Internal Server Error"})
		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *GameHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
