package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// handleGameTurn applies the human move. The client gets game:turn right away and game:bot after the bot delay.
func (that *Server) handleGameTurn(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleGameTurn", "gameID", conn.gameID)

	var payloadReq TurnPayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil || payloadReq.Cell == nil {
		return conn.sendError(msg.Action, "cell is required")
	}

	hook := func(snapshot entity.Game) {
		if err := conn.send(actionGameTurn, ResponsePayload{Game: newGameState(&snapshot)}); err != nil {
			log.Error("failed to send human move", "error", err)
		}

		that.pause(ctx)
	}

	result, game, err := that.games.MakeTurn(ctx, conn.gameID, *payloadReq.Cell, hook)
	if err != nil {
		return that.sendUseCaseError(conn, msg.Action, err)
	}

	state := newGameState(game)

	switch {
	case !result.Accepted:
		log.Debug("move rejected", "cell", *payloadReq.Cell, "reason", result.Reason)
		return conn.send(actionGameRejected, ResponsePayload{Game: state, Cell: payloadReq.Cell, Error: result.Reason.Error()})
	case result.BotMove != nil:
		return conn.send(actionGameBot, ResponsePayload{Game: state, Cell: result.BotMove})
	default:
		return conn.send(actionGameTurn, ResponsePayload{Game: state})
	}
}

func (that *Server) handleGameReset(ctx context.Context, msg *Message, conn *connection) error {
	game, err := that.games.Reset(ctx, conn.gameID)
	if err != nil {
		return that.sendUseCaseError(conn, msg.Action, err)
	}

	return conn.send(actionGameState, ResponsePayload{Game: newGameState(game)})
}

func (that *Server) handleGameState(ctx context.Context, msg *Message, conn *connection) error {
	game, err := that.games.GetGame(ctx, conn.gameID)
	if err != nil {
		return that.sendUseCaseError(conn, msg.Action, err)
	}

	return conn.send(actionGameState, ResponsePayload{Game: newGameState(game)})
}

func (that *Server) sendUseCaseError(conn *connection, action string, err error) error {
	if errors.Is(err, apperror.ErrGameNotFound) {
		return conn.sendError(action, "game not found")
	}

	that.logger.Error("request failed", "action", action, "gameID", conn.gameID, "error", err)

	return conn.sendError(action, "Internal Server Error")
}
