package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
)

type gameUseCase interface {
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int, hook tictactoe.PostMoveHook) (tictactoe.Result, *entity.Game, error)
	Reset(ctx context.Context, id string) (*entity.Game, error)
}

type handlerFunc func(ctx context.Context, msg *Message, conn *connection) error

type Server struct {
	logger   *slog.Logger
	games    gameUseCase
	botDelay time.Duration
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

// New creates the push transport. botDelay is the pause between the human move frame and the bot reply frame.
// origins lists the browser origins allowed to connect, "*" allows any.
func New(logger *slog.Logger, games gameUseCase, botDelay time.Duration, origins []string) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		games:    games,
		botDelay: botDelay,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(origins),
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionGameTurn] = server.handleGameTurn
	server.handlers[actionGameReset] = server.handleGameReset
	server.handlers[actionGameState] = server.handleGameState

	return server
}

func (that *Server) Register(router *mux.Router) {
	router.HandleFunc("/ws/games/{id}", that.upgradeToWebSocket).Methods(http.MethodGet)
}

// upgradeToWebSocket - upgrades the connection and serves one game until the client leaves.
func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	gameID := mux.Vars(req)["id"]
	log := that.logger.With("method", "upgradeToWebSocket", "gameID", gameID)

	game, err := that.games.GetGame(req.Context(), gameID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		http.Error(writer, "game not found", http.StatusNotFound)
		return
	}

	if err != nil {
		log.Error("failed to get game", "error", err)
		http.Error(writer, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ws, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("websocket upgrade failed", "error", err)
		return
	}

	conn := &connection{ws: ws, gameID: gameID}
	defer conn.close()

	log.Info("WebSocket connection established")

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	if err = conn.send(actionGameState, ResponsePayload{Game: newGameState(game)}); err != nil {
		log.Error("failed to send game state", "error", err)
		return
	}

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client. Frames on one connection are handled in order.
func (that *Server) handleMessages(ctx context.Context, conn *connection) error {
	log := that.logger.With("method", "handleMessages", "gameID", conn.gameID)

	conn.ws.SetReadLimit(maxMessageSize)

	for {
		_, data, err := conn.ws.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Info("WebSocket connection closed")
				return nil
			}

			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			if err = conn.sendError("", "malformed message"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = conn.sendError(message.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, &message, conn); err != nil {
			return err
		}
	}
}

func checkOrigin(origins []string) func(*http.Request) bool {
	return func(req *http.Request) bool {
		origin := req.Header.Get("Origin")
		if origin == "" {
			return true
		}

		return lo.Contains(origins, "*") || lo.Contains(origins, origin)
	}
}

// pause waits for the bot delay unless ctx ends first.
func (that *Server) pause(ctx context.Context) {
	if that.botDelay <= 0 {
		return
	}

	timer := time.NewTimer(that.botDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
