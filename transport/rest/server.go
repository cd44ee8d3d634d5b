package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

const (
	readTimeout       = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 30 * time.Second
)

// NewRouter builds the HTTP routes. Other transports may mount their routes on the returned router.
func NewRouter(logger *slog.Logger, games gameUseCase) *mux.Router {
	router := mux.NewRouter()
	router.Use(accessLog(logger))

	router.HandleFunc("/ping", ping).Methods(http.MethodGet)
	NewGameHandler(logger, games).Register(router)

	return router
}

// WithMiddleware wraps handler with CORS for origins and panic recovery.
func WithMiddleware(handler http.Handler, logger *slog.Logger, origins []string) http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(&recoveryLogger{logger: logger.With("component", "http")}),
		handlers.PrintRecoveryStack(false),
	)

	return recovery(cors(handler))
}

func NewServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
}

func ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// accessLog does not wrap the ResponseWriter so websocket upgrades can still hijack it.
func accessLog(logger *slog.Logger) mux.MiddlewareFunc {
	log := logger.With("component", "http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			next.ServeHTTP(w, r)
			log.Debug("request served", "method", r.Method, "path", r.URL.Path, "duration", time.Since(started))
		})
	}
}

type recoveryLogger struct {
	logger *slog.Logger
}

func (that *recoveryLogger) Println(v ...interface{}) {
	that.logger.Error("recovered from panic", "error", fmt.Sprint(v...))
}
