package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kiryu-dev/tic-tac-toe-ai/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	GameEndpoint   = "/game"
	HealthEndpoint = "/health"

	readHeaderTimeout = 5 * time.Second
)

type server struct {
	srv      *http.Server
	hub      domain.HubUseCase
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func New(addr string, hub domain.HubUseCase, logger *zap.Logger) *server {
	s := &server{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: logger,
	}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+GameEndpoint, s.serveWs)
	mux.HandleFunc("GET "+HealthEndpoint, s.healthCheck)
	return mux
}

// ListenAndServe blocks until the server stops. A stop caused by Shutdown
// is not an error.
func (s *server) ListenAndServe() error {
	s.logger.Info("starting listening address: " + s.srv.Addr)
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return errors.WithMessage(err, "listen and serve")
}

func (s *server) Shutdown(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return errors.WithMessage(err, "shutdown http server")
	}
	return nil
}
