package ws

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/kiryu-dev/tic-tac-toe-ai/internal/domain"
	"go.uber.org/zap"
)

func (s *server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error(err.Error())
		return
	}
	s.logger.Info("new connection", zap.String("remote addr", r.RemoteAddr))
	client := newClient(conn)
	defer client.Close()
	if err := s.hub.Handle(r.Context(), client); err != nil {
		s.logger.Error(err.Error())
	}
}

func (s *server) healthCheck(w http.ResponseWriter, _ *http.Request) {
	resp := domain.HealthCheckResponse{
		ActiveSessions: s.hub.ActiveSessions(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := jsoniter.NewEncoder(w).Encode(resp); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		s.logger.Warn(err.Error())
	}
}
