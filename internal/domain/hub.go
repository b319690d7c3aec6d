package domain

import (
	"context"
)

type Phase string

const (
	AwaitingHumanMove = Phase("awaiting_human_move")
	AwaitingAIMove    = Phase("awaiting_ai_move")
	GameOver          = Phase("game_over")
)

// Snapshot is the render-ready view of a game emitted after every change.
type Snapshot struct {
	Board   [BoardSize]string `json:"board"`
	Mode    Mode              `json:"mode"`
	Turn    string            `json:"turn"`
	Phase   Phase             `json:"phase"`
	Outcome string            `json:"outcome"`
}

type HealthCheckResponse struct {
	ActiveSessions int `json:"active_sessions"`
}

type GameUseCase interface {
	Start()
	SelectMode(mode Mode)
	Reset()
	ActivateCell(pos int)
	Snapshot() Snapshot
}

type HubUseCase interface {
	Handle(ctx context.Context, client Client) error
	ActiveSessions() int
}
