package domain

import (
	"github.com/pkg/errors"
)

var (
	ErrConnectionClosed = errors.New("connection closed")
	ErrEmptyMessage     = errors.New("empty message")
)

type messageType string

const (
	SelectMode   = messageType("select_mode")
	ActivateCell = messageType("activate_cell")
	ResetGame    = messageType("reset")
	GameSnapshot = messageType("snapshot")
)

type Message struct {
	Type    messageType `json:"type"`
	Payload any         `json:"payload,omitempty"`
}

type SelectModePayload struct {
	Mode Mode `json:"mode"`
}

type ActivateCellPayload struct {
	Position int `json:"position"`
}

type Client interface {
	WriteMessage(msg Message) error
	ReadMessage() (Message, error)
}
