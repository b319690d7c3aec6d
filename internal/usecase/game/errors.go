package game

import (
	"github.com/pkg/errors"
)

var (
	ErrMissingStrategy = errors.New("no strategy for ai mode")
	ErrInvalidMode     = errors.New("invalid game mode")
)
