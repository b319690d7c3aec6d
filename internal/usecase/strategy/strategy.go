package strategy

import (
	"math/rand"

	"github.com/kiryu-dev/tic-tac-toe-ai/internal/domain"
	"github.com/pkg/errors"
)

// ErrNoEmptyCell is the panic value of a strategy asked to move on a full
// board. The controller never schedules a computer turn after game over.
var ErrNoEmptyCell = errors.New("no empty cell to choose from")

// ForModes returns the computer opponent for every AI mode. All strategies
// share rnd, so the table belongs to a single session.
func ForModes(rnd *rand.Rand) map[domain.Mode]domain.Strategy {
	random := NewRandom(rnd)
	return map[domain.Mode]domain.Strategy{
		domain.EasyAI:   random,
		domain.MediumAI: NewHeuristic(random),
		domain.HardAI:   NewOptimal(),
	}
}

func mustHaveEmptyCell(cells []int) {
	if len(cells) == 0 {
		panic(ErrNoEmptyCell)
	}
}
