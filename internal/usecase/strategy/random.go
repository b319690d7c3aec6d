package strategy

import (
	"math/rand"

	"github.com/kiryu-dev/tic-tac-toe-ai/internal/domain"
)

type random struct {
	rnd *rand.Rand
}

func NewRandom(rnd *rand.Rand) domain.Strategy {
	return random{rnd: rnd}
}

func (r random) ChooseMove(board domain.Board, _ domain.Cell) int {
	cells := board.EmptyCells()
	mustHaveEmptyCell(cells)
	return cells[r.rnd.Intn(len(cells))] //nolint: gosec // game randomness
}
