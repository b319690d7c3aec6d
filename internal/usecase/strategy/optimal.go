package strategy

import (
	"github.com/kiryu-dev/tic-tac-toe-ai/internal/domain"
)

const winScore = 10

type optimal struct{}

// NewOptimal searches the whole game tree. domain.AIMark maximises and its
// opponent minimises; there is no pruning.
func NewOptimal() domain.Strategy {
	return optimal{}
}

func (optimal) ChooseMove(board domain.Board, mark domain.Cell) int {
	mustHaveEmptyCell(board.EmptyCells())
	_, pos := Minimax(board, mark)
	return pos
}

// Minimax returns the score of board with mover to play and the move that
// achieves it. Terminal boards have no move and report -1. Equal scores keep
// the lowest position.
func Minimax(board domain.Board, mover domain.Cell) (score int, pos int) {
	return search(&board, mover)
}

func search(board *domain.Board, mover domain.Cell) (int, int) {
	switch {
	case domain.HasWin(*board, domain.AIMark):
		return winScore, -1
	case domain.HasWin(*board, domain.AIMark.Opponent()):
		return -winScore, -1
	}
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return 0, -1
	}
	bestScore, bestPos := 0, -1
	for _, pos := range cells {
		var score int
		place(board, pos, mover, func() {
			score, _ = search(board, mover.Opponent())
		})
		if bestPos == -1 || isBetter(mover, score, bestScore) {
			bestScore, bestPos = score, pos
		}
	}
	return bestScore, bestPos
}

// place puts mark at pos for the duration of fn.
func place(board *domain.Board, pos int, mark domain.Cell, fn func()) {
	board[pos] = mark
	defer func() {
		board[pos] = domain.None
	}()
	fn()
}

func isBetter(mover domain.Cell, score, best int) bool {
	if mover == domain.AIMark {
		return score > best
	}
	return score < best
}
