package strategy

import (
	"github.com/kiryu-dev/tic-tac-toe-ai/internal/domain"
)

type heuristic struct {
	fallback domain.Strategy
}

// NewHeuristic plays an immediate win, then an immediate block, and leaves
// everything else to fallback.
//
// Wins are looked up for domain.AIMark and blocks for its opponent whatever
// mark ChooseMove is called with: the computer only ever plays O.
func NewHeuristic(fallback domain.Strategy) domain.Strategy {
	return heuristic{fallback: fallback}
}

func (h heuristic) ChooseMove(board domain.Board, mark domain.Cell) int {
	mustHaveEmptyCell(board.EmptyCells())
	if pos, ok := completingCell(board, domain.AIMark); ok {
		return pos
	}
	if pos, ok := completingCell(board, domain.AIMark.Opponent()); ok {
		return pos
	}
	return h.fallback.ChooseMove(board, mark)
}

// completingCell finds the first combo holding two marks and one empty cell.
func completingCell(board domain.Board, mark domain.Cell) (int, bool) {
	for _, combo := range domain.WinCombos {
		marks, empty := 0, -1
		for _, pos := range combo {
			switch board[pos] {
			case mark:
				marks++
			case domain.None:
				empty = pos
			}
		}
		if marks == 2 && empty != -1 {
			return empty, true
		}
	}
	return -1, false
}
