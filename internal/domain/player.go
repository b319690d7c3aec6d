package domain

// Player occupies one seat of a game. A player without a strategy is a human
// whose moves arrive from the client.
type Player struct {
	cell     Cell
	strategy Strategy
}

func NewHumanPlayer(cellType Cell) Player {
	return Player{cell: cellType}
}

func NewAIPlayer(cellType Cell, strategy Strategy) Player {
	return Player{
		cell:     cellType,
		strategy: strategy,
	}
}

func (p Player) Cell() Cell {
	return p.cell
}

func (p Player) IsAI() bool {
	return p.strategy != nil
}

func (p Player) ChooseMove(board Board) int {
	return p.strategy.ChooseMove(board, p.cell)
}

// Seats returns the players for both marks in the given mode. The human
// always plays X against the computer.
func Seats(mode Mode, strategy Strategy) map[Cell]Player {
	seats := map[Cell]Player{
		X: NewHumanPlayer(X),
		O: NewHumanPlayer(O),
	}
	if mode.WithAI() && strategy != nil {
		seats[AIMark] = NewAIPlayer(AIMark, strategy)
	}
	return seats
}
