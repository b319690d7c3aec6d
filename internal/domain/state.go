package domain

// GameState is the authoritative board of one game together with the turn
// and outcome bookkeeping. It is owned by a single controller.
type GameState struct {
	Board Board
	Turn  Cell
	Over  bool
	Mode  Mode
}

func NewGameState(mode Mode) *GameState {
	state := &GameState{}
	state.Reset(mode)
	return state
}

func (s *GameState) Reset(mode Mode) {
	s.Board = NewBoard()
	s.Turn = X
	s.Over = false
	s.Mode = mode
}

func (s *GameState) Status() GameStatus {
	return Evaluate(s.Board)
}

// ApplyMove places the current mark at pos. Occupied or out-of-range
// positions and moves after the game ended leave the state untouched.
func (s *GameState) ApplyMove(pos int) (GameStatus, bool) {
	if s.Over || !s.Board.IsEmpty(pos) {
		return s.Status(), s.Over
	}
	mark := s.Turn
	s.Board[pos] = mark
	if HasWin(s.Board, mark) {
		s.Over = true
		return winStatus(mark), true
	}
	if IsDraw(s.Board) {
		s.Over = true
		return Draw, true
	}
	s.Turn = mark.Opponent()
	return InProgress, false
}
