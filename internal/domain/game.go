package domain

import (
	"github.com/pkg/errors"
)

var ErrUnknownMode = errors.New("unknown game mode")

type Cell byte

const (
	None = Cell(' ')
	X    = Cell('X')
	O    = Cell('O')
)

// AIMark is the seat the computer plays in every AI mode.
const AIMark = O

func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return None
	}
}

func (c Cell) String() string {
	if c == None {
		return ""
	}
	return string(c)
}

const BoardSize = 9

type Board [BoardSize]Cell

func NewBoard() Board {
	var board Board
	for i := range board {
		board[i] = None
	}
	return board
}

func (b Board) IsEmpty(pos int) bool {
	if pos < 0 || pos >= BoardSize {
		return false
	}
	return b[pos] == None
}

// EmptyCells returns free positions in ascending order.
func (b Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range b {
		if cell == None {
			cells = append(cells, i)
		}
	}
	return cells
}

func (b Board) Strings() [BoardSize]string {
	var out [BoardSize]string
	for i, cell := range b {
		out[i] = cell.String()
	}
	return out
}

// WinCombos lists the rows, columns and diagonals of the grid.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func HasWin(board Board, mark Cell) bool {
	for _, combo := range WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return true
		}
	}
	return false
}

func IsDraw(board Board) bool {
	for _, cell := range board {
		if cell == None {
			return false
		}
	}
	return true
}

type GameStatus byte

const (
	InProgress = GameStatus(iota)
	WinX
	WinO
	Draw
)

func Evaluate(board Board) GameStatus {
	switch {
	case HasWin(board, X):
		return WinX
	case HasWin(board, O):
		return WinO
	case IsDraw(board):
		return Draw
	default:
		return InProgress
	}
}

func winStatus(mark Cell) GameStatus {
	if mark == X {
		return WinX
	}
	return WinO
}

func (s GameStatus) Winner() (Cell, bool) {
	switch s {
	case WinX:
		return X, true
	case WinO:
		return O, true
	default:
		return None, false
	}
}

func (s GameStatus) IsTerminal() bool {
	return s != InProgress
}

// Message is the outcome line shown to players.
func (s GameStatus) Message() string {
	if winner, ok := s.Winner(); ok {
		return winner.String() + " wins!"
	}
	if s == Draw {
		return "It's a draw!"
	}
	return ""
}

type Mode string

const (
	PlayerVsPlayer = Mode("pvp")
	EasyAI         = Mode("easy")
	MediumAI       = Mode("medium")
	HardAI         = Mode("hard")
)

func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if !mode.Valid() {
		return "", errors.WithMessagef(ErrUnknownMode, "mode '%s'", s)
	}
	return mode, nil
}

func (m Mode) Valid() bool {
	switch m {
	case PlayerVsPlayer, EasyAI, MediumAI, HardAI:
		return true
	default:
		return false
	}
}

func (m Mode) WithAI() bool {
	return m.Valid() && m != PlayerVsPlayer
}

type Strategy interface {
	ChooseMove(board Board, mark Cell) int
}
