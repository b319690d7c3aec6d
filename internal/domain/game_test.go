package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const n = None

func TestHasWin(t *testing.T) {
	t.Run("Every combo wins for its mark", func(t *testing.T) {
		for _, combo := range WinCombos {
			for _, mark := range []Cell{X, O} {
				// Given: a board with a single complete line
				board := NewBoard()
				for _, pos := range combo {
					board[pos] = mark
				}

				// Then: the line wins for the mark and not for the opponent
				assert.True(t, HasWin(board, mark), "combo %v mark %s", combo, mark)
				assert.False(t, HasWin(board, mark.Opponent()), "combo %v mark %s", combo, mark)
			}
		}
	})

	t.Run("Broken lines do not win", func(t *testing.T) {
		// Given: X holds two cells of every row but never three
		board := Board{
			X, X, O,
			O, X, X,
			X, O, O,
		}

		// Then: nobody has won
		assert.False(t, HasWin(board, X))
		assert.False(t, HasWin(board, O))
	})

	t.Run("Empty board has no winner", func(t *testing.T) {
		assert.False(t, HasWin(NewBoard(), X))
		assert.False(t, HasWin(NewBoard(), O))
	})
}

func TestIsDraw(t *testing.T) {
	t.Run("Full board", func(t *testing.T) {
		board := Board{
			X, O, X,
			X, O, O,
			O, X, X,
		}
		assert.True(t, IsDraw(board))
	})

	t.Run("One empty cell left", func(t *testing.T) {
		board := Board{
			X, O, X,
			X, O, O,
			O, X, n,
		}
		assert.False(t, IsDraw(board))
	})
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  GameStatus
	}{
		{
			name: "row X wins",
			board: Board{
				X, X, X,
				n, O, n,
				n, O, n,
			},
			want: WinX,
		},
		{
			name: "column O wins",
			board: Board{
				X, O, n,
				n, O, X,
				X, O, n,
			},
			want: WinO,
		},
		{
			name: "diagonal X wins",
			board: Board{
				X, O, n,
				n, X, O,
				n, n, X,
			},
			want: WinX,
		},
		{
			name: "draw",
			board: Board{
				X, O, X,
				X, O, O,
				O, X, X,
			},
			want: Draw,
		},
		{
			name: "in progress",
			board: Board{
				X, O, X,
				n, O, n,
				O, X, n,
			},
			want: InProgress,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.board))
		})
	}
}

func TestGameStatus_Message(t *testing.T) {
	assert.Equal(t, "X wins!", WinX.Message())
	assert.Equal(t, "O wins!", WinO.Message())
	assert.Equal(t, "It's a draw!", Draw.Message())
	assert.Equal(t, "", InProgress.Message())
}

func TestBoard_EmptyCells(t *testing.T) {
	// Given: a board with three occupied cells
	board := Board{
		X, n, n,
		n, O, n,
		n, n, X,
	}

	// Then: free positions come back in ascending order
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, board.EmptyCells())
	assert.True(t, board.IsEmpty(1))
	assert.False(t, board.IsEmpty(0))
	assert.False(t, board.IsEmpty(-1))
	assert.False(t, board.IsEmpty(9))
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"pvp", "easy", "medium", "hard"} {
		mode, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Mode(s), mode)
	}

	_, err := ParseMode("impossible")
	require.ErrorIs(t, err, ErrUnknownMode)

	assert.False(t, PlayerVsPlayer.WithAI())
	assert.True(t, HardAI.WithAI())
}

func TestSeats(t *testing.T) {
	t.Run("PvP seats two humans", func(t *testing.T) {
		seats := Seats(PlayerVsPlayer, stubStrategy{})
		assert.False(t, seats[X].IsAI())
		assert.False(t, seats[O].IsAI())
	})

	t.Run("AI modes give O to the computer", func(t *testing.T) {
		seats := Seats(EasyAI, stubStrategy{pos: 4})
		assert.False(t, seats[X].IsAI())
		require.True(t, seats[O].IsAI())
		assert.Equal(t, 4, seats[O].ChooseMove(NewBoard()))
	})
}

type stubStrategy struct {
	pos int
}

func (s stubStrategy) ChooseMove(Board, Cell) int {
	return s.pos
}
