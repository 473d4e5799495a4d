package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// snapshot captures every observable board field so tests can assert that
// rejected or undone operations leave no trace.
type snapshot struct {
	grid          string
	ko            Position
	hasKo         bool
	passes        int
	terminated    bool
	blackCaptures int
	whiteCaptures int
	current       Color
	historyLen    int
}

func takeSnapshot(b *Board) snapshot {
	return snapshot{
		grid:          b.String(),
		ko:            b.ko,
		hasKo:         b.hasKo,
		passes:        b.passes,
		terminated:    b.terminated,
		blackCaptures: b.black.Captures(),
		whiteCaptures: b.white.Captures(),
		current:       b.current.Color(),
		historyLen:    len(b.history),
	}
}

func newTestBoard(size int) *Board {
	black, white := NewPlayers("Black Tester", "White Tester")
	return NewBoard(size, black, white)
}

func mustPlace(t *testing.T, b *Board, pos Position, color Color) {
	t.Helper()
	require.NoError(t, b.Place(pos, color))
}

func TestPlace(t *testing.T) {
	t.Run("places a stone and switches the side to move", func(t *testing.T) {
		b := newTestBoard(9)

		require.NoError(t, b.Place(Position{Row: 4, Col: 4}, Black))

		got, err := b.At(Position{Row: 4, Col: 4})
		require.NoError(t, err)
		require.Equal(t, Black, got)
		require.Equal(t, White, b.CurrentPlayer().Color(), "Placement should hand the turn to the opponent")
		require.Equal(t, 1, b.HistoryLen())
	})

	t.Run("rejects out-of-bounds positions", func(t *testing.T) {
		b := newTestBoard(9)
		before := takeSnapshot(b)

		err := b.Place(Position{Row: 9, Col: 0}, Black)

		require.ErrorIs(t, err, ErrInvalidPosition)
		require.Equal(t, before, takeSnapshot(b), "Rejected move should leave the board unchanged")
	})

	t.Run("rejects empty as a move color", func(t *testing.T) {
		b := newTestBoard(9)
		before := takeSnapshot(b)

		err := b.Place(Position{Row: 0, Col: 0}, Empty)

		require.ErrorIs(t, err, ErrInvalidColor)
		require.Equal(t, before, takeSnapshot(b))
	})

	t.Run("rejects occupied cells", func(t *testing.T) {
		b := newTestBoard(9)
		mustPlace(t, b, Position{Row: 2, Col: 2}, Black)
		before := takeSnapshot(b)

		err := b.Place(Position{Row: 2, Col: 2}, White)

		require.ErrorIs(t, err, ErrOccupiedCell)
		require.Equal(t, before, takeSnapshot(b))
	})

	t.Run("rejects moves after the game ends", func(t *testing.T) {
		b := newTestBoard(9)
		require.NoError(t, b.Pass())
		require.NoError(t, b.Pass())
		require.True(t, b.Terminated())
		before := takeSnapshot(b)

		err := b.Place(Position{Row: 0, Col: 0}, Black)

		require.ErrorIs(t, err, ErrGameOver)
		require.Equal(t, before, takeSnapshot(b))
	})

	t.Run("resets the consecutive pass counter", func(t *testing.T) {
		b := newTestBoard(9)
		require.NoError(t, b.Pass())
		mustPlace(t, b, Position{Row: 0, Col: 0}, White)
		require.NoError(t, b.Pass())

		require.False(t, b.Terminated(), "Passes separated by a placement should not end the game")
	})
}

func TestCaptures(t *testing.T) {
	t.Run("captures a single surrounded stone", func(t *testing.T) {
		b := newTestBoard(9)
		mustPlace(t, b, Position{Row: 1, Col: 1}, Black)
		mustPlace(t, b, Position{Row: 2, Col: 0}, Black)
		mustPlace(t, b, Position{Row: 3, Col: 1}, Black)
		mustPlace(t, b, Position{Row: 2, Col: 1}, White)

		mustPlace(t, b, Position{Row: 2, Col: 2}, Black)

		got, err := b.At(Position{Row: 2, Col: 1})
		require.NoError(t, err)
		require.Equal(t, Empty, got, "Surrounded white stone should be captured")
		require.Equal(t, 1, b.Black().Captures(), "Capture should be credited to the placing player")
		require.Equal(t, 0, b.White().Captures())
	})

	t.Run("captures a whole group at once", func(t *testing.T) {
		b := newTestBoard(9)
		mustPlace(t, b, Position{Row: 2, Col: 2}, White)
		mustPlace(t, b, Position{Row: 2, Col: 3}, White)
		for _, pos := range []Position{
			{Row: 1, Col: 2}, {Row: 1, Col: 3},
			{Row: 2, Col: 1}, {Row: 2, Col: 4},
			{Row: 3, Col: 2}, {Row: 3, Col: 3},
		} {
			mustPlace(t, b, pos, Black)
		}

		for _, pos := range []Position{{Row: 2, Col: 2}, {Row: 2, Col: 3}} {
			got, err := b.At(pos)
			require.NoError(t, err)
			require.Equal(t, Empty, got, "Whole white group should be captured")
		}
		require.Equal(t, 2, b.Black().Captures())
	})
}

func TestSuicide(t *testing.T) {
	// Black eye around (2,1).
	eye := []Position{
		{Row: 1, Col: 1}, {Row: 2, Col: 0}, {Row: 2, Col: 2}, {Row: 3, Col: 1},
	}

	t.Run("rejects suicide inside an eye", func(t *testing.T) {
		b := newTestBoard(9)
		for _, pos := range eye {
			mustPlace(t, b, pos, Black)
		}
		before := takeSnapshot(b)

		err := b.Place(Position{Row: 2, Col: 1}, White)

		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, before, takeSnapshot(b), "Rejected suicide should leave the board unchanged")
	})

	t.Run("allows the same point when it captures", func(t *testing.T) {
		b := newTestBoard(9)
		// White eye shape with black stones ready to capture it.
		for _, pos := range []Position{
			{Row: 1, Col: 1}, {Row: 2, Col: 0}, {Row: 2, Col: 2},
			{Row: 2, Col: 3}, {Row: 3, Col: 1},
		} {
			mustPlace(t, b, pos, White)
		}
		for _, pos := range []Position{
			{Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 2, Col: 4},
			{Row: 3, Col: 3}, {Row: 3, Col: 2},
		} {
			mustPlace(t, b, pos, Black)
		}

		require.NoError(t, b.Place(Position{Row: 2, Col: 1}, Black),
			"Filling the eye should be legal for black because it captures")
		got, err := b.At(Position{Row: 2, Col: 1})
		require.NoError(t, err)
		require.Equal(t, Black, got)
	})
}

func TestKo(t *testing.T) {
	// Classic ko shape: black captures white (1,1) by playing (1,2).
	setupKo := func(t *testing.T) *Board {
		t.Helper()
		b := newTestBoard(9)
		mustPlace(t, b, Position{Row: 1, Col: 1}, White)
		mustPlace(t, b, Position{Row: 0, Col: 1}, Black)
		mustPlace(t, b, Position{Row: 1, Col: 0}, Black)
		mustPlace(t, b, Position{Row: 2, Col: 1}, Black)
		mustPlace(t, b, Position{Row: 0, Col: 2}, White)
		mustPlace(t, b, Position{Row: 2, Col: 2}, White)
		mustPlace(t, b, Position{Row: 1, Col: 3}, White)
		mustPlace(t, b, Position{Row: 1, Col: 2}, Black)
		return b
	}

	t.Run("records the ko point after a qualifying capture", func(t *testing.T) {
		b := setupKo(t)

		got, err := b.At(Position{Row: 1, Col: 1})
		require.NoError(t, err)
		require.Equal(t, Empty, got, "White stone should be captured")

		ko, ok := b.Ko()
		require.True(t, ok, "Single-stone capture by a lone one-liberty stone should open a ko")
		require.Equal(t, Position{Row: 1, Col: 1}, ko)
	})

	t.Run("rejects immediate recapture at the ko point", func(t *testing.T) {
		b := setupKo(t)
		before := takeSnapshot(b)

		err := b.Place(Position{Row: 1, Col: 1}, White)

		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, before, takeSnapshot(b))
	})

	t.Run("allows recapture after an intervening move", func(t *testing.T) {
		b := setupKo(t)
		mustPlace(t, b, Position{Row: 5, Col: 5}, White)

		_, ok := b.Ko()
		require.False(t, ok, "Any successful placement should clear the ko")
		require.NoError(t, b.Place(Position{Row: 1, Col: 1}, White))
	})

	t.Run("non-qualifying captures do not open a ko", func(t *testing.T) {
		b := newTestBoard(9)
		mustPlace(t, b, Position{Row: 1, Col: 1}, Black)
		mustPlace(t, b, Position{Row: 2, Col: 0}, Black)
		mustPlace(t, b, Position{Row: 3, Col: 1}, Black)
		mustPlace(t, b, Position{Row: 2, Col: 1}, White)
		mustPlace(t, b, Position{Row: 2, Col: 2}, Black)

		_, ok := b.Ko()
		require.False(t, ok, "Capturing stone with multiple liberties should not open a ko")
	})
}

func TestPass(t *testing.T) {
	t.Run("two consecutive passes terminate the game", func(t *testing.T) {
		b := newTestBoard(9)

		require.NoError(t, b.Pass())
		require.False(t, b.Terminated())
		require.Equal(t, White, b.CurrentPlayer().Color())

		require.NoError(t, b.Pass())
		require.True(t, b.Terminated())
	})

	t.Run("rejects passing after the game ends", func(t *testing.T) {
		b := newTestBoard(9)
		require.NoError(t, b.Pass())
		require.NoError(t, b.Pass())
		before := takeSnapshot(b)

		err := b.Pass()

		require.ErrorIs(t, err, ErrGameOver)
		require.Equal(t, before, takeSnapshot(b))
	})
}

func TestUndo(t *testing.T) {
	t.Run("undoing a placement restores the exact prior state", func(t *testing.T) {
		b := newTestBoard(9)
		// Set up a pending capture so undo has captured stones to restore.
		mustPlace(t, b, Position{Row: 1, Col: 1}, Black)
		mustPlace(t, b, Position{Row: 2, Col: 0}, Black)
		mustPlace(t, b, Position{Row: 3, Col: 1}, Black)
		mustPlace(t, b, Position{Row: 2, Col: 1}, White)
		before := takeSnapshot(b)

		mustPlace(t, b, Position{Row: 2, Col: 2}, Black)
		require.Equal(t, 1, b.Black().Captures())
		require.NoError(t, b.Undo())

		require.Equal(t, before, takeSnapshot(b), "Undo should restore grid, captures, ko, passes, and turn")
	})

	t.Run("undoing a pass restores the pass counter and termination flag", func(t *testing.T) {
		b := newTestBoard(9)
		require.NoError(t, b.Pass())
		before := takeSnapshot(b)

		require.NoError(t, b.Pass())
		require.True(t, b.Terminated())
		require.NoError(t, b.Undo())

		require.Equal(t, before, takeSnapshot(b))
		require.False(t, b.Terminated())
	})

	t.Run("undoing a ko-opening move restores the previous ko marker", func(t *testing.T) {
		b := newTestBoard(9)
		mustPlace(t, b, Position{Row: 1, Col: 1}, White)
		mustPlace(t, b, Position{Row: 0, Col: 1}, Black)
		mustPlace(t, b, Position{Row: 1, Col: 0}, Black)
		mustPlace(t, b, Position{Row: 2, Col: 1}, Black)
		mustPlace(t, b, Position{Row: 0, Col: 2}, White)
		mustPlace(t, b, Position{Row: 2, Col: 2}, White)
		mustPlace(t, b, Position{Row: 1, Col: 3}, White)
		before := takeSnapshot(b)

		mustPlace(t, b, Position{Row: 1, Col: 2}, Black)
		_, ok := b.Ko()
		require.True(t, ok)
		require.NoError(t, b.Undo())

		require.Equal(t, before, takeSnapshot(b))
	})

	t.Run("fails with an empty history", func(t *testing.T) {
		b := newTestBoard(9)

		err := b.Undo()

		require.ErrorIs(t, err, ErrEmptyHistory)
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("enumerates empty cells in row-major order", func(t *testing.T) {
		b := newTestBoard(3)

		moves := b.LegalMoves(Black)

		require.Len(t, moves, 9)
		want := []Position{
			{0, 0}, {0, 1}, {0, 2},
			{1, 0}, {1, 1}, {1, 2},
			{2, 0}, {2, 1}, {2, 2},
		}
		require.Equal(t, want, moves, "Enumeration order should be deterministic row-major")
	})

	t.Run("excludes occupied and suicidal points", func(t *testing.T) {
		b := newTestBoard(9)
		for _, pos := range []Position{
			{Row: 1, Col: 1}, {Row: 2, Col: 0}, {Row: 2, Col: 2}, {Row: 3, Col: 1},
		} {
			mustPlace(t, b, pos, Black)
		}

		moves := b.LegalMoves(White)

		require.NotContains(t, moves, Position{Row: 2, Col: 1}, "Suicide point should not be legal for white")
		require.NotContains(t, moves, Position{Row: 1, Col: 1}, "Occupied point should not be legal")
		require.Contains(t, b.LegalMoves(Black), Position{Row: 2, Col: 1}, "Eye point should be legal for its owner")
	})

	t.Run("does not mutate the board", func(t *testing.T) {
		b := newTestBoard(9)
		mustPlace(t, b, Position{Row: 4, Col: 4}, Black)
		before := takeSnapshot(b)

		_ = b.LegalMoves(White)

		require.Equal(t, before, takeSnapshot(b))
	})

	t.Run("returns nothing for a non-stone color", func(t *testing.T) {
		b := newTestBoard(9)

		require.Empty(t, b.LegalMoves(Empty))
	})
}

func TestHasLegalMoves(t *testing.T) {
	t.Run("reports moves on an open board", func(t *testing.T) {
		b := newTestBoard(9)

		require.True(t, b.HasLegalMoves(Black))
		require.True(t, b.HasLegalMoves(White))
	})

	t.Run("reports no moves when every placement is suicide", func(t *testing.T) {
		// On a 1x1 board the only point has no liberties and captures nothing.
		b := newTestBoard(1)

		require.False(t, b.HasLegalMoves(Black))
		require.False(t, b.HasLegalMoves(White))
	})
}

func TestBoardString(t *testing.T) {
	b := newTestBoard(3)
	mustPlace(t, b, Position{Row: 0, Col: 0}, Black)
	mustPlace(t, b, Position{Row: 1, Col: 1}, White)

	require.Equal(t, "B . .\n. W .\n. . .\n", b.String())
}
