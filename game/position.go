package game

import "fmt"

// Position is a zero-based (row, col) board coordinate. Whether a position is
// in bounds depends on the board it is used with; see Board.InBounds.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Stone is a single grid cell: a fixed position with a mutable color. The
// board creates one stone record per cell at construction and recolors it as
// the game progresses; Empty means the cell is unoccupied.
type Stone struct {
	pos   Position
	color Color
}

func (s *Stone) Position() Position { return s.pos }

func (s *Stone) Color() Color { return s.color }

func (s *Stone) Empty() bool { return s.color == Empty }
