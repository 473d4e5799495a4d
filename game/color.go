package game

import "fmt"

// Color identifies the contents of a board cell. Empty is a valid cell state
// but not a legal move color.
type Color int

const (
	Empty Color = iota
	Black
	White
)

// Opposite returns the opposing stone color. Empty has no opposite and is
// returned unchanged.
func (c Color) Opposite() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// IsStone reports whether c is a playable stone color.
func (c Color) IsStone() bool {
	return c == Black || c == White
}

func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}
