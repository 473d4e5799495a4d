package game

import (
	"fmt"
	"strings"
)

// Board owns the grid and is the sole authority over legality and state
// transitions. Every applied action is pushed onto a history log so it can
// be fully reverted with Undo; search code relies on this to explore
// branches on the live board without copying it.
//
// A Board is not safe for concurrent use. Parallel search requires an
// independently constructed board per worker.
type Board struct {
	size    int
	grid    []Stone // row-major, one record per cell for the game's lifetime
	black   *Player
	white   *Player
	current *Player

	ko         Position
	hasKo      bool
	passes     int
	terminated bool
	history    []record
}

// NewBoard creates an empty size x size board. Black moves first. The board
// takes the two players by reference and mutates their capture counts as
// stones are taken.
func NewBoard(size int, black, white *Player) *Board {
	grid := make([]Stone, size*size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			grid[r*size+c] = Stone{pos: Position{Row: r, Col: c}}
		}
	}
	return &Board{
		size:    size,
		grid:    grid,
		black:   black,
		white:   white,
		current: black,
	}
}

func (b *Board) Size() int { return b.size }

func (b *Board) Black() *Player { return b.black }

func (b *Board) White() *Player { return b.white }

// CurrentPlayer returns the side to move.
func (b *Board) CurrentPlayer() *Player { return b.current }

// Terminated reports whether two consecutive passes have ended the game.
func (b *Board) Terminated() bool { return b.terminated }

// HistoryLen returns the number of applied actions that can be undone.
func (b *Board) HistoryLen() int { return len(b.history) }

// Ko returns the currently forbidden recapture point, if any.
func (b *Board) Ko() (Position, bool) { return b.ko, b.hasKo }

// InBounds reports whether p lies on this board's grid.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// At returns the color of the cell at p.
func (b *Board) At(p Position) (Color, error) {
	if !b.InBounds(p) {
		return Empty, fmt.Errorf("%w: %v", ErrInvalidPosition, p)
	}
	return b.stoneAt(p).color, nil
}

// Place plays a stone of the given color at pos. On any failure the board,
// ko marker, pass counter, termination flag, and capture counts are left
// exactly as they were before the call.
func (b *Board) Place(pos Position, color Color) error {
	if !b.InBounds(pos) {
		return fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}
	if !color.IsStone() {
		return fmt.Errorf("%w: %v", ErrInvalidColor, color)
	}
	stone := b.stoneAt(pos)
	if !stone.Empty() {
		return fmt.Errorf("%w: %v", ErrOccupiedCell, pos)
	}
	if b.terminated {
		return ErrGameOver
	}

	stone.color = color
	if !b.moveIsLegal(pos) {
		stone.color = Empty
		return fmt.Errorf("%w: %v at %v", ErrIllegalMove, color, pos)
	}

	mover := b.playerFor(color)
	rec := record{
		kind:           placeRecord,
		pos:            pos,
		color:          color,
		prevKo:         b.ko,
		prevHasKo:      b.hasKo,
		prevPasses:     b.passes,
		prevTerminated: b.terminated,
		prevCaptures:   mover.Captures(),
	}
	captured := b.captures(pos)
	for _, c := range captured {
		rec.captures = append(rec.captures, capturedStone{pos: c, color: b.stoneAt(c).color})
		b.stoneAt(c).color = Empty
	}
	b.history = append(b.history, rec)
	mover.addCaptures(len(captured))

	// A single-stone capture by a lone stone with one liberty opens a ko:
	// the captured point is off limits for exactly one move.
	b.hasKo = false
	if len(captured) == 1 && len(b.group(pos)) == 1 && b.liberties(pos) == 1 {
		b.ko = captured[0]
		b.hasKo = true
	}

	b.current = b.current.Opponent()
	b.passes = 0
	return nil
}

// Pass records a pass for the side to move. Two consecutive passes
// terminate the game.
func (b *Board) Pass() error {
	if b.terminated {
		return ErrGameOver
	}
	b.history = append(b.history, record{
		kind:           passRecord,
		color:          b.current.Color(),
		prevKo:         b.ko,
		prevHasKo:      b.hasKo,
		prevPasses:     b.passes,
		prevTerminated: b.terminated,
	})
	b.current = b.current.Opponent()
	b.passes++
	if b.passes >= 2 {
		b.terminated = true
	}
	return nil
}

// Undo reverts the most recent place or pass, restoring the grid, captured
// stones, the mover's capture count, the ko marker, the pass counter, the
// termination flag, and the side to move.
func (b *Board) Undo() error {
	if len(b.history) == 0 {
		return ErrEmptyHistory
	}
	rec := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	if rec.kind == placeRecord {
		b.stoneAt(rec.pos).color = Empty
		for _, c := range rec.captures {
			b.stoneAt(c.pos).color = c.color
		}
		b.playerFor(rec.color).setCaptures(rec.prevCaptures)
	}
	b.ko = rec.prevKo
	b.hasKo = rec.prevHasKo
	b.passes = rec.prevPasses
	b.terminated = rec.prevTerminated
	b.current = b.current.Opponent()
	return nil
}

// LegalMoves enumerates every empty cell where color could legally play, in
// row-major order. The legality test matches Place exactly and leaves the
// board untouched.
func (b *Board) LegalMoves(color Color) []Position {
	if !color.IsStone() {
		return nil
	}
	var moves []Position
	for i := range b.grid {
		if !b.grid[i].Empty() {
			continue
		}
		if b.legalAt(b.grid[i].pos, color) {
			moves = append(moves, b.grid[i].pos)
		}
	}
	return moves
}

// HasLegalMoves reports whether color has at least one legal placement.
func (b *Board) HasLegalMoves(color Color) bool {
	if !color.IsStone() {
		return false
	}
	for i := range b.grid {
		if b.grid[i].Empty() && b.legalAt(b.grid[i].pos, color) {
			return true
		}
	}
	return false
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			switch b.grid[r*b.size+c].color {
			case Black:
				sb.WriteByte('B')
			case White:
				sb.WriteByte('W')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) index(p Position) int { return p.Row*b.size + p.Col }

func (b *Board) stoneAt(p Position) *Stone { return &b.grid[b.index(p)] }

func (b *Board) playerFor(color Color) *Player {
	if color == Black {
		return b.black
	}
	return b.white
}

// neighbors returns the in-bounds orthogonal neighbors of p (two to four).
func (b *Board) neighbors(p Position) []Position {
	buf := make([]Position, 0, 4)
	if p.Row > 0 {
		buf = append(buf, Position{Row: p.Row - 1, Col: p.Col})
	}
	if p.Row+1 < b.size {
		buf = append(buf, Position{Row: p.Row + 1, Col: p.Col})
	}
	if p.Col > 0 {
		buf = append(buf, Position{Row: p.Row, Col: p.Col - 1})
	}
	if p.Col+1 < b.size {
		buf = append(buf, Position{Row: p.Row, Col: p.Col + 1})
	}
	return buf
}

// group flood-fills the maximal 4-connected set of same-colored stones
// containing the stone at p.
func (b *Board) group(p Position) []Position {
	color := b.stoneAt(p).color
	visited := make([]bool, len(b.grid))
	visited[b.index(p)] = true
	stones := []Position{p}
	for i := 0; i < len(stones); i++ {
		for _, n := range b.neighbors(stones[i]) {
			ni := b.index(n)
			if visited[ni] || b.grid[ni].color != color {
				continue
			}
			visited[ni] = true
			stones = append(stones, n)
		}
	}
	return stones
}

// liberties counts the distinct empty cells adjacent to the group containing
// the stone at p. Returns -1 for an empty cell.
func (b *Board) liberties(p Position) int {
	color := b.stoneAt(p).color
	if color == Empty {
		return -1
	}
	visited := make([]bool, len(b.grid))
	visited[b.index(p)] = true
	queue := []Position{p}
	liberties := 0
	for i := 0; i < len(queue); i++ {
		for _, n := range b.neighbors(queue[i]) {
			ni := b.index(n)
			if visited[ni] {
				continue
			}
			visited[ni] = true
			switch b.grid[ni].color {
			case color:
				queue = append(queue, n)
			case Empty:
				liberties++
			}
		}
	}
	return liberties
}

// captures collects every opposing stone captured by the stone at p: each
// neighboring enemy group left with zero liberties. Stones shared between
// neighbors are reported once.
func (b *Board) captures(p Position) []Position {
	enemy := b.stoneAt(p).color.Opposite()
	seen := make(map[Position]bool)
	var captured []Position
	for _, n := range b.neighbors(p) {
		if b.stoneAt(n).color != enemy || seen[n] {
			continue
		}
		if b.liberties(n) != 0 {
			continue
		}
		for _, s := range b.group(n) {
			if !seen[s] {
				seen[s] = true
				captured = append(captured, s)
			}
		}
	}
	return captured
}

// moveIsLegal checks the stone just placed at p: it must not recapture the
// ko point and must not be a suicide that captures nothing. The caller has
// already set the cell's color and is responsible for reverting it when the
// move is rejected.
func (b *Board) moveIsLegal(p Position) bool {
	if b.hasKo && p == b.ko {
		return false
	}
	if len(b.captures(p)) == 0 && b.liberties(p) <= 0 {
		return false
	}
	return true
}

// legalAt simulates placing color on the empty cell at p. The tentative
// stone is always removed before returning.
func (b *Board) legalAt(p Position, color Color) bool {
	s := b.stoneAt(p)
	s.color = color
	legal := b.moveIsLegal(p)
	s.color = Empty
	return legal
}
