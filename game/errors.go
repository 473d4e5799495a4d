package game

import "errors"

// Board operation errors. All are recoverable: a rejected operation leaves
// the board's observable state exactly as it was before the call.
var (
	// ErrInvalidPosition reports a coordinate outside the board grid.
	ErrInvalidPosition = errors.New("position out of bounds")
	// ErrInvalidColor reports a move color that is neither Black nor White.
	ErrInvalidColor = errors.New("invalid move color")
	// ErrOccupiedCell reports a placement on a non-empty cell.
	ErrOccupiedCell = errors.New("cell already occupied")
	// ErrIllegalMove reports a suicide without capture or a ko violation.
	ErrIllegalMove = errors.New("illegal move")
	// ErrGameOver reports a move or pass after two consecutive passes.
	ErrGameOver = errors.New("game is over")
	// ErrEmptyHistory reports an undo with no applied actions to revert.
	ErrEmptyHistory = errors.New("no moves to undo")
)
