package searcher

import (
	"math"

	"goban/game"
)

// Minimax finds moves by depth-limited adversarial search with alpha-beta
// pruning. White is the maximizing side, matching the sign convention of
// game.EvaluateCaptures. The board is mutated only transiently: every
// explored branch is undone before the call returns.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
}

type MinimaxOption func(*Minimax)

// WithDepth sets the lookahead searched below each candidate move.
func WithDepth(depth int) MinimaxOption {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithEvaluation replaces the capture-differential evaluation.
func WithEvaluation(evaluate game.Evaluate) MinimaxOption {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func NewMinimax(options ...MinimaxOption) *Minimax {
	m := &Minimax{
		depth:    DefaultDepth,
		evaluate: game.EvaluateCaptures,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the best move for color. It returns false when color has
// no legal move and the caller should pass. Each candidate is scored with a
// fresh (-Inf, +Inf) window; the first candidate wins ties.
func (m *Minimax) FindMove(b *game.Board, color game.Color) (game.Position, bool) {
	maximizing := color == game.White

	var bestMove game.Position
	bestScore := 0.0
	found := false
	for _, move := range b.LegalMoves(color) {
		mustPlay(b, move, color)
		score := m.search(b, m.depth, !maximizing, math.Inf(-1), math.Inf(1))
		mustUndo(b)

		if !found || (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore = score
			bestMove = move
			found = true
		}
	}
	return bestMove, found
}

// search returns the minimax value of the current position. Alpha-beta
// cutoffs skip subtrees that cannot change the parent's decision; the value
// returned is identical to an unpruned search at the same depth.
func (m *Minimax) search(b *game.Board, depth int, maximizing bool, alpha, beta float64) float64 {
	side := game.Black
	if maximizing {
		side = game.White
	}
	if depth <= 0 || !b.HasLegalMoves(side) {
		return m.evaluate(b)
	}

	if maximizing {
		best := math.Inf(-1)
		for _, move := range b.LegalMoves(side) {
			mustPlay(b, move, side)
			score := m.search(b, depth-1, false, alpha, beta)
			mustUndo(b)
			best = math.Max(best, score)
			alpha = math.Max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, move := range b.LegalMoves(side) {
		mustPlay(b, move, side)
		score := m.search(b, depth-1, true, alpha, beta)
		mustUndo(b)
		best = math.Min(best, score)
		beta = math.Min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}
