// Package searcher implements the two game-tree searches played against the
// board engine: depth-limited minimax with alpha-beta pruning, and Monte
// Carlo tree search with UCT selection. Both explore branches on the live
// board and undo everything they apply, so a search call leaves the board
// exactly as it found it.
package searcher

import "goban/game"

// Search hyperparameter defaults.

// Exploration is the default UCT exploration constant.
const Exploration = 1.5

// DefaultSimulations is the default number of MCTS simulations per move.
const DefaultSimulations = 100

// DefaultCutoff is the default bound on rollout length, in moves.
const DefaultCutoff = 50

// DefaultDepth is the default minimax lookahead below each candidate move.
const DefaultDepth = 2

// mustPlay applies a move the search derived from the board's own legal-move
// enumeration. An error here means the search and board are out of sync.
func mustPlay(b *game.Board, pos game.Position, color game.Color) {
	if err := b.Place(pos, color); err != nil {
		panic("searcher: illegal move from own enumeration: " + err.Error())
	}
}

func mustPass(b *game.Board) {
	if err := b.Pass(); err != nil {
		panic("searcher: pass rejected: " + err.Error())
	}
}

func mustUndo(b *game.Board) {
	if err := b.Undo(); err != nil {
		panic("searcher: undo with empty history: " + err.Error())
	}
}
