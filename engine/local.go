// Package engine runs complete games between two agents on a shared board.
// It owns the game loop only; the board stays the sole authority over
// legality, and the engine never auto-passes for an agent.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"goban/game"
)

// Agent picks a move for color on the given board. Returning false means
// the agent has no move and wants to pass.
type Agent interface {
	FindMove(b *game.Board, color game.Color) (game.Position, bool)
}

// AgentFunc adapts a plain function to the Agent interface.
type AgentFunc func(b *game.Board, color game.Color) (game.Position, bool)

func (f AgentFunc) FindMove(b *game.Board, color game.Color) (game.Position, bool) {
	return f(b, color)
}

// DefaultMaxTurns caps runaway games that never double-pass.
const DefaultMaxTurns = 300

// Engine drives one game between a black and a white agent.
type Engine struct {
	board    *game.Board
	agents   map[game.Color]Agent
	maxTurns int
}

type EngineOption func(*Engine)

// WithMaxTurns overrides the turn cap.
func WithMaxTurns(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxTurns = n
		}
	}
}

// Local creates an engine for a game on board between two agents.
func Local(board *game.Board, black, white Agent, options ...EngineOption) *Engine {
	if black == nil || white == nil {
		panic("engine: both agents are required")
	}
	e := &Engine{
		board:    board,
		agents:   map[game.Color]Agent{game.Black: black, game.White: white},
		maxTurns: DefaultMaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) Board() *game.Board { return e.board }

// Run plays until the game terminates or the turn cap is reached, then
// returns the final score.
func (e *Engine) Run() (blackScore, whiteScore int, err error) {
	log.Info().
		Stringer("starting", e.board.CurrentPlayer().Color()).
		Int("size", e.board.Size()).
		Msg("game started")

	for turn := 1; !e.board.Terminated() && turn <= e.maxTurns; turn++ {
		color := e.board.CurrentPlayer().Color()
		if err := e.playTurn(color); err != nil {
			return 0, 0, fmt.Errorf("turn %d (%v): %w", turn, color, err)
		}
	}

	blackScore, whiteScore = e.board.Score()
	log.Info().
		Int("black", blackScore).
		Int("white", whiteScore).
		Int("blackCaptures", e.board.Black().Captures()).
		Int("whiteCaptures", e.board.White().Captures()).
		Bool("terminated", e.board.Terminated()).
		Msg("game over")
	return blackScore, whiteScore, nil
}

func (e *Engine) playTurn(color game.Color) error {
	move, ok := e.agents[color].FindMove(e.board, color)
	if !ok {
		log.Debug().Stringer("color", color).Msg("agent passes")
		return e.board.Pass()
	}
	if err := e.board.Place(move, color); err != nil {
		// An agent returning an illegal move is a bug in the agent, not a
		// recoverable game state.
		return fmt.Errorf("agent played illegal move %v: %w", move, err)
	}
	log.Debug().Stringer("color", color).Stringer("move", move).Msg("agent plays")
	return nil
}
