package searcher

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"goban/game"
)

// MCTS finds moves by Monte Carlo tree search with UCT selection. One
// FindMove call runs a fixed number of simulations against the live board;
// every action a simulation applies is undone before the next one starts,
// so the board comes back bit-identical.
type MCTS struct {
	simulations int
	duration    time.Duration
	cutoff      int
	exploration float64
	rng         *rand.Rand
	metrics     MetricsCollector
}

type Option func(*MCTS)

// WithSimulations sets the number of simulations per FindMove call.
func WithSimulations(n int) Option {
	return func(m *MCTS) {
		if n > 0 {
			m.simulations = n
		}
	}
}

// WithDuration sets a soft deadline checked between simulations. The search
// returns the best move found so far rather than failing.
func WithDuration(d time.Duration) Option {
	return func(m *MCTS) {
		if d > 0 {
			m.duration = d
		}
	}
}

// WithCutoff bounds rollout length in moves.
func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

// WithExploration sets the UCT exploration constant.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

// WithSeed makes move sampling reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMetrics enables per-search metrics collection.
func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		simulations: DefaultSimulations,
		cutoff:      DefaultCutoff,
		exploration: Exploration,
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:     NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove searches for the best move for color, the side to move on b. It
// returns false when color has no legal move and the caller should pass.
func (m *MCTS) FindMove(b *game.Board, color game.Color) (game.Position, bool) {
	t := newTree(color, b.LegalMoves(color))

	m.metrics.Start()
	deadline := time.Time{}
	if m.duration > 0 {
		deadline = time.Now().Add(m.duration)
	}
	for i := 0; i < m.simulations; i++ {
		m.simulate(b, t)
		m.metrics.AddSimulation()
		// Soft deadline: at least one simulation always runs, so there is a
		// best-so-far move to return.
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			break
		}
	}
	metric := m.metrics.Complete()

	move, ok := t.bestMove()
	log.Debug().
		Stringer("color", color).
		Int("rootVisits", t.root().visits).
		Int64("fullPlayouts", metric.FullPlayouts).
		Dur("took", metric.Duration).
		Msg("mcts search complete")
	return move, ok
}

// simulate runs one selection/expansion/rollout/backpropagation pass and
// rewinds the board afterwards.
func (m *MCTS) simulate(b *game.Board, t *tree) {
	applied := 0
	cur := 0

	// Selection: descend through fully expanded nodes by UCT score.
	for len(t.nodes[cur].untried) == 0 && !b.Terminated() && len(t.nodes[cur].children) > 0 {
		next := t.selectChild(cur, m.exploration)
		mustPlay(b, t.nodes[next].move, t.nodes[cur].player)
		applied++
		cur = next
	}

	// Expansion: try one untried move, chosen uniformly at random.
	if !b.Terminated() && len(t.nodes[cur].untried) > 0 {
		move := t.takeUntried(cur, m.rng.Intn(len(t.nodes[cur].untried)))
		player := t.nodes[cur].player
		mustPlay(b, move, player)
		applied++
		next := player.Opposite()
		cur = t.addChild(cur, move, next, b.LegalMoves(next))
	}

	// Rollout: random play until termination or the depth cutoff, passing
	// whenever the side to move has no legal placement.
	side := t.nodes[cur].player
	depth := 0
	for !b.Terminated() && depth < m.cutoff {
		moves := b.LegalMoves(side)
		if len(moves) == 0 {
			mustPass(b)
			applied++
			side = side.Opposite()
			continue
		}
		mustPlay(b, moves[m.rng.Intn(len(moves))], side)
		applied++
		side = side.Opposite()
		depth++
	}
	if b.Terminated() {
		m.metrics.AddFullPlayout()
	}

	// Backpropagation: score the final position from the root player's
	// perspective and credit the path.
	blackScore, whiteScore := b.Score()
	rootWon := blackScore > whiteScore
	if t.root().player == game.White {
		rootWon = whiteScore > blackScore
	}
	t.backup(cur, rootWon)

	// Rewind everything this simulation played.
	for ; applied > 0; applied-- {
		mustUndo(b)
	}
}
