package searcher

import (
	"math"

	"goban/game"
)

const noParent = -1

// node holds the statistics for one explored position.
type node struct {
	parent int
	move   game.Position // move that produced this node from its parent
	player game.Color    // side to move at this node
	visits int
	wins   int // rollouts won by the root player through this node

	moves    []game.Position // expanded moves, parallel to children
	children []int
	untried  []game.Position // legal moves not yet expanded
}

// tree is an arena of search nodes. Parent and child links are indices into
// the nodes slice, so there are no ownership cycles and the whole tree is
// discarded when a search call returns.
type tree struct {
	nodes []node
}

// newTree creates a tree whose root has player to move and the given legal
// moves still untried. The root is always index 0.
func newTree(player game.Color, untried []game.Position) *tree {
	return &tree{nodes: []node{{
		parent:  noParent,
		player:  player,
		untried: untried,
	}}}
}

func (t *tree) root() *node { return &t.nodes[0] }

// addChild expands parent with move, creating a node for the position where
// player is to move and untried holds that position's legal moves.
func (t *tree) addChild(parent int, move game.Position, player game.Color, untried []game.Position) int {
	child := len(t.nodes)
	t.nodes = append(t.nodes, node{
		parent:  parent,
		move:    move,
		player:  player,
		untried: untried,
	})
	p := &t.nodes[parent]
	p.moves = append(p.moves, move)
	p.children = append(p.children, child)
	return child
}

// takeUntried removes and returns the i-th untried move of the node at idx.
func (t *tree) takeUntried(idx, i int) game.Position {
	n := &t.nodes[idx]
	move := n.untried[i]
	n.untried = append(n.untried[:i], n.untried[i+1:]...)
	return move
}

// selectChild returns the child of idx with the highest UCT score, scanning
// in expansion order so ties resolve deterministically.
func (t *tree) selectChild(idx int, c float64) int {
	n := &t.nodes[idx]
	policy := newUCT(c, n.visits)
	best := n.children[0]
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		score := policy.evaluate(t.nodes[child].wins, t.nodes[child].visits)
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// bestMove returns the root move with the most visits. Visit count is the
// robust-child rule: more stable than win rate at low simulation counts.
func (t *tree) bestMove() (game.Position, bool) {
	r := t.root()
	if len(r.children) == 0 {
		return game.Position{}, false
	}
	best := 0
	for i, child := range r.children {
		if t.nodes[child].visits > t.nodes[r.children[best]].visits {
			best = i
		}
	}
	return r.moves[best], true
}

// backup walks from idx to the root, incrementing each node's visit count
// and crediting a win when the root player won the rollout.
func (t *tree) backup(idx int, rootWon bool) {
	for n := idx; n != noParent; n = t.nodes[n].parent {
		t.nodes[n].visits++
		if rootWon {
			t.nodes[n].wins++
		}
	}
}
