package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCTPolicy(t *testing.T) {
	t.Run("computes wins/visits plus exploration term", func(t *testing.T) {
		policy := newUCT(1.5, 100)

		got := policy.evaluate(5, 10)

		expected := 5.0/10 + math.Sqrt(1.5*1.5*math.Log(100)/10)
		require.InDelta(t, expected, got, 0.0001)
	})

	t.Run("unvisited children score infinitely high", func(t *testing.T) {
		policy := newUCT(1.5, 100)

		require.True(t, math.IsInf(policy.evaluate(0, 0), 1),
			"Zero-visit child must be preferred over any visited child")
	})

	t.Run("tolerates an unvisited parent", func(t *testing.T) {
		policy := newUCT(1.5, 0)

		require.Equal(t, 1.0, policy.evaluate(1, 1), "ln(N) is floored at zero")
	})

	t.Run("exploration term grows with parent visits", func(t *testing.T) {
		score1 := newUCT(1.5, 100).evaluate(5, 10)
		score2 := newUCT(1.5, 1000).evaluate(5, 10)

		require.Greater(t, score2, score1)
	})

	t.Run("exploration term shrinks with child visits", func(t *testing.T) {
		policy := newUCT(1.5, 100)

		require.Greater(t, policy.evaluate(5, 10), policy.evaluate(5, 20))
	})
}
