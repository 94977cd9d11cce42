// Package knapsack_test: shared helpers for the solver tests.
//
// Contents:
//   - deterministic random instance generators (fixed seeds);
//   - brute-force oracles for the 0/1 and unbounded variants;
//   - invariant checks every returned Solution must satisfy.
package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapstack/knapsack"
)

// seedDet is the fixed seed used by every randomized test.
const seedDet = 20240917

// newRand returns a deterministic generator derived from seedDet.
func newRand(offset int64) *rand.Rand {
	return rand.New(rand.NewSource(seedDet + offset))
}

// mkInstance builds an int/int instance from (value, cost) pairs.
func mkInstance(budget int, pairs ...[2]int) *knapsack.Instance[int, int] {
	inst := knapsack.NewInstance[int, int](budget)
	for _, p := range pairs {
		inst.AddItem(p[0], p[1])
	}

	return inst
}

// randInstance draws n items with values in [0,maxV] and costs in [1,maxC].
func randInstance(r *rand.Rand, n, maxV, maxC, budget int) *knapsack.Instance[int, int] {
	inst := knapsack.NewInstance[int, int](budget)
	for i := 0; i < n; i++ {
		inst.AddItem(r.Intn(maxV+1), 1+r.Intn(maxC))
	}

	return inst
}

// bruteZeroOne enumerates all 2^n subsets and returns the best feasible value.
func bruteZeroOne(inst *knapsack.Instance[int, int]) int {
	var (
		n    = inst.Len()
		best int
	)
	for mask := 0; mask < 1<<n; mask++ {
		var v, c int
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				it := inst.Item(i)
				v += it.Value
				c += it.Cost
			}
		}
		if c <= inst.Budget() && v > best {
			best = v
		}
	}

	return best
}

// bruteUnbounded enumerates every multiset with count_i ≤ budget/cost_i.
// Items must have positive costs.
func bruteUnbounded(inst *knapsack.Instance[int, int]) int {
	var rec func(i, left int) int
	rec = func(i, left int) int {
		if i == inst.Len() {
			return 0
		}
		it := inst.Item(i)
		best := 0
		for k := 0; k*it.Cost <= left; k++ {
			if v := k*it.Value + rec(i+1, left-k*it.Cost); v > best {
				best = v
			}
		}

		return best
	}

	return rec(0, inst.Budget())
}

// narrowCosts copies inst into an instance with cost type C. Every budget
// and cost must fit in C.
func narrowCosts[C knapsack.Number](inst *knapsack.Instance[int, int]) *knapsack.Instance[int, C] {
	out := knapsack.NewInstance[int, C](C(inst.Budget()))
	for _, it := range inst.Items() {
		out.AddItem(it.Value, C(it.Cost))
	}

	return out
}

// mustFeasibleNarrow recomputes the total cost of sol in int, where a
// wrapped C product cannot hide an over-budget selection.
func mustFeasibleNarrow[C knapsack.Number](t *testing.T, inst *knapsack.Instance[int, C], sol *knapsack.Solution[int, C]) {
	t.Helper()
	var v, c int
	for i := 0; i < inst.Len(); i++ {
		it := inst.Item(i)
		n := sol.Count(i)
		require.GreaterOrEqual(t, n, 0, "item %d", i)
		v += n * it.Value
		c += n * int(it.Cost)
	}
	require.Equal(t, v, sol.Value())
	require.LessOrEqual(t, c, int(inst.Budget()), "true cost exceeds the budget")
	require.Equal(t, c, int(sol.Cost()))
}

// mustFeasible checks the invariants shared by every Solution: counts match
// the variant, excluded items stay at zero, totals are recomputable from the
// raw items and the cost fits the budget.
func mustFeasible(t *testing.T, inst *knapsack.Instance[int, int], sol *knapsack.Solution[int, int]) {
	t.Helper()
	require.NotNil(t, sol)
	require.Same(t, inst, sol.Instance())

	var v, c int
	for i := 0; i < inst.Len(); i++ {
		it := inst.Item(i)
		n := sol.Count(i)
		require.GreaterOrEqual(t, n, 0, "item %d", i)
		if sol.Variant() == knapsack.ZeroOne {
			require.LessOrEqual(t, n, 1, "item %d taken more than once", i)
		}
		if it.Cost > inst.Budget() {
			require.Zero(t, n, "item %d costs more than the budget", i)
		}
		require.Equal(t, n > 0, sol.Taken(i))
		v += n * it.Value
		c += n * it.Cost
	}
	require.Equal(t, v, sol.Value())
	require.Equal(t, c, sol.Cost())
	require.LessOrEqual(t, sol.Cost(), inst.Budget())
}
