package knapsack

import (
	"fmt"
	"time"

	"golang.org/x/exp/constraints"
)

// maxDPCells caps the ZeroOne choice table (items × (budget+1)).
const maxDPCells = 1 << 28

// SolveDP solves inst by dynamic programming over integral costs. It is
// exact and deterministic, and serves as an independent cross-check of the
// branch-and-bound solvers on instances with small budgets.
//
//   - ZeroOne:   one value row plus an items×(budget+1) bit table of choices.
//   - Unbounded: one value row plus one last-choice row.
//
// Zero-cost items follow the same policy as branch-and-bound: a positive
// value one is taken exactly once.
//
// Errors: ErrNilInstance, ErrInvalidInstance, ErrUnsupportedAlgorithm for an
// unknown variant, ErrBudgetTooLarge when the table would exceed MaxDPBudget
// columns or the cell cap.
//
// Complexity: O(n·B) time; O(n·B) bits (ZeroOne) or O(B) (Unbounded) memory.
func SolveDP[V Number, C constraints.Integer](inst *Instance[V, C], variant Variant, opts ...Option) (*Solution[V, C], error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	return solveDP(inst, variant, buildOptions(opts))
}

func solveDP[V Number, C constraints.Integer](inst *Instance[V, C], variant Variant, opts Options) (*Solution[V, C], error) {
	if uint64(inst.budget) >= MaxDPBudget {
		return nil, fmt.Errorf("%w: budget %v", ErrBudgetTooLarge, inst.budget)
	}
	started := time.Now()

	var (
		budget = int(inst.budget)
		sol    = newSolution(inst, variant)
		idx    []int // candidate item indices
	)
	for i, it := range inst.items {
		switch {
		case it.Cost > inst.budget:
			sol.stats.Filtered++
		case it.Cost == 0:
			if it.Value > 0 {
				sol.set(i, 1)
				sol.stats.FreeTaken++
			}
		default:
			idx = append(idx, i)
		}
	}

	switch variant {
	case ZeroOne:
		if len(idx)*(budget+1) > maxDPCells {
			return nil, fmt.Errorf("%w: %d items × %d columns", ErrBudgetTooLarge, len(idx), budget+1)
		}
		dpZeroOne(inst, idx, budget, sol)
	case Unbounded:
		dpUnbounded(inst, idx, budget, sol)
	default:
		return nil, fmt.Errorf("%w: variant %d", ErrUnsupportedAlgorithm, int(variant))
	}

	opts.Logger.V(1).Info("knapsack solved",
		"algorithm", DynamicProgramming.String(),
		"variant", variant.String(),
		"items", inst.Len(),
		"value", sol.Value(),
		"cost", sol.Cost(),
		"elapsed", time.Since(started))

	return sol, nil
}

// dpZeroOne fills best[w] row by row (w descending so every item is used at
// most once) and remembers in keep which cells were improved by taking the
// item; walking keep backwards from the full budget recovers the selection.
func dpZeroOne[V Number, C constraints.Integer](inst *Instance[V, C], idx []int, budget int, sol *Solution[V, C]) {
	var (
		cols = budget + 1
		best = make([]V, cols)
		keep = make([]bool, len(idx)*cols)
		w, c int
		cand V
	)
	for r, i := range idx {
		it := inst.items[i]
		c = int(it.Cost)
		for w = budget; w >= c; w-- {
			cand = best[w-c] + it.Value
			if cand > best[w] {
				best[w] = cand
				keep[r*cols+w] = true
			}
		}
	}

	w = budget
	for r := len(idx) - 1; r >= 0; r-- {
		if keep[r*cols+w] {
			sol.set(idx[r], 1)
			w -= int(inst.items[idx[r]].Cost)
		}
	}
}

// dpUnbounded computes best[w] = max(best[w-1], max_i best[w-c_i]+v_i) with
// last[w] holding the item that achieved it (-1: carried over from w-1).
func dpUnbounded[V Number, C constraints.Integer](inst *Instance[V, C], idx []int, budget int, sol *Solution[V, C]) {
	var (
		best = make([]V, budget+1)
		last = make([]int, budget+1)
		w, c int
		cand V
	)
	last[0] = -1
	for w = 1; w <= budget; w++ {
		best[w], last[w] = best[w-1], -1
		for _, i := range idx {
			it := inst.items[i]
			c = int(it.Cost)
			if c > w {
				continue
			}
			cand = best[w-c] + it.Value
			if cand > best[w] {
				best[w], last[w] = cand, i
			}
		}
	}

	for w = budget; w > 0; {
		if last[w] < 0 {
			w--
			continue
		}
		sol.set(last[w], sol.Count(last[w])+1)
		w -= int(inst.items[last[w]].Cost)
	}
}
