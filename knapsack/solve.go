// Package knapsack - unified entry points for the knapsack solvers.
//
// This file provides the canonical ways to run a solve:
//
//   - Solve:          0/1 knapsack by branch-and-bound.
//   - SolveUnbounded: unbounded knapsack by branch-and-bound.
//   - SolveWith:      route by Options.Variant and Options.Algorithm, including
//     the dynamic-programming solver for integral costs.
//
// Every entry point validates the instance first and returns a fresh
// Solution bound to it.
package knapsack

import (
	"fmt"
	"math"
	"time"
)

// Solve returns an optimal 0/1 selection for inst.
//
// Errors: ErrNilInstance, ErrInvalidInstance, and ErrTimeLimit (with the
// best incumbent found) when WithTimeLimit expired.
func Solve[V, C Number](inst *Instance[V, C], opts ...Option) (*Solution[V, C], error) {
	return branchAndBound(inst, ZeroOne, buildOptions(opts))
}

// SolveUnbounded returns an optimal selection for inst when every item may
// be taken any number of times. Zero-cost items with a positive value are
// taken exactly once; more copies would make the optimum unbounded.
//
// Errors: as Solve.
func SolveUnbounded[V, C Number](inst *Instance[V, C], opts ...Option) (*Solution[V, C], error) {
	return branchAndBound(inst, Unbounded, buildOptions(opts))
}

// SolveWith validates inst and routes to the requested variant and algorithm.
//
// DynamicProgramming requires a whole-number budget and whole-number costs;
// otherwise ErrNonIntegralCost is returned.
func SolveWith[V, C Number](inst *Instance[V, C], opts Options) (*Solution[V, C], error) {
	if opts.Variant != ZeroOne && opts.Variant != Unbounded {
		return nil, fmt.Errorf("%w: variant %d", ErrUnsupportedAlgorithm, int(opts.Variant))
	}
	switch opts.Algorithm {
	case BranchAndBound:
		return branchAndBound(inst, opts.Variant, opts)
	case DynamicProgramming:
		return dynamicProgramming(inst, opts.Variant, opts)
	default:
		return nil, fmt.Errorf("%w: algorithm %d", ErrUnsupportedAlgorithm, int(opts.Algorithm))
	}
}

// branchAndBound prepares the engine, runs the search and assembles the result.
func branchAndBound[V, C Number](inst *Instance[V, C], variant Variant, opts Options) (*Solution[V, C], error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	started := time.Now()

	ws := prepare(inst)
	e := engine[V, C]{
		entries:   ws.entries,
		budget:    inst.budget,
		unbounded: variant == Unbounded,
		log:       opts.Logger,
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = started.Add(opts.TimeLimit)
	}
	e.stats.Filtered = ws.filtered
	e.stats.FreeTaken = len(ws.free)

	e.search()

	sol := assemble(inst, variant, ws, e.bestStack)
	sol.stats = e.stats
	opts.Logger.V(1).Info("knapsack solved",
		"algorithm", BranchAndBound.String(),
		"variant", variant.String(),
		"items", inst.Len(),
		"value", sol.Value(),
		"cost", sol.Cost(),
		"nodes", e.stats.Nodes,
		"prunes", e.stats.Prunes,
		"elapsed", time.Since(started))
	if e.timedOut {
		return sol, ErrTimeLimit
	}

	return sol, nil
}

// assemble maps the best decision stack from working-list positions back to
// instance indices. The permutation is injective, so every position lands
// on a distinct index.
func assemble[V, C Number](inst *Instance[V, C], variant Variant, ws workingSet[V, C], best []decision[V, C]) *Solution[V, C] {
	sol := newSolution(inst, variant)
	for _, i := range ws.free {
		sol.set(i, 1)
	}
	for _, d := range best {
		sol.set(ws.entries[d.pos].index, d.count)
	}

	return sol
}

// maxExactInt is the largest float64 below which every integer is exact.
const maxExactInt = 1 << 53

// integral reports whether x is a whole number that converts to int exactly.
func integral[T Number](x T) bool {
	f := float64(x)

	return f == math.Trunc(f) && f <= maxExactInt
}

// dynamicProgramming converts an instance with whole-number costs to int
// costs and runs SolveDP on it.
func dynamicProgramming[V, C Number](inst *Instance[V, C], variant Variant, opts Options) (*Solution[V, C], error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	if !integral(inst.budget) {
		return nil, fmt.Errorf("%w: budget %v", ErrNonIntegralCost, inst.budget)
	}
	budget := int(inst.budget)
	conv := NewInstance[V, int](budget)
	for i, it := range inst.items {
		if it.Cost > inst.budget {
			// Never fits; any cost above the budget filters it the same way.
			conv.AddItem(it.Value, budget+1)
			continue
		}
		if !integral(it.Cost) {
			return nil, fmt.Errorf("%w: item %d has cost %v", ErrNonIntegralCost, i, it.Cost)
		}
		conv.AddItem(it.Value, int(it.Cost))
	}
	res, err := solveDP(conv, variant, opts)
	if err != nil {
		return nil, err
	}
	sol := newSolution(inst, variant)
	copy(sol.counts, res.counts)
	sol.stats = res.stats

	return sol, nil
}
