// Package knapsack provides exact solvers for the 0/1 knapsack problem and
// its unbounded variant over generic numeric values and costs.
//
// An Instance is a budget plus an ordered list of (value, cost) items; the
// position of an item is its handle. A solve returns a Solution bound to the
// Instance, reporting a count per item and the aggregate value and cost.
//
// Solvers:
//
//   - Solve, SolveUnbounded: iterative depth-first branch-and-bound.
//     Items that cannot fit alone are dropped, the rest are sorted by
//     descending value/cost, and every subtree whose fractional-relaxation
//     bound does not beat the incumbent is pruned. Exponential in the worst
//     case, O(n) memory.
//   - SolveDP: dynamic programming for integral costs, O(n·B) time.
//   - SolveWith: routes by Options.Variant and Options.Algorithm.
//
// Value and cost may be different types (e.g. float64 values with int
// costs). Negative, NaN or infinite quantities are rejected with
// ErrInvalidInstance. A zero budget, an empty instance or an instance whose
// items all exceed the budget is not an error: the Solution is empty apart
// from free items (see below).
//
// Zero-cost items are always efficient. Those with a positive value are
// taken exactly once, in both variants, before the search starts.
//
// Solvers keep no state between calls and may run concurrently on
// independent instances. An Instance must not be modified during a solve.
//
// Example:
//
//	inst := knapsack.NewInstance[int, int](50)
//	inst.AddItem(60, 10)
//	inst.AddItem(100, 20)
//	inst.AddItem(120, 30)
//
//	sol, err := knapsack.Solve(inst)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sol.Indices(), sol.Value(), sol.Cost()) // [1 2] 220 50
package knapsack
