// Package knapsack: branch-and-bound (exact search with admissible upper bounds).
//
// The engine explores the include/skip decision tree depth-first over the
// ratio-sorted working list without recursion. An explicit mode variable
// alternates two phases:
//
//  1. descending: scan forward from depth. Unaffordable positions are
//     skipped. Before committing an affordable one, the fractional bound is
//     evaluated; if it cannot beat the incumbent the scan is abandoned.
//     Otherwise the item is committed (one unit for ZeroOne, as many units
//     as fit for Unbounded) and pushed on the decision stack.
//  2. backtracking: the path value is compared with the incumbent, then the
//     newest decision loses one unit. A decision whose count reaches zero is
//     popped. The scan resumes right after that position, so "one copy
//     fewer, then the next item" is explored without re-deriving counts.
//
// The search ends when backtracking finds the stack empty.
//
// Complexity:
//   - Worst case exponential in the number of items; speed comes from pruning.
//   - Per node: O(n) bound + O(1) state updates.
//   - Memory: O(n) for the decision stack and the best copy.
package knapsack

import (
	"time"

	"github.com/go-logr/logr"
)

// mode is the phase of the search loop.
type mode int

const (
	descending mode = iota
	backtracking
)

// decision is one stack frame. value and left are the running totals
// before pos was committed, so undoing a unit is recomputed from them
// instead of subtracted, which keeps floating-point totals drift-free.
type decision[V, C Number] struct {
	pos   int
	count int
	value V
	left  C
}

// engine holds all state of one solve call. Nothing is shared between
// calls, so concurrent solves on independent instances need no locking.
type engine[V, C Number] struct {
	entries   []entry[V, C]
	budget    C
	unbounded bool
	log       logr.Logger

	// Time budget
	useDeadline bool
	deadline    time.Time
	timedOut    bool
	steps       uint64 // commits plus backtracks, drives deadlineCheck

	// Incumbent
	best      V
	bestStack []decision[V, C]

	stats Stats
}

// deadlineCheck counts one step and performs a rare deadline test (every
// 4096 steps). Both commits and backtracks are steps, so long runs of
// pruned unbounded copies are covered too.
func (e *engine[V, C]) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}
	if time.Now().After(e.deadline) {
		e.timedOut = true
	}

	return e.timedOut
}

// record commits the current stack as the new incumbent.
func (e *engine[V, C]) record(value V, stack []decision[V, C]) {
	e.best = value
	e.bestStack = append(e.bestStack[:0], stack...)
	e.stats.Incumbents++
	e.log.V(2).Info("new incumbent", "value", value, "depth", len(stack), "nodes", e.stats.Nodes)
}

// search runs the two-mode loop to exhaustion (or deadline) and leaves the
// optimum in e.best / e.bestStack.
func (e *engine[V, C]) search() {
	var (
		n     = len(e.entries)
		depth int
		value V
		left  = e.budget
		stack = make([]decision[V, C], 0, n)
		m     = descending
		it    Item[V, C]
		k     int
	)
	for {
		switch m {
		case descending:
			for ; depth < n; depth++ {
				it = e.entries[depth].item
				if it.Cost > left {
					continue
				}
				if e.upperBound(depth, value, left) <= float64(e.best) {
					e.stats.Prunes++
					break
				}
				k = 1
				if e.unbounded {
					k = fitCopies(left, it.Cost)
				}
				stack = append(stack, decision[V, C]{pos: depth, count: k, value: value, left: left})
				value += V(k) * it.Value
				left -= C(k) * it.Cost
				e.stats.Nodes++
				if e.deadlineCheck() {
					break
				}
			}
			if value > e.best {
				e.record(value, stack)
			}
			if e.timedOut {
				return
			}
			m = backtracking

		case backtracking:
			if len(stack) == 0 {
				return
			}
			if e.deadlineCheck() {
				return
			}
			top := &stack[len(stack)-1]
			it = e.entries[top.pos].item
			top.count--
			value = top.value + V(top.count)*it.Value
			left = top.left - C(top.count)*it.Cost
			depth = top.pos + 1
			if top.count == 0 {
				stack = stack[:len(stack)-1]
			}
			m = descending
		}
	}
}
