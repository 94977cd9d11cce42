// Package knapsack defines core types, sentinel errors and configuration
// options for the knapsack solvers.
package knapsack

import (
	"errors"
	"math"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the knapsack solvers.
var (
	// ErrNilInstance indicates that a nil *Instance was passed to a solver.
	ErrNilInstance = errors.New("knapsack: instance is nil")

	// ErrInvalidInstance indicates a negative, NaN or infinite budget, value or cost.
	ErrInvalidInstance = errors.New("knapsack: invalid instance")

	// ErrTimeLimit is returned when a positive time limit expired before the
	// search tree was exhausted. The returned Solution holds the best
	// incumbent found so far and is feasible but not proven optimal.
	ErrTimeLimit = errors.New("knapsack: time limit exceeded")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm or Variant.
	ErrUnsupportedAlgorithm = errors.New("knapsack: unsupported algorithm")

	// ErrNonIntegralCost indicates that DynamicProgramming was requested for
	// an instance whose budget or costs are not whole numbers.
	ErrNonIntegralCost = errors.New("knapsack: dynamic programming requires integral costs")

	// ErrBudgetTooLarge indicates that the DP table would exceed MaxDPBudget columns.
	ErrBudgetTooLarge = errors.New("knapsack: budget too large for dynamic programming")
)

// MaxDPBudget caps the number of DP columns (budget+1) SolveDP will allocate.
const MaxDPBudget = 1 << 24

// Number is the set of numeric types usable for values and costs.
type Number interface {
	constraints.Integer | constraints.Float
}

// Item is a (value, cost) pair.
type Item[V, C Number] struct {
	Value V
	Cost  C
}

// Ratio returns the efficiency value/cost. Free items (cost 0) are
// maximally efficient and report +Inf.
func (it Item[V, C]) Ratio() float64 {
	if it.Cost == 0 {
		return math.Inf(1)
	}

	return float64(it.Value) / float64(it.Cost)
}

// Before reports whether it precedes other in descending-efficiency order.
func (it Item[V, C]) Before(other Item[V, C]) bool {
	return it.Ratio() > other.Ratio()
}

// Variant selects which knapsack problem is solved.
type Variant int

const (
	// ZeroOne allows each item at most once.
	ZeroOne Variant = iota

	// Unbounded allows any non-negative number of copies per item.
	Unbounded
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case ZeroOne:
		return "zero-one"
	case Unbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// Algorithm selects the solving method used by SolveWith.
type Algorithm int

const (
	// BranchAndBound is the exact depth-first search with fractional bounds.
	BranchAndBound Algorithm = iota

	// DynamicProgramming is the O(n·B) table solver; integral costs only.
	DynamicProgramming
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case BranchAndBound:
		return "branch-and-bound"
	case DynamicProgramming:
		return "dynamic-programming"
	default:
		return "unknown"
	}
}

// Stats reports search counters for one solve call.
type Stats struct {
	Nodes      int // positions committed by the descend phase
	Prunes     int // subtrees cut by the upper bound
	Incumbents int // improvements of the best value
	Filtered   int // items dropped because cost > budget
	FreeTaken  int // zero-cost items taken during preprocessing
}

// Options configures the solvers.
//
//   - Variant   – ZeroOne (default) or Unbounded; used by SolveWith only.
//   - Algorithm – BranchAndBound (default) or DynamicProgramming; SolveWith only.
//   - TimeLimit – optional soft budget for branch-and-bound; 0 means none.
//   - Logger    – structured logger; defaults to logr.Discard().
type Options struct {
	Variant   Variant
	Algorithm Algorithm
	TimeLimit time.Duration
	Logger    logr.Logger
}

// Option represents a functional option for configuring a solve.
type Option func(*Options)

// WithVariant sets the problem variant for SolveWith.
func WithVariant(v Variant) Option {
	return func(o *Options) {
		o.Variant = v
	}
}

// WithAlgorithm sets the solving method for SolveWith.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithTimeLimit sets a soft time limit for branch-and-bound.
// Non-positive values disable the limit.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithLogger attaches a logr.Logger. Solve summaries are logged at V(1),
// incumbent updates at V(2).
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns ZeroOne, BranchAndBound, no time limit and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Variant:   ZeroOne,
		Algorithm: BranchAndBound,
		Logger:    logr.Discard(),
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
