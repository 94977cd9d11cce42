package knapsack

import (
	"fmt"
	"math"
)

// Instance is a budget plus an ordered collection of items. The position at
// which an item was appended is its identity: Solutions refer to items by
// that index.
//
// An Instance must not be mutated while a solve call is running on it.
type Instance[V, C Number] struct {
	budget C
	items  []Item[V, C]
}

// NewInstance returns an empty instance with the given budget.
func NewInstance[V, C Number](budget C) *Instance[V, C] {
	return &Instance[V, C]{budget: budget}
}

// SetBudget replaces the budget.
func (in *Instance[V, C]) SetBudget(b C) { in.budget = b }

// Budget returns the maximum total cost a selection may consume.
func (in *Instance[V, C]) Budget() C { return in.budget }

// AddItem appends an item and returns its index.
func (in *Instance[V, C]) AddItem(value V, cost C) int {
	in.items = append(in.items, Item[V, C]{Value: value, Cost: cost})

	return len(in.items) - 1
}

// Len returns the number of items.
func (in *Instance[V, C]) Len() int { return len(in.items) }

// Item returns the item at index i. It panics if i is out of range.
func (in *Instance[V, C]) Item(i int) Item[V, C] { return in.items[i] }

// Items returns a copy of the item list in insertion order.
func (in *Instance[V, C]) Items() []Item[V, C] {
	out := make([]Item[V, C], len(in.items))
	copy(out, in.items)

	return out
}

// Validate checks the non-negativity precondition shared by all solvers.
// Negative, NaN or infinite budget, values or costs yield ErrInvalidInstance.
func (in *Instance[V, C]) Validate() error {
	if in == nil {
		return ErrNilInstance
	}
	if bad(in.budget) {
		return fmt.Errorf("%w: budget %v", ErrInvalidInstance, in.budget)
	}
	for i, it := range in.items {
		if bad(it.Value) {
			return fmt.Errorf("%w: item %d has value %v", ErrInvalidInstance, i, it.Value)
		}
		if bad(it.Cost) {
			return fmt.Errorf("%w: item %d has cost %v", ErrInvalidInstance, i, it.Cost)
		}
	}

	return nil
}

// bad reports quantities no solver can work with.
func bad[T Number](x T) bool {
	f := float64(x)

	return x < 0 || math.IsNaN(f) || math.IsInf(f, 0)
}
