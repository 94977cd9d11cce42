package knapsack

// Solution records how many copies of each item of one Instance were
// selected. For the ZeroOne variant every count is 0 or 1.
//
// A Solution keeps a read-only reference to its Instance and must not
// outlive it; totals are recomputed from the Instance's items on demand.
type Solution[V, C Number] struct {
	inst    *Instance[V, C]
	variant Variant
	counts  []int
	stats   Stats
}

// newSolution returns a "nothing taken" solution bound to inst.
func newSolution[V, C Number](inst *Instance[V, C], variant Variant) *Solution[V, C] {
	return &Solution[V, C]{
		inst:    inst,
		variant: variant,
		counts:  make([]int, inst.Len()),
	}
}

// Instance returns the instance this solution is bound to.
func (s *Solution[V, C]) Instance() *Instance[V, C] { return s.inst }

// Variant reports which problem produced this solution.
func (s *Solution[V, C]) Variant() Variant { return s.variant }

// Stats returns the search counters of the solve call.
func (s *Solution[V, C]) Stats() Stats { return s.stats }

// Taken reports whether item i was selected at least once.
func (s *Solution[V, C]) Taken(i int) bool { return s.counts[i] > 0 }

// Count returns the number of copies of item i in the selection.
func (s *Solution[V, C]) Count(i int) int { return s.counts[i] }

// Counts returns a copy of the per-item counts in instance order.
func (s *Solution[V, C]) Counts() []int {
	out := make([]int, len(s.counts))
	copy(out, s.counts)

	return out
}

// Indices returns the selected item indices in ascending order.
func (s *Solution[V, C]) Indices() []int {
	var out []int
	for i, n := range s.counts {
		if n > 0 {
			out = append(out, i)
		}
	}

	return out
}

// Value returns Σ count[i]·items[i].Value.
func (s *Solution[V, C]) Value() V {
	var sum V
	for i, n := range s.counts {
		if n > 0 {
			sum += V(n) * s.inst.items[i].Value
		}
	}

	return sum
}

// Cost returns Σ count[i]·items[i].Cost.
func (s *Solution[V, C]) Cost() C {
	var sum C
	for i, n := range s.counts {
		if n > 0 {
			sum += C(n) * s.inst.items[i].Cost
		}
	}

	return sum
}

// set writes the decision for item i; only result assembly calls it.
func (s *Solution[V, C]) set(i, n int) { s.counts[i] = n }
