package knapsack

import "sort"

// entry is one working-list record: the item, its cached ratio and the
// index it had in the Instance. Keeping the three together means sorting
// can never desynchronize the permutation from the items.
type entry[V, C Number] struct {
	item  Item[V, C]
	ratio float64
	index int
}

// byRatio implements sort.Interface in descending-ratio order.
type byRatio[V, C Number] []entry[V, C]

func (b byRatio[V, C]) Len() int           { return len(b) }
func (b byRatio[V, C]) Less(i, j int) bool { return b[i].ratio > b[j].ratio }
func (b byRatio[V, C]) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }

// workingSet is the output of preprocessing.
type workingSet[V, C Number] struct {
	entries  []entry[V, C] // search candidates, descending ratio
	free     []int         // zero-cost, positive-value items taken up front
	filtered int           // items with cost > budget
}

// prepare filters and orders the items of inst for the search.
//
//   - cost > budget: dropped, since not even one unit can ever fit.
//   - cost == 0 and value > 0: taken once without consuming budget.
//   - cost == 0 and value == 0: ignored, contributes nothing.
//   - otherwise: kept, then stably sorted by descending value/cost.
//
// Complexity: O(n log n) time, O(n) space.
func prepare[V, C Number](inst *Instance[V, C]) workingSet[V, C] {
	var (
		ws     workingSet[V, C]
		budget = inst.budget
	)
	ws.entries = make([]entry[V, C], 0, len(inst.items))
	for i, it := range inst.items {
		switch {
		case it.Cost > budget:
			ws.filtered++
		case it.Cost == 0:
			if it.Value > 0 {
				ws.free = append(ws.free, i)
			}
		default:
			ws.entries = append(ws.entries, entry[V, C]{item: it, ratio: it.Ratio(), index: i})
		}
	}
	// Stable: equal ratios keep insertion order so results are reproducible.
	sort.Stable(byRatio[V, C](ws.entries))

	return ws
}
