package knapsack

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_Ratio(t *testing.T) {
	assert.Equal(t, 6.0, Item[int, int]{Value: 60, Cost: 10}.Ratio())
	assert.True(t, math.IsInf(Item[int, int]{Value: 1, Cost: 0}.Ratio(), 1))
	assert.True(t, Item[int, int]{Value: 5, Cost: 1}.Before(Item[int, int]{Value: 9, Cost: 3}))
	assert.False(t, Item[int, int]{Value: 2, Cost: 1}.Before(Item[int, int]{Value: 4, Cost: 2}))
}

func TestPrepare_FiltersAndSorts(t *testing.T) {
	inst := NewInstance[int, int](10)
	inst.AddItem(4, 4)   // 0: ratio 1
	inst.AddItem(30, 11) // 1: too expensive
	inst.AddItem(9, 3)   // 2: ratio 3
	inst.AddItem(7, 0)   // 3: free
	inst.AddItem(0, 0)   // 4: free, worthless
	inst.AddItem(2, 2)   // 5: ratio 1, after 0 (stable)
	inst.AddItem(10, 5)  // 6: ratio 2

	ws := prepare(inst)
	require.Len(t, ws.entries, 4)

	var order []int
	for _, e := range ws.entries {
		order = append(order, e.index)
	}
	assert.Equal(t, []int{2, 6, 0, 5}, order)
	assert.Equal(t, []int{3}, ws.free)
	assert.Equal(t, 1, ws.filtered)

	for _, e := range ws.entries {
		assert.Equal(t, inst.Item(e.index), e.item, "entry keeps its own item")
	}
}

func TestFitCopies(t *testing.T) {
	assert.Equal(t, 3, fitCopies(35, 10))
	assert.Equal(t, 0, fitCopies(9, 10))
	assert.Equal(t, 4, fitCopies(2.0, 0.5))
	assert.Equal(t, 2, fitCopies(0.3, 0.1), "3·0.1 exceeds 0.3 in float64")
	assert.Equal(t, 7, fitCopies(uint8(255), uint8(36)))

	// Integer products near the top of the type must not wrap.
	assert.Equal(t, 2, fitCopies(uint8(200), uint8(100)))
	assert.Equal(t, 255, fitCopies(uint8(255), uint8(1)))
	assert.Equal(t, 127, fitCopies(int8(127), int8(1)))
	assert.Equal(t, 1, fitCopies(int8(127), int8(64)))
	assert.Equal(t, math.MaxInt, fitCopies(int64(math.MaxInt), int64(1)))
	assert.Equal(t, 3, fitCopies(uint64(math.MaxUint64), uint64(math.MaxUint64/3)))

	// A quotient beyond exact float64 integers is capped but stays feasible.
	k := fitCopies(1e300, 1e-10)
	assert.Equal(t, maxCopies, k)
	assert.LessOrEqual(t, float64(k)*1e-10, 1e300)

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		left, cost := r.Float64()*100, 0.01+r.Float64()*10
		k := fitCopies(left, cost)
		require.LessOrEqual(t, float64(k)*cost, left)
		require.Greater(t, float64(k+1)*cost, left)
	}
}

func newTestEngine(inst *Instance[int, int], unbounded bool) *engine[int, int] {
	ws := prepare(inst)

	return &engine[int, int]{entries: ws.entries, budget: inst.budget, unbounded: unbounded}
}

func TestUpperBound_FractionalStop(t *testing.T) {
	inst := NewInstance[int, int](50)
	inst.AddItem(60, 10)
	inst.AddItem(100, 20)
	inst.AddItem(120, 30)
	e := newTestEngine(inst, false)

	// 60 + 100 whole, then 20/30 of 120.
	assert.InDelta(t, 240.0, e.upperBound(0, 0, 50), 1e-9)
	// From depth 1 with 60 committed and 40 left: 100 whole, then 20·4.
	assert.InDelta(t, 240.0, e.upperBound(1, 60, 40), 1e-9)
	// Everything absorbed: exact.
	assert.InDelta(t, 280.0, e.upperBound(0, 0, 60), 1e-9)
	assert.Equal(t, 0.0, e.upperBound(0, 0, 0))
}

func TestUpperBound_Unbounded(t *testing.T) {
	inst := NewInstance[int, int](33)
	inst.AddItem(60, 10)
	inst.AddItem(10, 4)
	e := newTestEngine(inst, true)

	// 3 copies of the first (180, 3 left), then 3·2.5 of the second.
	assert.InDelta(t, 187.5, e.upperBound(0, 0, 33), 1e-9)
	// 35 leaves 5: one whole copy of the second, then nothing left to scan.
	assert.InDelta(t, 190.0, e.upperBound(0, 0, 35), 1e-9)
}

// TestUpperBound_Admissible checks bound ≥ true optimum for random states.
func TestUpperBound_Admissible(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 200; trial++ {
		inst := NewInstance[int, int](r.Intn(60))
		n := 1 + r.Intn(9)
		for i := 0; i < n; i++ {
			inst.AddItem(r.Intn(40), 1+r.Intn(15))
		}
		for _, unbounded := range []bool{false, true} {
			var (
				sol *Solution[int, int]
				err error
			)
			if unbounded {
				sol, err = SolveUnbounded(inst)
			} else {
				sol, err = Solve(inst)
			}
			require.NoError(t, err)
			e := newTestEngine(inst, unbounded)
			require.GreaterOrEqual(t, e.upperBound(0, 0, inst.budget)+1e-9, float64(sol.Value()), "trial %d", trial)
		}
	}
}

func TestSearch_StatsAndStackBalance(t *testing.T) {
	inst := NewInstance[int, int](50)
	inst.AddItem(60, 10)
	inst.AddItem(100, 20)
	inst.AddItem(120, 30)
	e := newTestEngine(inst, false)
	e.log = DefaultOptions().Logger

	e.search()
	assert.Equal(t, 220, e.best)
	require.Len(t, e.bestStack, 2)
	assert.Equal(t, []int{1, 2}, []int{e.entries[e.bestStack[0].pos].index, e.entries[e.bestStack[1].pos].index})
	assert.Equal(t, 3, e.stats.Incumbents)
	assert.Positive(t, e.stats.Prunes)
}
