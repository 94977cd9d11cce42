package knapsack

import "math"

// upperBound returns the fractional-relaxation bound on the best total value
// reachable from the partial state (value, left) committed for positions
// before depth.
//
// Items are scanned in ratio order. Each item that fits is absorbed whole:
// one unit for ZeroOne, floor(left/cost) units for Unbounded. The first item
// that cannot be absorbed contributes left·ratio and the scan stops. Because
// the working list is sorted by descending ratio, no integral completion can
// exceed this value, so the bound is admissible. If every remaining item is
// absorbed, the bound is exact.
//
// value and left are copies; the caller's state is untouched.
//
// Complexity: O(n − depth).
func (e *engine[V, C]) upperBound(depth int, value V, left C) float64 {
	var (
		bound = float64(value)
		it    Item[V, C]
		k     int
	)
	for ; depth < len(e.entries); depth++ {
		it = e.entries[depth].item
		if left < it.Cost {
			return bound + float64(left)*e.entries[depth].ratio
		}
		k = 1
		if e.unbounded {
			k = fitCopies(left, it.Cost)
		}
		left -= C(k) * it.Cost
		bound += float64(k) * float64(it.Value)
	}

	return bound
}

// maxCopies caps the float estimate in fitCopies to a count that is both an
// exact float64 and a valid int.
const maxCopies = min(maxExactInt, math.MaxInt)

// fitCopies returns floor(left/cost) for cost > 0 and left >= 0, so that
// k·cost <= left always holds exactly in C arithmetic.
//
// Integer costs use native division and never overflow. Float costs start
// from the float64 estimate, clamped to maxCopies, and are corrected by at
// most a few units; above 2^52 copies the floor is no longer exact but the
// result stays feasible.
func fitCopies[C Number](left, cost C) int {
	if left < cost {
		return 0
	}
	if C(1)/C(2) == 0 {
		q := left / cost
		if uint64(q) > math.MaxInt {
			return math.MaxInt
		}

		return int(q)
	}

	est := math.Floor(float64(left) / float64(cost))
	if !(est < maxCopies) {
		est = maxCopies
	}
	k := int(est)
	for i := 0; i < 4 && k > 0 && C(k)*cost > left; i++ {
		k--
	}
	for i := 0; i < 4 && k < maxCopies && cost <= left-C(k)*cost; i++ {
		k++
	}
	for k > 0 && C(k)*cost > left {
		k /= 2
	}

	return k
}
