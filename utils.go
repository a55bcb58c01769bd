package chronofield

import "math"

// addInt64 reports whether v1+v2 would underflow or overflow int64,
// alongside the (meaningless, if either flag is set) sum. Adapted from the
// teacher's own overflow-boundary check (see DESIGN.md).
func addInt64(v1, v2 int64) (sum int64, underflows, overflows bool) {
	if v2 > 0 {
		v := math.MaxInt64 - v1
		if v < 0 {
			v = -v
		}
		if v < v2 {
			return 0, false, true
		}
	} else if v2 < 0 {
		v := math.MinInt64 + v1
		if v < 0 {
			v = -v
		}
		if -v > v2 { // v < -v2 can't be used because -math.MinInt64 > math.MaxInt64
			return 0, true, false
		}
	}
	return v1 + v2, false, false
}

// mulInt64 reports whether v1*v2 would overflow int64, alongside the
// (meaningless, if overflows) product.
func mulInt64(v1, v2 int64) (product int64, overflows bool) {
	if v1 == 0 || v2 == 0 {
		return 0, false
	}
	p := v1 * v2
	if p/v2 != v1 {
		return 0, true
	}
	return p, false
}
