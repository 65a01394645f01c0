package planner

const twoOptEps = 1e-9

// improve2Opt applies first-improvement 2-opt until no move helps or passes
// run out. Segment reversal keeps the tour a permutation.
func improve2Opt(t Tour, cycle bool, w WeightFunc, passes int) Tour {
	if passes <= 0 {
		passes = 1
	}
	n := len(t)
	if n < 3 || (cycle && n < 4) {
		return t
	}
	best := append(Tour(nil), t...)
	for it := 0; it < passes; it++ {
		improved := false
		if cycle {
			improved = cyclePass(best, w)
		} else {
			improved = pathPass(best, w)
		}
		if !improved {
			break
		}
	}
	return best
}

// cyclePass keeps t[0] fixed and tries every reversal of t[i..k].
func cyclePass(t Tour, w WeightFunc) bool {
	n := len(t)
	improved := false
	for i := 1; i < n-1; i++ {
		for k := i + 1; k < n; k++ {
			a, b, c, d := t[i-1], t[i], t[k], t[(k+1)%n]
			if d == a {
				continue
			}
			delta := w(a, c) + w(b, d) - w(a, b) - w(c, d)
			if delta < -twoOptEps {
				reverse(t, i, k)
				improved = true
			}
		}
	}
	return improved
}

// pathPass allows the reversed segment to touch either end, so endpoints
// may change.
func pathPass(t Tour, w WeightFunc) bool {
	n := len(t)
	improved := false
	for i := 0; i < n-1; i++ {
		for k := i + 1; k < n; k++ {
			if i == 0 && k == n-1 {
				continue
			}
			before, after := 0.0, 0.0
			if i > 0 {
				before += w(t[i-1], t[i])
				after += w(t[i-1], t[k])
			}
			if k < n-1 {
				before += w(t[k], t[k+1])
				after += w(t[i], t[k+1])
			}
			if after-before < -twoOptEps {
				reverse(t, i, k)
				improved = true
			}
		}
	}
	return improved
}

func reverse(t Tour, i, k int) {
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
}
