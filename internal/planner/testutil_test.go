package planner

import (
	"math"
	"math/rand"

	"poiroute/internal/geo"
	"poiroute/internal/model"
)

// randomPoints scatters n points in a small box around Gangnam.
func randomPoints(rng *rand.Rand, n int) []geo.Point {
	pts := make([]geo.Point, n)
	for i := range pts {
		pts[i] = geo.Point{Lat: 37.48 + rng.Float64()*0.05, Lng: 127.00 + rng.Float64()*0.05}
	}
	return pts
}

func poisAt(pts []geo.Point, cats ...model.Category) []model.POI {
	out := make([]model.POI, len(pts))
	for i, p := range pts {
		c := model.Restaurant
		if i < len(cats) {
			c = cats[i]
		}
		out[i] = model.POI{Name: string(rune('A' + i)), Category: c, Lat: p.Lat, Lng: p.Lng}
	}
	return out
}

// bruteForce returns the exact optimum by enumerating permutations.
func bruteForce(g *Graph, cycle bool) float64 {
	n := g.Len()
	perm := make(Tour, n)
	for i := range perm {
		perm[i] = i
	}
	best := math.Inf(1)
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			if l := g.Length(perm, cycle, nil); l < best {
				best = l
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0)
	return best
}

func isPermutation(t Tour, n int) bool {
	return checkPermutation(t, n) == nil
}

func intp(v int) *int { return &v }
