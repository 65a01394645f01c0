package planner

import "poiroute/internal/geo"

// Graph is a complete weighted graph over request-local POI indices, stored
// as a dense row-major distance matrix in kilometers.
type Graph struct {
	n      int
	points []geo.Point
	dist   []float64
}

// BuildGraph computes all pairwise haversine distances. The matrix is
// symmetric with a zero diagonal.
func BuildGraph(points []geo.Point) *Graph {
	n := len(points)
	g := &Graph{n: n, points: append([]geo.Point(nil), points...), dist: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := geo.Distance(points[i], points[j])
			g.dist[i*n+j] = d
			g.dist[j*n+i] = d
		}
	}
	return g
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return g.n }

// Dist returns the precomputed distance between nodes i and j.
func (g *Graph) Dist(i, j int) float64 { return g.dist[i*g.n+j] }

// Nearest returns the node closest to origin. Ties go to the lowest index.
func (g *Graph) Nearest(origin geo.Point) (int, bool) {
	if g.n == 0 {
		return -1, false
	}
	best, bestD := 0, geo.Distance(origin, g.points[0])
	for i := 1; i < g.n; i++ {
		if d := geo.Distance(origin, g.points[i]); d < bestD {
			best, bestD = i, d
		}
	}
	return best, true
}

// WeightFunc selects the edge weight used by the tour constructor.
type WeightFunc func(i, j int) float64

// Length sums the weights along t, including the closing edge when cycle is set.
func (g *Graph) Length(t Tour, cycle bool, w WeightFunc) float64 {
	if w == nil {
		w = g.Dist
	}
	total := 0.0
	for i := 0; i+1 < len(t); i++ {
		total += w(t[i], t[i+1])
	}
	if cycle && len(t) > 2 {
		total += w(t[len(t)-1], t[0])
	}
	return total
}
