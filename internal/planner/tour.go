package planner

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Tour is a visiting order over graph node indices.
type Tour []int

// ErrInvalidTour means the constructor produced something that is not a
// permutation of the graph nodes. It signals a bug, not bad input.
var ErrInvalidTour = errors.New("planner: constructed tour is not a permutation")

// Constructor builds approximate minimum-weight tours. It is not safe for
// concurrent use because it owns its random source.
type Constructor struct {
	rng    *rand.Rand
	passes int
}

// NewConstructor returns a constructor drawing from rng with at most passes
// rounds of 2-opt improvement.
func NewConstructor(rng *rand.Rand, passes int) *Constructor {
	return &Constructor{rng: rng, passes: passes}
}

// Build returns a tour visiting every node once. The seed is a randomized
// double-tree walk (MST pre-order); an open path drops the heaviest edge of
// that walk. A bounded 2-opt pass then shortens the result.
func (c *Constructor) Build(g *Graph, cycle bool, w WeightFunc) (Tour, error) {
	if w == nil {
		w = g.Dist
	}
	n := g.Len()
	if n == 0 {
		return Tour{}, nil
	}
	t := c.doubleTree(n, w)
	if !cycle {
		t = openAtHeaviest(t, w)
	}
	t = improve2Opt(t, cycle, w, c.passes)
	if err := checkPermutation(t, n); err != nil {
		return nil, err
	}
	return t, nil
}

// doubleTree runs Prim's algorithm from a random root and returns a
// pre-order walk of the tree with shuffled child order.
func (c *Constructor) doubleTree(n int, w WeightFunc) Tour {
	root := c.rng.Intn(n)
	inTree := make([]bool, n)
	key := make([]float64, n)
	parent := make([]int, n)
	for i := range key {
		key[i] = math.Inf(1)
		parent[i] = -1
	}
	key[root] = 0
	children := make([][]int, n)
	for step := 0; step < n; step++ {
		u := -1
		for v := 0; v < n; v++ {
			if !inTree[v] && (u < 0 || key[v] < key[u]) {
				u = v
			}
		}
		inTree[u] = true
		if parent[u] >= 0 {
			children[parent[u]] = append(children[parent[u]], u)
		}
		for v := 0; v < n; v++ {
			if !inTree[v] {
				if d := w(u, v); d < key[v] {
					key[v] = d
					parent[v] = u
				}
			}
		}
	}

	out := make(Tour, 0, n)
	stack := []int{root}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, u)
		kids := children[u]
		c.rng.Shuffle(len(kids), func(i, j int) { kids[i], kids[j] = kids[j], kids[i] })
		stack = append(stack, kids...)
	}
	return out
}

// openAtHeaviest turns a closed walk into a path by removing its heaviest edge.
func openAtHeaviest(t Tour, w WeightFunc) Tour {
	n := len(t)
	if n < 3 {
		return t
	}
	cut, heaviest := 0, -1.0
	for i := 0; i < n; i++ {
		if d := w(t[i], t[(i+1)%n]); d > heaviest {
			cut, heaviest = i, d
		}
	}
	return Rotate(t, t[(cut+1)%n])
}

func checkPermutation(t Tour, n int) error {
	if len(t) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(t), n)
	}
	seen := make([]bool, n)
	for _, v := range t {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("%w: bad or repeated node %d", ErrInvalidTour, v)
		}
		seen[v] = true
	}
	return nil
}
