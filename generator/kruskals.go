package generator

import (
	"math/rand"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

type kruskals struct{}

func (kruskals) Algorithm() Algorithm { return Kruskals }
func (kruskals) Supports(f topology.Family) bool { return Kruskals.Supports(f) }

// Carve shuffles the canonical edge list and links every edge whose endpoints
// are still in different sets.
// Complexity: O(E·α(N)).
func (k kruskals) Carve(g *grid.Grid, rng *rand.Rand) error {
	if err := prepare(k, g, rng); err != nil {
		return err
	}
	edges := edgeList(g)
	rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	sets := newDisjointSet(g.Size())
	for _, e := range edges {
		if !sets.union(indexOf(g, e.A), indexOf(g, e.B)) {
			continue
		}
		if err := g.Link(e.A, e.B); err != nil {
			return err
		}
	}
	return nil
}

// disjointSet is a union-find over cell indexes with path compression and
// union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

// find returns the root of u, compressing the path by halving.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}
	return u
}

// union merges the sets of u and v and reports whether they were distinct.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}
	return true
}
