package solver_test

import (
	"math/rand"
	"testing"

	"github.com/jmisabella/mazer/generator"
	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/solver"
	"github.com/jmisabella/mazer/topology"
)

// BenchmarkSolve_Orthogonal128 solves a 128×128 backtracker maze corner to corner.
func BenchmarkSolve_Orthogonal128(b *testing.B) {
	const n = 128
	topo, _ := topology.ForFamily(topology.Orthogonal)
	g, _ := grid.New(n, n, topo)
	gen, _ := generator.New(generator.RecursiveBacktracker)
	if err := gen.Carve(g, rand.New(rand.NewSource(1))); err != nil {
		b.Fatal(err)
	}
	goal := topology.Coord{X: n - 1, Y: n - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(g, topology.Coord{}, goal); err != nil {
			b.Fatal(err)
		}
	}
}
