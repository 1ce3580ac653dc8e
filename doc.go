// Package manybody provides the Hilbert-space layer of a many-body quantum
// toolkit: which values each lattice site may take, how to draw random
// configurations that respect a global constraint, how to update them in
// place, and how to number every configuration for exact enumeration.
//
// Subpackages:
//
//	core/         — undirected, colored bond graph with string vertex IDs
//	bfs/          — breadth-first search over core.Graph
//	builder/      — BuildGraph and the Sites, Hypercube and Bonds constructors
//	lattice/      — site graphs: Hypercube (periodic or open) and Custom,
//	                each wrapping a built core.Graph
//	hilbert/      — LocalSpace, the Space interface, Spin, Boson, Qubit, Custom
//	hilbertindex/ — ConfigurationIndex: number ↔ configuration bijection,
//	                ordered iteration and parallel sector filtering
//
// Quick example:
//
//	ring, _ := lattice.NewHypercube(8, 1, true)
//	totalSz := 0.0
//	h, _ := hilbert.NewSpin(ring, hilbert.SpinConfig{S: 0.5, TotalSz: &totalSz})
//
//	state := make([]float64, h.Size())
//	_ = h.RandomVals(state, rand.New(rand.NewSource(1))) // four +1, four -1
//
//	ix, _ := hilbertindex.New(h)
//	sector, _ := ix.Filter(ctx, hilbertindex.SumEquals(0)) // 70 indices
//
// Values are stored as float64 and compared exactly; spins use twice the
// physical Sz so that every local value is an integer.
//
//	go get github.com/katalvlaran/manybody
package manybody
