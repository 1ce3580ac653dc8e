// SPDX-License-Identifier: MIT

// Package core defines the bond graph every lattice is stored in: string
// vertex IDs, undirected colored edges and thread-safe primitives for
// building and querying them.
//
// Storage:
//
//   - vertices: ID → *Vertex
//   - edges:    edge ID → *Edge ("e1", "e2", … in insertion order)
//   - adjacency[from][to][edgeID] = struct{}{}, mirrored for every edge
//
// Two sync.RWMutex locks guard the catalog: muVert for vertices and
// muEdgeAdj for edges and adjacency. Lock order is always muVert → muEdgeAdj.
//
// Options:
//
//   - WithLoops():      permit self-loops; otherwise AddEdge(v, v) → ErrLoopNotAllowed.
//   - WithMultiEdges(): permit parallel bonds; otherwise ErrMultiEdgeNotAllowed.
//   - WithEdgeColor(c): per-edge color, 0 by default.
//
// Determinism:
//
//   - Vertices() and NeighborIDs() return IDs sorted ascending.
//   - Edges() returns edges in insertion order.
//
// Complexity:
//
//   - AddVertex, AddEdge, HasVertex, HasEdge: O(1) amortized.
//   - NeighborIDs: O(d log d).  Edges: O(E log E).  Clone: O(V + E).
//
// Errors:
//
//   - ErrEmptyVertexID:       an empty vertex ID.
//   - ErrVertexNotFound:      a query on an absent vertex.
//   - ErrEdgeNotFound:        a lookup of an absent edge ID.
//   - ErrLoopNotAllowed:      a self-loop without WithLoops.
//   - ErrMultiEdgeNotAllowed: a parallel bond without WithMultiEdges.
package core
