// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance from a start vertex.
//   - Result holds Order (visit sequence), Depth (vertex → hops) and
//     Parent (vertex → predecessor in the BFS tree).
//   - OnVisit may abort the walk by returning an error.
//   - MaxDepth > 0 bounds the search radius; 0 means no limit.
//   - WithContext makes the walk cancellable.
//
// Determinism
//
//	core.Graph.NeighborIDs returns IDs sorted ascending and BFS enqueues
//	them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log d)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil:            nil graph.
//   - ErrStartVertexNotFound: start ID absent.
//   - ErrOptionViolation:     invalid option (negative MaxDepth).
//   - ErrNeighbors:           neighbor lookup failed.
//   - OnVisit errors are wrapped and returned; ctx errors are returned as is.
package bfs
