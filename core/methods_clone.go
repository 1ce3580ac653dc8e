// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: deep copies.

package core

import "sync/atomic"

// Clone returns a deep copy: options, vertices, edges and adjacency. The
// edge ID sequence continues where the original left off.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := &Graph{
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		nextEdgeID: atomic.LoadUint64(&g.nextEdgeID),
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]map[string]struct{}, len(g.adjacency)),
	}
	for id := range g.vertices {
		c.vertices[id] = &Vertex{ID: id}
		ensureAdjacency(c, id)
	}
	for eid, e := range g.edges {
		cp := *e
		c.edges[eid] = &cp
		link(c, e.From, e.To, eid)
		if e.From != e.To {
			link(c, e.To, e.From, eid)
		}
	}

	return c
}
