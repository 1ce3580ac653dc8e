// SPDX-License-Identifier: MIT

// Package builder assembles lattice bond graphs on core.Graph.
//
// One orchestrator, BuildGraph(gopts, cons...), creates the graph and runs
// constructors in order. Constructors:
//
//   - Sites(n):                   isolated sites "0".."n-1".
//   - Hypercube(length, ndim, pbc): L^d hypercubic bonds, axis 0 fastest.
//   - Bonds(bonds):               an explicit, optionally colored bond list.
//
// Vertex IDs are the decimal site numbers; SiteID and SiteIndex convert
// between the two.
//
// Errors:
//
//   - ErrTooFewVertices:  a size or length below its minimum.
//   - ErrTooLarge:        L^d does not fit in an int.
//   - ErrBadBond:         a bond with a negative endpoint.
//   - ErrBadSiteID:       a vertex ID that is not a site number.
//   - ErrConstructFailed: a nil constructor.
//
// Core errors (ErrLoopNotAllowed, ErrMultiEdgeNotAllowed) pass through %w.
package builder
