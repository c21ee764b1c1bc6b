// Package hexgrid implements cube-coordinate hexagonal grid geometry:
// distance, neighbor enumeration, ranges, rings, and single-step
// movement toward a destination. It is the leaf dependency every other
// package in this module builds on. All positions are cube coordinates
// (q, r, s) with q+r+s = 0; there is no offset or rectangular grid
// representation anywhere in the engine.
package hexgrid
