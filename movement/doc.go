// Package movement implements single-step hex movement: validating a
// proposed move against range, occupancy, obstacles, and status
// effects, and enumerating reachable cells. There is no multi-hex
// pathfinding; an entity that wants to travel farther submits one step
// per round.
package movement
