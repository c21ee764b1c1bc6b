// Package engine wires hexgrid, stats, statuseffect, ability, movement,
// threat, ai, and action together into the round scheduler and state
// manager: the only package in this module an embedder constructs
// directly. One Engine owns one encounter's entities, drives rounds
// through a fixed resolution sequence, and publishes lifecycle events
// on a telemetry bus.
package engine
