// Package core provides the fundamental interfaces and sentinel errors
// shared by every package in this module. It establishes the identity
// contract that players, monsters, and their sub-systems (stats, status
// effects, abilities, movement, threat) all build on, and nothing else:
// no game statistics, no persistence, no game rules.
package core
