// Package telemetry provides a synchronous, in-process publish/subscribe
// bus the engine uses to surface round-lifecycle diagnostics (round
// started/ended, an action resolved, an entity died) to embedders.
// Topics are plain strings and handlers run on the publisher's
// goroutine; the engine's round scheduler is the only publisher and
// never re-enters itself from inside a handler.
package telemetry
