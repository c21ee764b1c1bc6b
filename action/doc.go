// Package action resolves one round's worth of submitted player
// actions and monster AI decisions into ActionResults: validating,
// executing against movement/abilities/stats, and emitting threat
// updates for attacks and off-self healing. Failures surface as
// structured reasons on the result; nothing here aborts a round.
package action
