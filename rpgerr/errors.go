// Package rpgerr provides structured error handling for combat rule
// violations. It enables clear communication of why an action could not
// proceed, with enough structure that callers can match on a Code rather
// than parsing a message string.
package rpgerr

import (
	"errors"
	"fmt"
)

// Code categorizes why an action failed.
type Code string

const (
	// CodeUnknown indicates an unrecognized error occurred.
	CodeUnknown Code = "unknown"
	// CodeInternal indicates a bug or invariant violation, not a rule failure.
	CodeInternal Code = "internal"

	// CodeNotAllowed indicates the action is not permitted right now
	// (dead actor, wrong phase, status effect forbids it).
	CodeNotAllowed Code = "not_allowed"
	// CodeResourceExhausted indicates an exhausted resource (no HP to heal from, etc).
	CodeResourceExhausted Code = "resource_exhausted"
	// CodeOutOfRange indicates the target is beyond the ability's or movement's range.
	CodeOutOfRange Code = "out_of_range"
	// CodeInvalidTarget indicates the target id is missing, dead, or otherwise untargetable.
	CodeInvalidTarget Code = "invalid_target"
	// CodeConflictingState indicates a position or state conflict (cell occupied).
	CodeConflictingState Code = "conflicting_state"
	// CodeTimingRestriction indicates the wrong phase or an already-used turn.
	CodeTimingRestriction Code = "timing_restriction"
	// CodeCooldownActive indicates the ability is still cooling down.
	CodeCooldownActive Code = "cooldown_active"
	// CodeInvalidState indicates the game or entity is in a state that forbids the operation.
	CodeInvalidState Code = "invalid_state"
	// CodeNotFound indicates a referenced id (player, monster, ability, effect) does not exist.
	CodeNotFound Code = "not_found"
	// CodeAlreadyExists indicates a duplicate submission or duplicate id.
	CodeAlreadyExists Code = "already_exists"
	// CodeInvalidArgument indicates a malformed request (missing required field).
	CodeInvalidArgument Code = "invalid_argument"
)

// Error represents a structured combat-rule error.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "rpgerr: nil error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Option configures an Error at construction time.
type Option func(*Error)

// WithMeta attaches a diagnostic key/value pair to the error.
func WithMeta(key string, value any) Option {
	return func(e *Error) {
		if e.Meta == nil {
			e.Meta = make(map[string]any)
		}
		e.Meta[key] = value
	}
}

// New creates an error with the given code and message.
func New(code Code, message string, opts ...Option) *Error {
	err := &Error{Code: code, Message: message}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// Newf creates an error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context, preserving its Code if it
// is already an *Error.
func Wrap(err error, message string, opts ...Option) *Error {
	if err == nil {
		return New(CodeInternal, fmt.Sprintf("rpgerr.Wrap called with nil: %s", message))
	}

	var rpgErr *Error
	var wrapped *Error
	if errors.As(err, &rpgErr) {
		wrapped = &Error{Code: rpgErr.Code, Message: message, Cause: err, Meta: copyMeta(rpgErr.Meta)}
	} else {
		wrapped = &Error{Code: CodeUnknown, Message: message, Cause: err}
	}

	for _, opt := range opts {
		opt(wrapped)
	}
	return wrapped
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}

// GetCode extracts the Code from any error, returning CodeUnknown if err
// is not (or does not wrap) an *Error.
func GetCode(err error) Code {
	var rpgErr *Error
	if errors.As(err, &rpgErr) && rpgErr != nil {
		return rpgErr.Code
	}
	return CodeUnknown
}

// GetMeta extracts the Meta map from any error, or nil.
func GetMeta(err error) map[string]any {
	var rpgErr *Error
	if errors.As(err, &rpgErr) && rpgErr != nil {
		return rpgErr.Meta
	}
	return nil
}

// Domain constructors used throughout action resolution.

// NotAllowed reports an action forbidden by the current game/entity state.
func NotAllowed(reason string, opts ...Option) *Error {
	return New(CodeNotAllowed, reason, opts...)
}

// ResourceExhausted reports an exhausted resource.
func ResourceExhausted(reason string, opts ...Option) *Error {
	return New(CodeResourceExhausted, reason, opts...)
}

// OutOfRange reports a target beyond range.
func OutOfRange(reason string, opts ...Option) *Error {
	return New(CodeOutOfRange, reason, opts...)
}

// InvalidTarget reports an untargetable or missing target.
func InvalidTarget(reason string, opts ...Option) *Error {
	return New(CodeInvalidTarget, reason, opts...)
}

// ConflictingState reports a position/state conflict.
func ConflictingState(reason string, opts ...Option) *Error {
	return New(CodeConflictingState, reason, opts...)
}

// TimingRestriction reports a phase or turn-order violation.
func TimingRestriction(reason string, opts ...Option) *Error {
	return New(CodeTimingRestriction, reason, opts...)
}

// CooldownActive reports an ability still on cooldown.
func CooldownActive(ability string, remaining int, opts ...Option) *Error {
	return New(CodeCooldownActive, fmt.Sprintf("%s on cooldown for %d more round(s)", ability, remaining), opts...)
}

// NotFound reports a missing referenced id.
func NotFound(reason string, opts ...Option) *Error {
	return New(CodeNotFound, reason, opts...)
}

// AlreadyExists reports a duplicate id or duplicate submission.
func AlreadyExists(reason string, opts ...Option) *Error {
	return New(CodeAlreadyExists, reason, opts...)
}

// InvalidArgument reports a malformed request.
func InvalidArgument(reason string, opts ...Option) *Error {
	return New(CodeInvalidArgument, reason, opts...)
}

// Code-checking helpers, used by tests that assert on failure category
// rather than exact message text.

// IsNotAllowed reports whether err carries CodeNotAllowed.
func IsNotAllowed(err error) bool { return GetCode(err) == CodeNotAllowed }

// IsResourceExhausted reports whether err carries CodeResourceExhausted.
func IsResourceExhausted(err error) bool { return GetCode(err) == CodeResourceExhausted }

// IsOutOfRange reports whether err carries CodeOutOfRange.
func IsOutOfRange(err error) bool { return GetCode(err) == CodeOutOfRange }

// IsInvalidTarget reports whether err carries CodeInvalidTarget.
func IsInvalidTarget(err error) bool { return GetCode(err) == CodeInvalidTarget }

// IsConflictingState reports whether err carries CodeConflictingState.
func IsConflictingState(err error) bool { return GetCode(err) == CodeConflictingState }

// IsTimingRestriction reports whether err carries CodeTimingRestriction.
func IsTimingRestriction(err error) bool { return GetCode(err) == CodeTimingRestriction }

// IsCooldownActive reports whether err carries CodeCooldownActive.
func IsCooldownActive(err error) bool { return GetCode(err) == CodeCooldownActive }

// IsNotFound reports whether err carries CodeNotFound.
func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }
