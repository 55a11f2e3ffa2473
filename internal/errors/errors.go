// Package errors provides sentinel errors and the structured error type shared by the
// codec packages. Every failure carries a machine-readable dotted key identifying the
// broken invariant, and wraps one of the sentinels so callers can use errors.Is() and
// errors.As() without parsing messages.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the three failure classes of the codec.
// Use these with errors.Is() to check for a class of failure.
var (
	// ErrInvalidCoordinate indicates a file or rank outside the board.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidIndex indicates a packing index with no value mapped to it.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrInvalidArgument indicates a sentinel or absent value where a concrete one is required.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedHash indicates a raw move integer that violates the bit layout.
	ErrMalformedHash = errors.New("malformed move hash")

	// ErrInvalidMove indicates a field combination forbidden for the move type.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidCastleState indicates a castling-state byte violating the rights invariants.
	ErrInvalidCastleState = errors.New("invalid castling-state byte")

	// ErrIllegalTransition indicates a castling-state transition whose precondition fails.
	ErrIllegalTransition = errors.New("illegal castling-state transition")

	// ErrInvalidConfig indicates an invalid configuration.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Dotted keys identifying the invariant that failed. Move-type shape violations use
// "move." followed by the move type key, e.g. "move.double-push".
const (
	KeySquareCoordinate = "square.coordinate"
	KeySquareIndex      = "square.index"
	KeySideIndex        = "side.index"
	KeyCasteIndex       = "caste.index"
	KeyMoveTypeIndex    = "movetype.index"
	KeyRevocationIndex  = "revocation.index"
	KeyPieceArgument    = "piece.argument"
	KeyPieceHash        = "piece.hash"
	KeyMoveArgument     = "move.argument"
	KeyMoveInputHash    = "move.input-hash"
	KeyMoveRevocation   = "move.revocation"
	KeyCastleState      = "castle.state"
	KeyCastleTransition = "castle.transition"
	KeyCastleFEN        = "castle.fen"
)

// CodecError reports a rejected value. Key names the invariant, Field and Value identify
// the offending input, Cause is a human-readable explanation and Err is the sentinel
// (or a further wrapped error) exposed through Unwrap.
type CodecError struct {
	Key   string      // Dotted machine-readable key
	Field string      // Name of the offending field (if applicable)
	Value interface{} // Offending value (if applicable)
	Cause string      // Human-readable reason
	Err   error       // The underlying error
}

// New builds a CodecError for the given key and sentinel.
func New(key string, err error, cause string) *CodecError {
	return &CodecError{Key: key, Err: err, Cause: cause}
}

// Newf builds a CodecError with a formatted cause.
func Newf(key string, err error, format string, args ...interface{}) *CodecError {
	return New(key, err, fmt.Sprintf(format, args...))
}

// WithField returns a copy of e annotated with the offending field and value.
func (e *CodecError) WithField(field string, value interface{}) *CodecError {
	c := *e
	c.Field = field
	c.Value = value
	return &c
}

// Error returns "key: field=value: cause: underlying".
func (e *CodecError) Error() string {
	if d := e.Detail(); d != "" {
		return e.Key + ": " + d
	}
	return e.Key
}

// Detail returns the message without the key: "field=value: cause: underlying".
func (e *CodecError) Detail() string {
	var parts []string

	if e.Field != "" {
		if e.Value != nil {
			parts = append(parts, fmt.Sprintf("%s=%v", e.Field, e.Value))
		} else {
			parts = append(parts, e.Field)
		}
	}

	if e.Cause != "" {
		parts = append(parts, e.Cause)
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the CodecError wrapper.
func (e *CodecError) Unwrap() error {
	return e.Err
}

// KeyOf returns the dotted key of the first CodecError in err's chain, or "" if none.
func KeyOf(err error) string {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce.Key
	}
	return ""
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
