// Package castle implements the packed castling-state byte.
//
// The byte holds, for each side, whether it has castled king-side or queen-side and
// which castling rights it still holds. From the most significant bit:
//
//	bit 7  White castled king-side
//	bit 6  White castled queen-side
//	bit 5  White king-side right
//	bit 4  White queen-side right
//	bit 3  Black castled king-side
//	bit 2  Black castled queen-side
//	bit 1  Black king-side right
//	bit 0  Black queen-side right
//
// A State is always valid: StateFor validates raw bytes and every transition
// validates its result before returning it.
package castle

import (
	"fmt"
	"strings"

	"github.com/lgbarn/movecodec-go/internal/chess"
	"github.com/lgbarn/movecodec-go/internal/errors"
)

// State is a validated castling-state byte.
type State uint8

// Bits within one side's nibble.
const (
	kingCastled  = 1 << 3
	queenCastled = 1 << 2
	kingRight    = 1 << 1
	queenRight   = 1 << 0

	castledBits = kingCastled | queenCastled
	rightBits   = kingRight | queenRight
)

const (
	// None is the state where neither side has castled or holds a right.
	None State = 0

	// Initial is the state of a new game: every right held, nobody castled.
	Initial State = 0x33
)

func shift(side chess.Side) uint {
	if side == chess.White {
		return 4
	}
	return 0
}

// StateFor validates b and returns it as a State. The checks run in a fixed order
// so that each invalid byte is reported with one cause.
func StateFor(b byte) (State, error) {
	white, black := b>>4, b&0xF

	if white&castledBits == castledBits && black&castledBits == castledBits {
		return None, stateError(b, "both castled both sides")
	}
	for _, side := range []chess.Side{chess.White, chess.Black} {
		if (b>>shift(side))&castledBits == castledBits {
			return None, stateError(b, fmt.Sprintf("%s castled both sides", side))
		}
	}
	for _, side := range []chess.Side{chess.White, chess.Black} {
		n := b >> shift(side)
		if n&castledBits != 0 && n&rightBits != 0 {
			return None, stateError(b, fmt.Sprintf("%s castled with retained rights", side))
		}
	}
	return State(b), nil
}

// MustState is like StateFor but panics on an invalid byte.
func MustState(b byte) State {
	s, err := StateFor(b)
	if err != nil {
		panic(err)
	}
	return s
}

func stateError(b byte, cause string) error {
	return errors.New(errors.KeyCastleState, errors.ErrInvalidCastleState, cause).
		WithField("state", fmt.Sprintf("%#02x", b))
}

func transitionError(side chess.Side, op string, cause string) error {
	return errors.New(errors.KeyCastleTransition, errors.ErrIllegalTransition, cause).
		WithField(op, side)
}

func (s State) nibble(side chess.Side) byte {
	return (byte(s) >> shift(side)) & 0xF
}

func (s State) has(side chess.Side, bit byte) bool {
	return side.IsValid() && s.nibble(side)&bit != 0
}

// Byte returns the packed form of the state.
func (s State) Byte() byte {
	return byte(s)
}

// HasCastled returns true if side has castled on either wing.
func (s State) HasCastled(side chess.Side) bool {
	return s.has(side, castledBits)
}

// HasCastledKingSide returns true if side has castled short.
func (s State) HasCastledKingSide(side chess.Side) bool {
	return s.has(side, kingCastled)
}

// HasCastledQueenSide returns true if side has castled long.
func (s State) HasCastledQueenSide(side chess.Side) bool {
	return s.has(side, queenCastled)
}

// HasAnyRight returns true if side still holds a castling right.
func (s State) HasAnyRight(side chess.Side) bool {
	return s.has(side, rightBits)
}

// HasKingSideRight returns true if side may still castle short.
func (s State) HasKingSideRight(side chess.Side) bool {
	return s.has(side, kingRight)
}

// HasQueenSideRight returns true if side may still castle long.
func (s State) HasQueenSideRight(side chess.Side) bool {
	return s.has(side, queenRight)
}

// Castle records that side castled. short selects the king side. The side must hold
// the matching right; all of its rights are consumed.
func (s State) Castle(side chess.Side, short bool) (State, error) {
	op := "castle-long"
	right, castled := byte(queenRight), byte(queenCastled)
	if short {
		op = "castle-short"
		right, castled = kingRight, kingCastled
	}
	if !side.IsValid() {
		return s, transitionError(side, op, "castling requires a playing side")
	}
	if !s.has(side, right) {
		return s, transitionError(side, op, fmt.Sprintf("%s lacks the right to castle", side))
	}
	sh := shift(side)
	return s.next(byte(s)&^(rightBits<<sh) | castled<<sh)
}

// CastleKingSide records that side castled short.
func (s State) CastleKingSide(side chess.Side) (State, error) {
	return s.Castle(side, true)
}

// CastleQueenSide records that side castled long.
func (s State) CastleQueenSide(side chess.Side) (State, error) {
	return s.Castle(side, false)
}

// Revoke removes the rights named by rev from side. It fails once side has castled.
func (s State) Revoke(side chess.Side, rev chess.Revocation) (State, error) {
	if !side.IsValid() {
		return s, transitionError(side, "revoke", "revocation requires a playing side")
	}
	if !rev.IsValid() {
		return s, errors.New(errors.KeyCastleTransition, errors.ErrInvalidArgument, "unknown revocation").
			WithField("revocation", rev)
	}
	if s.HasCastled(side) {
		return s, transitionError(side, "revoke", fmt.Sprintf("%s has already castled", side))
	}
	return s.next(byte(s) &^ (rightMask(rev) << shift(side)))
}

// RevokeKingSide removes side's king-side right.
func (s State) RevokeKingSide(side chess.Side) (State, error) {
	return s.Revoke(side, chess.RevokeKingSide)
}

// RevokeQueenSide removes side's queen-side right.
func (s State) RevokeQueenSide(side chess.Side) (State, error) {
	return s.Revoke(side, chess.RevokeQueenSide)
}

// RevokeBoth removes both of side's rights.
func (s State) RevokeBoth(side chess.Side) (State, error) {
	return s.Revoke(side, chess.RevokeBoth)
}

// Restore grants side the rights named by rev again, e.g. when a move is undone.
// The result is still validated, so rights cannot be restored to a side that castled.
func (s State) Restore(side chess.Side, rev chess.Revocation) (State, error) {
	if !side.IsValid() {
		return s, transitionError(side, "restore", "restoration requires a playing side")
	}
	if !rev.IsValid() {
		return s, errors.New(errors.KeyCastleTransition, errors.ErrInvalidArgument, "unknown revocation").
			WithField("revocation", rev)
	}
	return s.next(byte(s) | rightMask(rev)<<shift(side))
}

// RestoreKingSide grants side its king-side right.
func (s State) RestoreKingSide(side chess.Side) (State, error) {
	return s.Restore(side, chess.RevokeKingSide)
}

// RestoreQueenSide grants side its queen-side right.
func (s State) RestoreQueenSide(side chess.Side) (State, error) {
	return s.Restore(side, chess.RevokeQueenSide)
}

// RestoreBoth grants side both rights.
func (s State) RestoreBoth(side chess.Side) (State, error) {
	return s.Restore(side, chess.RevokeBoth)
}

// next validates the result of a transition. On failure s is returned unchanged.
func (s State) next(b byte) (State, error) {
	n, err := StateFor(b)
	if err != nil {
		return s, err
	}
	return n, nil
}

func rightMask(rev chess.Revocation) byte {
	var m byte
	if rev.IsKingSide() {
		m |= kingRight
	}
	if rev.IsQueenSide() {
		m |= queenRight
	}
	return m
}

// String returns e.g. "rights=Kkq castled=-" or "rights=- castled=Kq", using FEN
// letters: uppercase for White, lowercase for Black.
func (s State) String() string {
	var castled strings.Builder
	for _, side := range []chess.Side{chess.White, chess.Black} {
		if s.HasCastledKingSide(side) {
			castled.WriteByte(sideLetter(side, 'K'))
		}
		if s.HasCastledQueenSide(side) {
			castled.WriteByte(sideLetter(side, 'Q'))
		}
	}
	c := castled.String()
	if c == "" {
		c = "-"
	}
	return fmt.Sprintf("rights=%s castled=%s", s.FEN(), c)
}

func sideLetter(side chess.Side, letter byte) byte {
	if side == chess.Black {
		return letter + 'a' - 'A'
	}
	return letter
}
