package chess

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/lgbarn/movecodec-go/internal/errors"
)

// Revocation names the castling rights a move removes from the moving side.
type Revocation uint8

const (
	RevokeNone Revocation = iota
	RevokeKingSide
	RevokeQueenSide
	RevokeBoth
	NumRevocations
)

// RevocationFromIndex returns the revocation packed as i.
func RevocationFromIndex[I constraints.Integer](i I) (Revocation, error) {
	return fromIndex[Revocation](i, int(NumRevocations), errors.KeyRevocationIndex)
}

// RevocationFor returns the revocation removing the selected rights.
func RevocationFor(kingSide, queenSide bool) Revocation {
	var r Revocation
	if kingSide {
		r |= RevokeKingSide
	}
	if queenSide {
		r |= RevokeQueenSide
	}
	return r
}

// String returns the string representation of a revocation.
func (r Revocation) String() string {
	switch r {
	case RevokeNone:
		return "None"
	case RevokeKingSide:
		return "KingSide"
	case RevokeQueenSide:
		return "QueenSide"
	case RevokeBoth:
		return "Both"
	default:
		return fmt.Sprintf("Revocation(%d)", uint8(r))
	}
}

// Index returns the packing index of r.
func (r Revocation) Index() uint8 {
	return uint8(r)
}

// IsValid reports whether r is one of the defined revocations.
func (r Revocation) IsValid() bool {
	return r < NumRevocations
}

// IsNone returns true if r removes no right.
func (r Revocation) IsNone() bool {
	return r == RevokeNone
}

// IsKingSide returns true if r removes the king-side right.
func (r Revocation) IsKingSide() bool {
	return r.IsValid() && r&RevokeKingSide != 0
}

// IsQueenSide returns true if r removes the queen-side right.
func (r Revocation) IsQueenSide() bool {
	return r.IsValid() && r&RevokeQueenSide != 0
}
