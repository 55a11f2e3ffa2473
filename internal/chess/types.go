// Package chess provides the value types shared by the move and castling codecs:
// squares, sides, castes, pieces, move types and castling-right revocations.
// Every type is a small immutable value whose underlying integer is its packing index.
package chess

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/lgbarn/movecodec-go/internal/errors"
)

// Side represents the colour of a player or piece.
type Side uint8

// The packing index of a side is its value: Black packs as 0 and White as 1.
// NoSide is a guard value and has no packing index.
const (
	Black Side = iota
	White
	NoSide
)

// NumSides is the number of playing sides.
const NumSides = 2

// SideFromIndex returns the playing side packed as i.
func SideFromIndex[I constraints.Integer](i I) (Side, error) {
	return fromIndex[Side](i, NumSides, errors.KeySideIndex)
}

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	case NoSide:
		return "NoSide"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// IsValid reports whether s is a playing side.
func (s Side) IsValid() bool {
	return s == White || s == Black
}

// Index returns the packing index of s (1 for White, 0 for Black).
func (s Side) Index() uint8 {
	return uint8(s)
}

// Opposite returns the opposite side. NoSide is its own opposite.
func (s Side) Opposite() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoSide
	}
}

// Forward returns +1 for White, -1 for Black (pawn direction) and 0 for NoSide.
func (s Side) Forward() int {
	switch s {
	case White:
		return 1
	case Black:
		return -1
	default:
		return 0
	}
}

// BackRank returns the rank (1-8) the side's king and rooks start on.
func (s Side) BackRank() int {
	if s == Black {
		return 8
	}
	return 1
}

// PawnRank returns the rank (1-8) the side's pawns start on.
func (s Side) PawnRank() int {
	if s == Black {
		return 7
	}
	return 2
}

// DoublePushRank returns the rank a pawn of this side lands on after a double push.
func (s Side) DoublePushRank() int {
	return s.PawnRank() + 2*s.Forward()
}

// EnPassantRank returns the rank a pawn of this side captures en passant from.
func (s Side) EnPassantRank() int {
	if s == Black {
		return 4
	}
	return 5
}

// Caste represents the kind of a chess piece.
type Caste uint8

// The packing index of a caste is its value. Index 7 is reserved and never assigned.
const (
	NoCaste Caste = iota // No piece (absent promotion or capture)
	Pawn
	Bishop
	Knight
	Rook
	Queen
	King
	NumCastes
)

// ReservedCaste is the all-ones 3-bit pattern, never a valid caste index.
const ReservedCaste = 7

// PromotionCastes lists the castes a pawn may promote to.
var PromotionCastes = []Caste{Bishop, Knight, Rook, Queen}

var casteValues = [NumCastes]int{
	NoCaste: 0,
	Pawn:    1,
	Bishop:  3,
	Knight:  3,
	Rook:    5,
	Queen:   9,
	King:    0,
}

// CasteFromIndex returns the caste packed as i.
func CasteFromIndex[I constraints.Integer](i I) (Caste, error) {
	return fromIndex[Caste](i, int(NumCastes), errors.KeyCasteIndex)
}

// String returns the string representation of a caste.
func (c Caste) String() string {
	names := []string{"None", "Pawn", "Bishop", "Knight", "Rook", "Queen", "King"}
	if int(c) < len(names) {
		return names[c]
	}
	return fmt.Sprintf("Caste(%d)", uint8(c))
}

// Letter returns the single letter representation of a caste (uppercase).
func (c Caste) Letter() byte {
	letters := []byte{'-', 'P', 'B', 'N', 'R', 'Q', 'K'}
	if int(c) < len(letters) {
		return letters[c]
	}
	return '?'
}

// Index returns the packing index of c.
func (c Caste) Index() uint8 {
	return uint8(c)
}

// IsValid reports whether c is a real piece kind (not NoCaste, not out of range).
func (c Caste) IsValid() bool {
	return c > NoCaste && c < NumCastes
}

// IsPromotable reports whether a pawn may promote to c.
func (c Caste) IsPromotable() bool {
	switch c {
	case Bishop, Knight, Rook, Queen:
		return true
	default:
		return false
	}
}

// Value returns the material value of c in pawn units. The king has no material value.
func (c Caste) Value() int {
	if c < NumCastes {
		return casteValues[c]
	}
	return 0
}
