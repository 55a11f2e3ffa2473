// Package move implements the packed 32-bit move codec.
//
// A move is stored as one integer with the layout (LSB first):
//
//	bits  0-5   to square (rook origin for castling)
//	bits  6-11  from square
//	bits 12-14  base caste (moving piece)
//	bits 15-17  capture caste
//	bits 18-20  promotion caste
//	bit  21     side (1 White, 0 Black)
//	bits 22-24  move type
//	bits 25-26  revocation
//	bits 27-31  reserved, always zero
//
// Move wraps a Hash produced by this package and decodes fields on demand (trusted path).
// Decode accepts arbitrary integers and validates them before wrapping (untrusted path).
// Both paths share the field extraction of Hash.
package move

import (
	"fmt"

	"github.com/lgbarn/movecodec-go/internal/chess"
)

// Hash is the packed integer form of a move.
type Hash uint32

// Bitfield layout within Hash.
const (
	toShift         = 0
	fromShift       = 6
	baseShift       = 12
	captureShift    = 15
	promotionShift  = 18
	sideShift       = 21
	typeShift       = 22
	revocationShift = 25

	squareMask     = 0x3F
	casteMask      = 0x7
	sideMask       = 0x1
	typeMask       = 0x7
	revocationMask = 0x3

	// ReservedMask covers the bits that must be zero in every valid hash.
	ReservedMask Hash = 0xF8000000

	// FieldBits is the width of the used part of the hash.
	FieldBits = 27
)

// fields holds the raw sub-fields of a hash. promotion and capture are the raw
// sub-field values, which may differ from the semantic accessors on Move.
type fields struct {
	typ        chess.MoveType
	side       chess.Side
	revocation chess.Revocation
	promotion  chess.Caste
	capture    chess.Caste
	base       chess.Caste
	from       chess.Square
	to         chess.Square
}

// pack encodes f. Every field is masked to its width.
func (f fields) pack() Hash {
	return Hash(f.revocation&revocationMask)<<revocationShift |
		Hash(f.typ&typeMask)<<typeShift |
		Hash(f.side&sideMask)<<sideShift |
		Hash(f.promotion&casteMask)<<promotionShift |
		Hash(f.capture&casteMask)<<captureShift |
		Hash(f.base&casteMask)<<baseShift |
		Hash(f.from&squareMask)<<fromShift |
		Hash(f.to&squareMask)<<toShift
}

// fields extracts every sub-field without validating it.
func (h Hash) fields() fields {
	return fields{
		typ:        h.TypeField(),
		side:       h.SideField(),
		revocation: h.RevocationField(),
		promotion:  h.PromotionField(),
		capture:    h.CaptureField(),
		base:       h.BaseField(),
		from:       h.FromField(),
		to:         h.ToField(),
	}
}

// TypeField returns the raw move-type sub-field.
func (h Hash) TypeField() chess.MoveType { return chess.MoveType((h >> typeShift) & typeMask) }

// SideField returns the raw side bit as a side.
func (h Hash) SideField() chess.Side { return chess.Side((h >> sideShift) & sideMask) }

// RevocationField returns the raw revocation sub-field.
func (h Hash) RevocationField() chess.Revocation {
	return chess.Revocation((h >> revocationShift) & revocationMask)
}

// PromotionField returns the raw promotion sub-field. DoublePush and EnPassant moves
// carry Pawn here as a tag even though they promote nothing.
func (h Hash) PromotionField() chess.Caste { return chess.Caste((h >> promotionShift) & casteMask) }

// CaptureField returns the raw capture sub-field.
func (h Hash) CaptureField() chess.Caste { return chess.Caste((h >> captureShift) & casteMask) }

// BaseField returns the raw moving-caste sub-field.
func (h Hash) BaseField() chess.Caste { return chess.Caste((h >> baseShift) & casteMask) }

// FromField returns the raw origin square.
func (h Hash) FromField() chess.Square { return chess.Square((h >> fromShift) & squareMask) }

// ToField returns the raw destination square (the rook origin for castling).
func (h Hash) ToField() chess.Square { return chess.Square((h >> toShift) & squareMask) }

// Reserved returns the bits of h outside the move layout.
func (h Hash) Reserved() uint32 {
	return uint32(h & ReservedMask)
}

// String returns the hash in hexadecimal.
func (h Hash) String() string {
	return fmt.Sprintf("0x%08x", uint32(h))
}
