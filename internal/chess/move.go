package chess

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/lgbarn/movecodec-go/internal/errors"
)

// MoveType categorizes the shape of a move. Each type fixes which packed move fields
// may be non-empty.
type MoveType uint8

const (
	Basic MoveType = iota
	Capture
	DoublePush
	EnPassant
	Promotion
	CapturePromotion
	CastleShort
	CastleLong
	NumMoveTypes
)

type moveTypeInfo struct {
	name       string
	key        string
	capture    bool
	promotion  bool
	castling   bool
	moverCaste Caste // Required moving caste, NoCaste if any
}

var moveTypes = [NumMoveTypes]moveTypeInfo{
	Basic:            {name: "Basic", key: "basic"},
	Capture:          {name: "Capture", key: "capture", capture: true},
	DoublePush:       {name: "DoublePush", key: "double-push", moverCaste: Pawn},
	EnPassant:        {name: "EnPassant", key: "en-passant", capture: true, moverCaste: Pawn},
	Promotion:        {name: "Promotion", key: "promotion", promotion: true, moverCaste: Pawn},
	CapturePromotion: {name: "CapturePromotion", key: "capture-promotion", capture: true, promotion: true, moverCaste: Pawn},
	CastleShort:      {name: "CastleShort", key: "castle-short", castling: true, moverCaste: King},
	CastleLong:       {name: "CastleLong", key: "castle-long", castling: true, moverCaste: King},
}

// MoveTypeFromIndex returns the move type packed as i.
func MoveTypeFromIndex[I constraints.Integer](i I) (MoveType, error) {
	return fromIndex[MoveType](i, int(NumMoveTypes), errors.KeyMoveTypeIndex)
}

// MoveTypes returns every move type in packing order.
func MoveTypes() []MoveType {
	types := make([]MoveType, NumMoveTypes)
	for i := range types {
		types[i] = MoveType(i)
	}
	return types
}

func (t MoveType) info() moveTypeInfo {
	if t < NumMoveTypes {
		return moveTypes[t]
	}
	return moveTypeInfo{}
}

// String returns the string representation of a move type.
func (t MoveType) String() string {
	if t < NumMoveTypes {
		return moveTypes[t].name
	}
	return fmt.Sprintf("MoveType(%d)", uint8(t))
}

// Key returns the dotted-key component naming this move type, e.g. "double-push".
func (t MoveType) Key() string {
	if t < NumMoveTypes {
		return moveTypes[t].key
	}
	return "unknown"
}

// Index returns the packing index of t.
func (t MoveType) Index() uint8 {
	return uint8(t)
}

// IsValid reports whether t is one of the defined move types.
func (t MoveType) IsValid() bool {
	return t < NumMoveTypes
}

// IsCapture returns true if moves of this type remove an enemy piece.
func (t MoveType) IsCapture() bool {
	return t.info().capture
}

// IsPromotion returns true if moves of this type promote a pawn.
func (t MoveType) IsPromotion() bool {
	return t.info().promotion
}

// IsCastling returns true for both castling types.
func (t MoveType) IsCastling() bool {
	return t.info().castling
}

// IsPawnOnly returns true if only a pawn can make moves of this type.
func (t MoveType) IsPawnOnly() bool {
	return t.info().moverCaste == Pawn
}

// MoverCaste returns the caste every move of this type is made by, or NoCaste if any.
func (t MoveType) MoverCaste() Caste {
	return t.info().moverCaste
}

// CastlingType returns CastleShort or CastleLong.
func CastlingType(short bool) MoveType {
	if short {
		return CastleShort
	}
	return CastleLong
}
