package chess

import (
	"fmt"

	"github.com/lgbarn/movecodec-go/internal/errors"
)

// PieceHash is the packed form of a piece: side<<9 | caste<<6 | square.
type PieceHash uint16

const (
	pieceSquareMask = 0x3F
	pieceCasteShift = 6
	pieceCasteMask  = 0x7
	pieceSideShift  = 9
	pieceSideMask   = 0x1
	pieceHashBits   = 10
)

// Piece is a side, caste and square triple. The zero Piece is not valid; use NewPiece.
type Piece struct {
	side   Side
	caste  Caste
	square Square
}

// NewPiece returns the piece of the given side and caste standing on sq.
// NoSide, NoCaste and off-board squares are rejected.
func NewPiece(side Side, caste Caste, sq Square) (Piece, error) {
	if !side.IsValid() {
		return Piece{}, errors.New(errors.KeyPieceArgument, errors.ErrInvalidArgument,
			"piece requires a playing side").WithField("side", side)
	}
	if !caste.IsValid() {
		return Piece{}, errors.New(errors.KeyPieceArgument, errors.ErrInvalidArgument,
			"piece requires a real caste").WithField("caste", caste)
	}
	if !sq.IsValid() {
		return Piece{}, errors.New(errors.KeyPieceArgument, errors.ErrInvalidArgument,
			"piece requires an on-board square").WithField("square", sq)
	}
	return Piece{side: side, caste: caste, square: sq}, nil
}

// PieceFor decodes a packed piece hash.
func PieceFor(h PieceHash) (Piece, error) {
	if h>>pieceHashBits != 0 {
		return Piece{}, errors.New(errors.KeyPieceHash, errors.ErrInvalidIndex,
			"bits above the piece layout are set").WithField("hash", fmt.Sprintf("%#x", uint16(h)))
	}
	side, err := SideFromIndex((h >> pieceSideShift) & pieceSideMask)
	if err != nil {
		return Piece{}, err
	}
	bits := (h >> pieceCasteShift) & pieceCasteMask
	caste, err := CasteFromIndex(bits)
	if err != nil {
		return Piece{}, errors.New(errors.KeyPieceHash, errors.ErrInvalidIndex,
			"no caste for the packed pattern").WithField("caste", uint8(bits))
	}
	return NewPiece(side, caste, Square(h&pieceSquareMask))
}

// Side returns the colour of the piece.
func (p Piece) Side() Side { return p.side }

// Caste returns the kind of the piece.
func (p Piece) Caste() Caste { return p.caste }

// Square returns where the piece stands.
func (p Piece) Square() Square { return p.square }

// IsZero reports whether p is the zero Piece (never returned by NewPiece).
func (p Piece) IsZero() bool {
	return p == Piece{}
}

// Equal reports whether p and o are the same piece on the same square.
func (p Piece) Equal(o Piece) bool {
	return p == o
}

// Hash returns the packed form of the piece.
func (p Piece) Hash() PieceHash {
	return PieceHash(p.side.Index())<<pieceSideShift |
		PieceHash(p.caste.Index())<<pieceCasteShift |
		PieceHash(p.square)
}

// MovedTo returns the same piece standing on sq.
func (p Piece) MovedTo(sq Square) (Piece, error) {
	return NewPiece(p.side, p.caste, sq)
}

// String returns e.g. "White Knight g1".
func (p Piece) String() string {
	return fmt.Sprintf("%s %s %s", p.side, p.caste, p.square)
}
