package move

import (
	"github.com/lgbarn/movecodec-go/internal/chess"
)

// Destination files of the king and rook when castling.
const (
	shortKingFile = 'g'
	shortRookFile = 'f'
	longKingFile  = 'c'
	longRookFile  = 'd'
)

// Move is a validated move. It holds only its packed hash, so two moves are equal
// exactly when their hashes are equal. The zero Move is not valid.
type Move struct {
	hash Hash
}

// Trusted wraps a hash previously returned by Move.Hash without re-validating it.
// Use Decode for integers from any other source.
func Trusted(h Hash) Move {
	return Move{hash: h}
}

// Hash returns the packed form of the move.
func (m Move) Hash() Hash { return m.hash }

// Equal returns true if m and o encode the same move.
func (m Move) Equal(o Move) bool { return m.hash == o.hash }

// Type returns the move type.
func (m Move) Type() chess.MoveType { return m.hash.TypeField() }

// Side returns the side making the move.
func (m Move) Side() chess.Side { return m.hash.SideField() }

// Revocation returns the castling rights this move removes from the mover.
func (m Move) Revocation() chess.Revocation { return m.hash.RevocationField() }

// Base returns the caste of the moving piece (the king for castling).
func (m Move) Base() chess.Caste { return m.hash.BaseField() }

// From returns the origin of the moving piece (the king for castling).
func (m Move) From() chess.Square { return m.hash.FromField() }

// To returns the stored destination. For castling this is the rook's origin;
// use KingTo and RookTo for the castling destinations.
func (m Move) To() chess.Square { return m.hash.ToField() }

// Promotion returns the caste promoted to, or NoCaste if the move type does not promote.
func (m Move) Promotion() chess.Caste {
	if !m.Type().IsPromotion() {
		return chess.NoCaste
	}
	return m.hash.PromotionField()
}

// Capture returns the caste captured, or NoCaste if the move type does not capture.
func (m Move) Capture() chess.Caste {
	if !m.Type().IsCapture() {
		return chess.NoCaste
	}
	return m.hash.CaptureField()
}

// IsCapture returns true if the move removes an enemy piece.
func (m Move) IsCapture() bool { return m.Type().IsCapture() }

// IsPromotion returns true if the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Type().IsPromotion() }

// IsCastling returns true for castling moves.
func (m Move) IsCastling() bool { return m.Type().IsCastling() }

// KingTo returns the king's destination for castling moves.
func (m Move) KingTo() (chess.Square, bool) {
	switch m.Type() {
	case chess.CastleShort:
		return onFile(m.From(), shortKingFile), true
	case chess.CastleLong:
		return onFile(m.From(), longKingFile), true
	default:
		return 0, false
	}
}

// RookFrom returns the rook's origin for castling moves.
func (m Move) RookFrom() (chess.Square, bool) {
	if !m.IsCastling() {
		return 0, false
	}
	return m.To(), true
}

// RookTo returns the rook's destination for castling moves.
func (m Move) RookTo() (chess.Square, bool) {
	switch m.Type() {
	case chess.CastleShort:
		return onFile(m.From(), shortRookFile), true
	case chess.CastleLong:
		return onFile(m.From(), longRookFile), true
	default:
		return 0, false
	}
}

// Destination returns the square the moving piece lands on.
func (m Move) Destination() chess.Square {
	if to, ok := m.KingTo(); ok {
		return to
	}
	return m.To()
}

// CaptureSquare returns where the captured piece stands. For en passant that is
// beside the origin on the destination file, otherwise the destination.
func (m Move) CaptureSquare() (chess.Square, bool) {
	switch {
	case !m.IsCapture():
		return 0, false
	case m.Type() == chess.EnPassant:
		return onFile(m.From(), m.To().File()), true
	default:
		return m.To(), true
	}
}

// Moved returns the moving piece on its origin square.
func (m Move) Moved() chess.Piece {
	p, _ := chess.NewPiece(m.Side(), m.Base(), m.From())
	return p
}

// Captured returns the captured piece on its square.
func (m Move) Captured() (chess.Piece, bool) {
	sq, ok := m.CaptureSquare()
	if !ok {
		return chess.Piece{}, false
	}
	p, err := chess.NewPiece(m.Side().Opposite(), m.Capture(), sq)
	return p, err == nil
}

// Promoted returns the piece a promotion materializes on the destination.
func (m Move) Promoted() (chess.Piece, bool) {
	if m.Promotion() == chess.NoCaste {
		return chess.Piece{}, false
	}
	p, err := chess.NewPiece(m.Side(), m.Promotion(), m.To())
	return p, err == nil
}

// CastlingRook returns the rook taking part in a castling move, on its origin.
func (m Move) CastlingRook() (chess.Piece, bool) {
	sq, ok := m.RookFrom()
	if !ok {
		return chess.Piece{}, false
	}
	p, err := chess.NewPiece(m.Side(), chess.Rook, sq)
	return p, err == nil
}

// UCI returns the move in long algebraic form as used by UCI engines, e.g. "e2e4",
// "e7e8q" or "e1g1" for castling.
func (m Move) UCI() string {
	s := m.From().String() + m.Destination().String()
	if p := m.Promotion(); p != chess.NoCaste {
		s += string(p.Letter() | 0x20) // lowercase is +32 uppercase
	}
	return s
}

// String returns the UCI form of the move.
func (m Move) String() string {
	return m.UCI()
}

func onFile(sq chess.Square, file byte) chess.Square {
	return chess.Square(int(sq) - sq.FileIndex() + int(file-chess.FirstFile))
}

func rookFile(short bool) byte {
	if short {
		return 'h'
	}
	return 'a'
}
