package move

import (
	"fmt"

	"github.com/lgbarn/movecodec-go/internal/chess"
	"github.com/lgbarn/movecodec-go/internal/errors"
)

// casteSet is a bitmask over caste packing indices.
type casteSet uint8

func setOf(castes ...chess.Caste) casteSet {
	var s casteSet
	for _, c := range castes {
		s |= 1 << (c & casteMask)
	}
	return s
}

func (s casteSet) has(c chess.Caste) bool {
	return c <= casteMask && s&(1<<c) != 0
}

var (
	onlyNone   = setOf(chess.NoCaste)
	onlyPawn   = setOf(chess.Pawn)
	anyPiece   = setOf(chess.Pawn, chess.Bishop, chess.Knight, chess.Rook, chess.Queen, chess.King)
	promotable = setOf(chess.PromotionCastes...)
	capturable = setOf(chess.Pawn, chess.Bishop, chess.Knight, chess.Rook, chess.Queen)
)

// shape lists the raw sub-field values a move type permits, plus an optional
// geometric rule over the squares.
type shape struct {
	promotion casteSet
	capture   casteSet
	base      casteSet
	geometry  func(f fields) string
}

// shapes is indexed by move type; every type has exactly one entry. The base column
// comes from the type's mover caste.
var shapes = withMovers([chess.NumMoveTypes]shape{
	chess.Basic:            {promotion: onlyNone, capture: onlyNone},
	chess.Capture:          {promotion: onlyNone, capture: anyPiece},
	chess.DoublePush:       {promotion: onlyPawn, capture: onlyNone, geometry: doublePushGeometry},
	chess.EnPassant:        {promotion: onlyPawn, capture: onlyPawn, geometry: enPassantGeometry},
	chess.Promotion:        {promotion: promotable, capture: onlyNone},
	chess.CapturePromotion: {promotion: promotable, capture: capturable},
	chess.CastleShort:      {promotion: onlyNone, capture: onlyNone, geometry: castleGeometry},
	chess.CastleLong:       {promotion: onlyNone, capture: onlyNone, geometry: castleGeometry},
})

func withMovers(s [chess.NumMoveTypes]shape) [chess.NumMoveTypes]shape {
	for i := range s {
		s[i].base = movers(chess.MoveType(i))
	}
	return s
}

// movers returns the castes allowed to make a move of type t.
func movers(t chess.MoveType) casteSet {
	if c := t.MoverCaste(); c != chess.NoCaste {
		return setOf(c)
	}
	return anyPiece
}

// validate checks f against the revocation rule and the shape of its move type.
func validate(f fields) error {
	if !f.typ.IsValid() {
		return errors.New(errors.KeyMoveTypeIndex, errors.ErrInvalidIndex, "no move type for index").
			WithField("type", f.typ.Index())
	}
	if !f.side.IsValid() {
		return errors.New(errors.KeyMoveArgument, errors.ErrInvalidArgument, "move requires a playing side").
			WithField("side", f.side)
	}
	if err := checkRevocation(f.revocation, f.base); err != nil {
		return err
	}

	sh := shapes[f.typ]
	switch {
	case !sh.base.has(f.base):
		return shapeError(f.typ, "base", f.base, "moving caste not allowed")
	case !sh.promotion.has(f.promotion):
		return shapeError(f.typ, "promotion", f.promotion, "promotion caste not allowed")
	case !sh.capture.has(f.capture):
		return shapeError(f.typ, "capture", f.capture, "capture caste not allowed")
	case f.from == f.to:
		return shapeError(f.typ, "to", f.to, "origin and destination coincide")
	}

	if sh.geometry != nil {
		if cause := sh.geometry(f); cause != "" {
			return shapeError(f.typ, "squares", fmt.Sprintf("%s-%s", f.from, f.to), cause)
		}
	}
	return nil
}

// checkRevocation enforces that only king and rook moves can revoke castling rights.
func checkRevocation(rev chess.Revocation, base chess.Caste) error {
	if !rev.IsValid() {
		return errors.New(errors.KeyRevocationIndex, errors.ErrInvalidIndex, "no revocation for index").
			WithField("revocation", rev.Index())
	}
	if rev.IsNone() || base == chess.King || base == chess.Rook {
		return nil
	}
	return errors.Newf(errors.KeyMoveRevocation, errors.ErrInvalidMove,
		"invalid move-type for revocation: a %s move cannot revoke castling rights", base).
		WithField("revocation", rev)
}

func shapeError(t chess.MoveType, field string, value interface{}, cause string) error {
	return errors.New("move."+t.Key(), errors.ErrInvalidMove, cause).WithField(field, value)
}

func doublePushGeometry(f fields) string {
	if f.from.File() != f.to.File() {
		return "double push must stay on its file"
	}
	if f.from.Rank() != f.side.PawnRank() || f.to.Rank() != f.side.DoublePushRank() {
		return fmt.Sprintf("%s double push must go from rank %d to rank %d",
			f.side, f.side.PawnRank(), f.side.DoublePushRank())
	}
	return ""
}

func enPassantGeometry(f fields) string {
	df := f.to.FileIndex() - f.from.FileIndex()
	if df != 1 && df != -1 {
		return "en passant must move to an adjacent file"
	}
	if f.from.Rank() != f.side.EnPassantRank() || f.to.Rank() != f.from.Rank()+f.side.Forward() {
		return fmt.Sprintf("%s en passant must go from rank %d to rank %d",
			f.side, f.side.EnPassantRank(), f.side.EnPassantRank()+f.side.Forward())
	}
	return ""
}

func castleGeometry(f fields) string {
	short := f.typ == chess.CastleShort
	if short && !f.revocation.IsKingSide() {
		return "short castling must revoke the king-side right"
	}
	if !short && !f.revocation.IsQueenSide() {
		return "long castling must revoke the queen-side right"
	}
	back := f.side.BackRank()
	if f.from.Rank() != back || f.to.Rank() != back {
		return fmt.Sprintf("%s castling must stay on rank %d", f.side, back)
	}
	if f.to.File() != rookFile(short) {
		return fmt.Sprintf("rook must start on file %c", rookFile(short))
	}
	return ""
}
