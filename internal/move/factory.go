package move

import (
	"github.com/lgbarn/movecodec-go/internal/chess"
	"github.com/lgbarn/movecodec-go/internal/errors"
)

// New builds a move from its semantic fields. promotion and capture are the semantic
// values: NoCaste for move types that do not promote or capture, Pawn as the capture of
// an en passant move. The revocation rule is checked before the move-type shape.
func New(t chess.MoveType, side chess.Side, rev chess.Revocation, promotion, capture, base chess.Caste, from, to chess.Square) (Move, error) {
	switch {
	case !t.IsValid():
		return Move{}, argumentError("type", t, "unknown move type")
	case !side.IsValid():
		return Move{}, argumentError("side", side, "move requires a playing side")
	case !rev.IsValid():
		return Move{}, argumentError("revocation", rev, "unknown revocation")
	case !from.IsValid():
		return Move{}, argumentError("from", from, "square off the board")
	case !to.IsValid():
		return Move{}, argumentError("to", to, "square off the board")
	case !base.IsValid():
		return Move{}, argumentError("base", base, "move requires a moving piece")
	case promotion >= chess.NumCastes:
		return Move{}, argumentError("promotion", promotion, "unknown caste")
	case capture >= chess.NumCastes:
		return Move{}, argumentError("capture", capture, "unknown caste")
	}

	if err := checkRevocation(rev, base); err != nil {
		return Move{}, err
	}

	f := fields{
		typ:        t,
		side:       side,
		revocation: rev,
		promotion:  promotion,
		capture:    capture,
		base:       base,
		from:       from,
		to:         to,
	}
	if (t == chess.DoublePush || t == chess.EnPassant) && promotion == chess.NoCaste {
		// Pawn in the raw promotion field tags the two pawn-only non-promoting types.
		f.promotion = chess.Pawn
	}

	if err := validate(f); err != nil {
		return Move{}, err
	}
	return Move{hash: f.pack()}, nil
}

// Basic builds a non-capturing move of p to an empty square.
func Basic(p chess.Piece, to chess.Square, rev chess.Revocation) (Move, error) {
	if err := checkPiece("piece", p); err != nil {
		return Move{}, err
	}
	return New(chess.Basic, p.Side(), rev, chess.NoCaste, chess.NoCaste, p.Caste(), p.Square(), to)
}

// Capture builds a move of p capturing the enemy piece captured on its square.
func Capture(p, captured chess.Piece, rev chess.Revocation) (Move, error) {
	if err := checkCapture(p, captured); err != nil {
		return Move{}, err
	}
	return New(chess.Capture, p.Side(), rev, chess.NoCaste, captured.Caste(), p.Caste(), p.Square(), captured.Square())
}

// DoublePush builds the two-square opening move of the pawn p.
func DoublePush(p chess.Piece) (Move, error) {
	if err := checkPiece("piece", p); err != nil {
		return Move{}, err
	}
	to, ok := p.Square().Offset(0, 2*p.Side().Forward())
	if !ok {
		return Move{}, errors.New("move."+chess.DoublePush.Key(), errors.ErrInvalidMove,
			"double push leaves the board").WithField("from", p.Square())
	}
	return New(chess.DoublePush, p.Side(), chess.RevokeNone, chess.NoCaste, chess.NoCaste, p.Caste(), p.Square(), to)
}

// EnPassant builds the en passant capture of the pawn p moving to to.
func EnPassant(p chess.Piece, to chess.Square) (Move, error) {
	if err := checkPiece("piece", p); err != nil {
		return Move{}, err
	}
	return New(chess.EnPassant, p.Side(), chess.RevokeNone, chess.NoCaste, chess.Pawn, p.Caste(), p.Square(), to)
}

// Promotion builds a non-capturing promotion of the pawn p on to.
func Promotion(p chess.Piece, to chess.Square, promotion chess.Caste) (Move, error) {
	if err := checkPiece("piece", p); err != nil {
		return Move{}, err
	}
	return New(chess.Promotion, p.Side(), chess.RevokeNone, promotion, chess.NoCaste, p.Caste(), p.Square(), to)
}

// CapturePromotion builds a promotion of the pawn p capturing captured.
func CapturePromotion(p, captured chess.Piece, promotion chess.Caste) (Move, error) {
	if err := checkCapture(p, captured); err != nil {
		return Move{}, err
	}
	return New(chess.CapturePromotion, p.Side(), chess.RevokeNone, promotion, captured.Caste(), p.Caste(), p.Square(), captured.Square())
}

// Castle builds a castling move of king with rook. short selects king-side castling.
// rev must include the right of the castling side.
func Castle(short bool, rev chess.Revocation, king, rook chess.Piece) (Move, error) {
	if err := checkPiece("king", king); err != nil {
		return Move{}, err
	}
	if err := checkPiece("rook", rook); err != nil {
		return Move{}, err
	}
	if rook.Caste() != chess.Rook {
		return Move{}, argumentError("rook", rook, "castling partner must be a rook")
	}
	if rook.Side() != king.Side() {
		return Move{}, argumentError("rook", rook, "castling partner must belong to the king's side")
	}
	return New(chess.CastlingType(short), king.Side(), rev, chess.NoCaste, chess.NoCaste, king.Caste(), king.Square(), rook.Square())
}

func checkPiece(field string, p chess.Piece) error {
	if p.IsZero() || !p.Side().IsValid() || !p.Caste().IsValid() {
		return argumentError(field, p, "piece required")
	}
	return nil
}

func checkCapture(p, captured chess.Piece) error {
	if err := checkPiece("piece", p); err != nil {
		return err
	}
	if err := checkPiece("captured", captured); err != nil {
		return err
	}
	if captured.Side() != p.Side().Opposite() {
		return argumentError("captured", captured, "captured piece must belong to the opponent")
	}
	return nil
}

func argumentError(field string, value interface{}, cause string) error {
	return errors.New(errors.KeyMoveArgument, errors.ErrInvalidArgument, cause).WithField(field, value)
}
