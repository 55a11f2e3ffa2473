package castle

import (
	"strings"

	"github.com/lgbarn/movecodec-go/internal/chess"
	"github.com/lgbarn/movecodec-go/internal/errors"
	"github.com/lgbarn/movecodec-go/internal/move"
)

var fenRights = []struct {
	letter byte
	side   chess.Side
	bit    byte
}{
	{'K', chess.White, kingRight},
	{'Q', chess.White, queenRight},
	{'k', chess.Black, kingRight},
	{'q', chess.Black, queenRight},
}

// FEN returns the castling-rights field of a FEN record, e.g. "KQkq" or "-".
// Castled bits have no FEN representation and are omitted.
func (s State) FEN() string {
	var sb strings.Builder
	for _, r := range fenRights {
		if s.has(r.side, r.bit) {
			sb.WriteByte(r.letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// ParseFEN parses the castling-rights field of a FEN record. Letters may appear
// in any order but at most once. The result has no castled bits set.
func ParseFEN(field string) (State, error) {
	if field == "-" {
		return None, nil
	}
	if field == "" {
		return None, errors.New(errors.KeyCastleFEN, errors.ErrInvalidArgument, "empty castling field")
	}

	var b byte
	for i := 0; i < len(field); i++ {
		c := field[i]
		found := false
		for _, r := range fenRights {
			if r.letter != c {
				continue
			}
			bit := r.bit << shift(r.side)
			if b&bit != 0 {
				return None, errors.Newf(errors.KeyCastleFEN, errors.ErrInvalidArgument,
					"duplicate right %q", c).WithField("field", field)
			}
			b |= bit
			found = true
		}
		if !found {
			return None, errors.Newf(errors.KeyCastleFEN, errors.ErrInvalidArgument,
				"unknown right %q", c).WithField("field", field)
		}
	}
	return StateFor(b)
}

// Apply returns the state after m is played by m.Side(). Castling moves castle;
// other moves revoke whatever rights they carry. Rights lost by the opponent
// (a rook captured on its home square) are not derived here.
func (s State) Apply(m move.Move) (State, error) {
	if m.IsCastling() {
		return s.Castle(m.Side(), m.Type() == chess.CastleShort)
	}
	rev := m.Revocation()
	if rev.IsNone() {
		return s, nil
	}
	next, err := s.Revoke(m.Side(), rev)
	if err != nil {
		return s, errors.Wrapf(err, "apply %s", m)
	}
	return next, nil
}
