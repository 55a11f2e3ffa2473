package output

import (
	"fmt"

	"github.com/lgbarn/movecodec-go/internal/castle"
	"github.com/lgbarn/movecodec-go/internal/census"
	"github.com/lgbarn/movecodec-go/internal/chess"
	"github.com/lgbarn/movecodec-go/internal/errors"
	"github.com/lgbarn/movecodec-go/internal/move"
)

// MoveRecord is one decoded (or rejected) raw move.
type MoveRecord struct {
	Input      string     `json:"input"`
	Valid      bool       `json:"valid"`
	Key        string     `json:"key,omitempty"`
	Error      string     `json:"error,omitempty"`
	UCI        string     `json:"uci,omitempty"`
	Type       string     `json:"type,omitempty"`
	Side       string     `json:"side,omitempty"`
	Piece      string     `json:"piece,omitempty"`
	From       string     `json:"from,omitempty"`
	To         string     `json:"to,omitempty"`
	Captured   string     `json:"captured,omitempty"`
	CaptureAt  string     `json:"captureAt,omitempty"`
	Promotion  string     `json:"promotion,omitempty"`
	Revocation string     `json:"revocation,omitempty"`
	KingTo     string     `json:"kingTo,omitempty"`
	RookTo     string     `json:"rookTo,omitempty"`
	Fields     *RawFields `json:"fields,omitempty"`
}

// RawFields lists the packed sub-fields of a hash as stored, before any semantic
// interpretation.
type RawFields struct {
	Type       uint8  `json:"type"`
	Side       uint8  `json:"side"`
	Revocation uint8  `json:"revocation"`
	Promotion  uint8  `json:"promotion"`
	Capture    uint8  `json:"capture"`
	Base       uint8  `json:"base"`
	From       uint8  `json:"from"`
	To         uint8  `json:"to"`
	Reserved   uint32 `json:"reserved,omitempty"`
}

// CastleRecord is one validated (or rejected) castling-state byte.
type CastleRecord struct {
	Input   string `json:"input"`
	Valid   bool   `json:"valid"`
	Key     string `json:"key,omitempty"`
	Error   string `json:"error,omitempty"`
	FEN     string `json:"fen,omitempty"`
	State   string `json:"state,omitempty"`
	Castled string `json:"castled,omitempty"`
}

// JSONOutput holds every record written through a JSONWriter.
type JSONOutput struct {
	Moves        []*MoveRecord        `json:"moves,omitempty"`
	Castles      []*CastleRecord      `json:"castles,omitempty"`
	MoveCensus   *census.MoveReport   `json:"moveCensus,omitempty"`
	CastleCensus *census.CastleReport `json:"castleCensus,omitempty"`
}

// MoveToRecord describes the outcome of decoding raw. m is ignored when err is not nil.
// withFields adds the raw sub-fields of the input.
func MoveToRecord(raw uint32, m move.Move, err error, withFields bool) *MoveRecord {
	rec := &MoveRecord{Input: move.Hash(raw).String()}
	if withFields {
		rec.Fields = rawFields(move.Hash(raw))
	}
	if err != nil {
		rec.Key = errors.KeyOf(err)
		rec.Error = reason(err)
		return rec
	}

	rec.Valid = true
	rec.UCI = m.UCI()
	rec.Type = m.Type().String()
	rec.Side = m.Side().String()
	rec.Piece = m.Base().String()
	rec.From = m.From().String()
	rec.To = m.To().String()
	if c := m.Capture(); c != chess.NoCaste {
		rec.Captured = c.String()
		if sq, ok := m.CaptureSquare(); ok {
			rec.CaptureAt = sq.String()
		}
	}
	if p := m.Promotion(); p != chess.NoCaste {
		rec.Promotion = p.String()
	}
	if r := m.Revocation(); !r.IsNone() {
		rec.Revocation = r.String()
	}
	if sq, ok := m.KingTo(); ok {
		rec.KingTo = sq.String()
	}
	if sq, ok := m.RookTo(); ok {
		rec.RookTo = sq.String()
	}
	return rec
}

// reason returns the message of err without the key recorded beside it.
func reason(err error) string {
	var ce *errors.CodecError
	if errors.As(err, &ce) {
		if d := ce.Detail(); d != "" {
			return d
		}
	}
	return err.Error()
}

func rawFields(h move.Hash) *RawFields {
	return &RawFields{
		Type:       h.TypeField().Index(),
		Side:       h.SideField().Index(),
		Revocation: h.RevocationField().Index(),
		Promotion:  h.PromotionField().Index(),
		Capture:    h.CaptureField().Index(),
		Base:       h.BaseField().Index(),
		From:       uint8(h.FromField()),
		To:         uint8(h.ToField()),
		Reserved:   h.Reserved(),
	}
}

// CastleToRecord describes the outcome of validating b.
func CastleToRecord(b byte, s castle.State, err error) *CastleRecord {
	rec := &CastleRecord{Input: fmt.Sprintf("%#02x", b)}
	if err != nil {
		rec.Key = errors.KeyOf(err)
		rec.Error = reason(err)
		return rec
	}
	rec.Valid = true
	rec.FEN = s.FEN()
	rec.State = s.String()
	for _, side := range []chess.Side{chess.White, chess.Black} {
		switch {
		case s.HasCastledKingSide(side):
			rec.Castled += side.String() + ":short "
		case s.HasCastledQueenSide(side):
			rec.Castled += side.String() + ":long "
		}
	}
	if n := len(rec.Castled); n > 0 {
		rec.Castled = rec.Castled[:n-1]
	}
	return rec
}
