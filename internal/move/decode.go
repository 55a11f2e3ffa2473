package move

import (
	"github.com/lgbarn/movecodec-go/internal/chess"
	"github.com/lgbarn/movecodec-go/internal/errors"
)

// Decode validates an integer of unknown origin and wraps it as a Move. It fails when
// a reserved bit is set, when a caste sub-field holds the reserved pattern, or when
// the fields violate the shape of their move type.
func Decode(raw uint32) (Move, error) {
	h := Hash(raw)
	if h.Reserved() != 0 {
		return Move{}, errors.New(errors.KeyMoveInputHash, errors.ErrMalformedHash, "invalid input hash").
			WithField("reserved", Hash(h.Reserved()))
	}

	f := h.fields()
	for _, c := range []struct {
		name  string
		caste chess.Caste
	}{
		{"promotion", f.promotion},
		{"capture", f.capture},
		{"base", f.base},
	} {
		if c.caste == chess.ReservedCaste {
			return Move{}, errors.New(errors.KeyMoveInputHash, errors.ErrMalformedHash,
				"invalid input hash: reserved caste pattern").WithField(c.name, uint8(c.caste))
		}
	}

	if err := validate(f); err != nil {
		return Move{}, err
	}
	return Move{hash: h}, nil
}

// MustDecode is like Decode but panics on error. It is meant for constants and tests.
func MustDecode(raw uint32) Move {
	m, err := Decode(raw)
	if err != nil {
		panic(err)
	}
	return m
}
