package testutil

import (
	"testing"

	"github.com/lgbarn/movecodec-go/internal/chess"
	"github.com/lgbarn/movecodec-go/internal/move"
)

// MustSquare parses a square name such as "e4".
// It calls t.Fatal if the name is not a square.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("MustSquare(%q): %v", name, err)
	}
	return sq
}

// MustPiece returns the piece of side and caste standing on the named square.
// It calls t.Fatal if the piece cannot be built.
func MustPiece(t testing.TB, side chess.Side, caste chess.Caste, square string) chess.Piece {
	t.Helper()
	p, err := chess.NewPiece(side, caste, MustSquare(t, square))
	if err != nil {
		t.Fatalf("MustPiece(%v, %v, %q): %v", side, caste, square, err)
	}
	return p
}

// MustMove unwraps the result of a move factory.
// It calls t.Fatal if the factory failed.
//
//	m := testutil.MustMove(t)(move.DoublePush(pawn))
func MustMove(t testing.TB) func(move.Move, error) move.Move {
	t.Helper()
	return func(m move.Move, err error) move.Move {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected move error: %v", err)
		}
		return m
	}
}

// MustDecode decodes a raw move integer.
// It calls t.Fatal if the integer is rejected.
func MustDecode(t testing.TB, raw uint32) move.Move {
	t.Helper()
	m, err := move.Decode(raw)
	if err != nil {
		t.Fatalf("MustDecode(%#08x): %v", raw, err)
	}
	return m
}
