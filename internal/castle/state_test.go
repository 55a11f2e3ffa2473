package castle

import (
	"strings"
	"testing"

	"github.com/lgbarn/movecodec-go/internal/chess"
	"github.com/lgbarn/movecodec-go/internal/errors"
	"github.com/lgbarn/movecodec-go/internal/testutil"
)

// expectedCause derives the rejection cause of b bit by bit, independently of StateFor.
func expectedCause(b byte) string {
	wkc, wqc, wkr, wqr := b&0x80 != 0, b&0x40 != 0, b&0x20 != 0, b&0x10 != 0
	bkc, bqc, bkr, bqr := b&0x08 != 0, b&0x04 != 0, b&0x02 != 0, b&0x01 != 0

	switch {
	case wkc && wqc && bkc && bqc:
		return "both castled both sides"
	case wkc && wqc:
		return "White castled both sides"
	case bkc && bqc:
		return "Black castled both sides"
	case (wkc || wqc) && (wkr || wqr):
		return "White castled with retained rights"
	case (bkc || bqc) && (bkr || bqr):
		return "Black castled with retained rights"
	}
	return ""
}

func TestStateForAllBytes(t *testing.T) {
	valid := 0
	for i := 0; i < 256; i++ {
		b := byte(i)
		s, err := StateFor(b)
		want := expectedCause(b)

		if want == "" {
			if err != nil {
				t.Errorf("StateFor(%#02x) error = %v; want nil", b, err)
				continue
			}
			valid++
			testutil.AssertEqual(t, s.Byte(), b)
			again, err := StateFor(s.Byte())
			testutil.AssertNoError(t, err, "revalidating %#02x", b)
			testutil.AssertEqual(t, again, s)
			continue
		}

		testutil.AssertErrorKey(t, err, errors.KeyCastleState, "StateFor(%#02x)", b)
		if !errors.Is(err, errors.ErrInvalidCastleState) {
			t.Errorf("StateFor(%#02x) error = %v; want ErrInvalidCastleState", b, err)
		}
		var ce *errors.CodecError
		if errors.As(err, &ce) && ce.Cause != want {
			t.Errorf("StateFor(%#02x) cause = %q; want %q", b, ce.Cause, want)
		}
	}

	// Per side: 4 rights combinations uncastled plus 2 castled without rights.
	if valid != 6*6 {
		t.Errorf("valid bytes = %d; want %d", valid, 6*6)
	}
}

func TestCastleKingSideScenario(t *testing.T) {
	s := MustState(0x30)
	next, err := s.CastleKingSide(chess.White)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, next.Byte(), byte(0x80))
	testutil.AssertTrue(t, next.HasCastledKingSide(chess.White))
	testutil.AssertTrue(t, next.HasCastled(chess.White))
	testutil.AssertFalse(t, next.HasCastledQueenSide(chess.White))
	testutil.AssertFalse(t, next.HasAnyRight(chess.White))
	testutil.AssertEqual(t, next.Byte()&0x0F, s.Byte()&0x0F, "black nibble unchanged")
	testutil.AssertEqual(t, s.Byte(), byte(0x30), "receiver unchanged")
}

func TestBothCastledBothSides(t *testing.T) {
	_, err := StateFor(0xcc)
	testutil.AssertErrorKey(t, err, errors.KeyCastleState)
	testutil.AssertContains(t, err.Error(), "both castled both sides")
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    byte
		apply   func(State) (State, error)
		want    byte
		wantKey string
	}{
		{"white castles long", 0x33, func(s State) (State, error) { return s.CastleQueenSide(chess.White) }, 0x43, ""},
		{"black castles short", 0x33, func(s State) (State, error) { return s.CastleKingSide(chess.Black) }, 0x38, ""},
		{"black castles long keeping nothing", 0x31, func(s State) (State, error) { return s.CastleQueenSide(chess.Black) }, 0x34, ""},
		{"castle without right", 0x23, func(s State) (State, error) { return s.CastleQueenSide(chess.White) }, 0x23, errors.KeyCastleTransition},
		{"castle twice", 0x80, func(s State) (State, error) { return s.CastleKingSide(chess.White) }, 0x80, errors.KeyCastleTransition},
		{"castle as nobody", 0x33, func(s State) (State, error) { return s.CastleKingSide(chess.NoSide) }, 0x33, errors.KeyCastleTransition},
		{"revoke white king side", 0x33, func(s State) (State, error) { return s.RevokeKingSide(chess.White) }, 0x13, ""},
		{"revoke black queen side", 0x33, func(s State) (State, error) { return s.RevokeQueenSide(chess.Black) }, 0x32, ""},
		{"revoke both", 0x33, func(s State) (State, error) { return s.RevokeBoth(chess.Black) }, 0x30, ""},
		{"revoke absent right", 0x03, func(s State) (State, error) { return s.RevokeBoth(chess.White) }, 0x03, ""},
		{"revoke after castling", 0x43, func(s State) (State, error) { return s.RevokeKingSide(chess.White) }, 0x43, errors.KeyCastleTransition},
		{"revoke as nobody", 0x33, func(s State) (State, error) { return s.RevokeBoth(chess.NoSide) }, 0x33, errors.KeyCastleTransition},
		{"revoke unknown", 0x33, func(s State) (State, error) { return s.Revoke(chess.White, chess.NumRevocations) }, 0x33, errors.KeyCastleTransition},
		{"restore king side", 0x13, func(s State) (State, error) { return s.RestoreKingSide(chess.White) }, 0x33, ""},
		{"restore queen side", 0x00, func(s State) (State, error) { return s.RestoreQueenSide(chess.Black) }, 0x01, ""},
		{"restore both", 0x80, func(s State) (State, error) { return s.RestoreBoth(chess.Black) }, 0x83, ""},
		{"restore into castled side", 0x80, func(s State) (State, error) { return s.RestoreBoth(chess.White) }, 0x80, errors.KeyCastleState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.apply(MustState(tt.from))
			if tt.wantKey != "" {
				testutil.AssertErrorKey(t, err, tt.wantKey)
			} else {
				testutil.AssertNoError(t, err)
			}
			testutil.AssertEqual(t, got.Byte(), tt.want)
		})
	}
}

// TestTransitionsNeverInvalid runs every transition from every valid state and checks
// each successful result is a valid state.
func TestTransitionsNeverInvalid(t *testing.T) {
	sides := []chess.Side{chess.White, chess.Black}
	revs := []chess.Revocation{chess.RevokeNone, chess.RevokeKingSide, chess.RevokeQueenSide, chess.RevokeBoth}

	for i := 0; i < 256; i++ {
		s, err := StateFor(byte(i))
		if err != nil {
			continue
		}
		var results []State
		for _, side := range sides {
			for _, short := range []bool{true, false} {
				if next, err := s.Castle(side, short); err == nil {
					results = append(results, next)
				}
			}
			for _, rev := range revs {
				if next, err := s.Revoke(side, rev); err == nil {
					results = append(results, next)
				}
				if next, err := s.Restore(side, rev); err == nil {
					results = append(results, next)
				}
			}
		}
		for _, r := range results {
			if _, err := StateFor(r.Byte()); err != nil {
				t.Errorf("transition from %#02x produced invalid %#02x: %v", i, r.Byte(), err)
			}
		}
	}
}

func TestPredicatesForNoSide(t *testing.T) {
	s := MustState(0xff &^ 0xcc) // every right held
	testutil.AssertFalse(t, s.HasAnyRight(chess.NoSide))
	testutil.AssertFalse(t, s.HasKingSideRight(chess.NoSide))
	testutil.AssertFalse(t, s.HasCastled(chess.NoSide))
	testutil.AssertTrue(t, s.HasKingSideRight(chess.Black))
	testutil.AssertTrue(t, s.HasQueenSideRight(chess.White))
}

func TestString(t *testing.T) {
	tests := []struct {
		b    byte
		want string
	}{
		{0x33, "rights=KQkq castled=-"},
		{0x00, "rights=- castled=-"},
		{0x84, "rights=- castled=Kq"},
		{0x12, "rights=Qk castled=-"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := MustState(tt.b).String()
			if got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestMustStatePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustState(0xcc) did not panic")
		}
		err, ok := r.(error)
		if !ok || !strings.Contains(err.Error(), "both castled both sides") {
			t.Errorf("panic value = %v; want the validation error", r)
		}
	}()
	MustState(0xcc)
}
