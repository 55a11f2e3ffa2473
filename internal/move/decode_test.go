package move_test

import (
	"strings"
	"testing"

	"github.com/lgbarn/movecodec-go/internal/chess"
	"github.com/lgbarn/movecodec-go/internal/errors"
	"github.com/lgbarn/movecodec-go/internal/move"
	"github.com/lgbarn/movecodec-go/internal/testutil"
)

// raw packs sub-fields at their documented offsets without any validation.
// Empty square names pack as a1.
type raw struct {
	typ, side, rev, promo, capture, base uint32
	from, to                             string
}

func (r raw) pack(t testing.TB) uint32 {
	t.Helper()
	var from, to uint32
	if r.from != "" {
		from = uint32(testutil.MustSquare(t, r.from))
	}
	if r.to != "" {
		to = uint32(testutil.MustSquare(t, r.to))
	}
	return r.rev<<25 | r.typ<<22 | r.side<<21 | r.promo<<18 | r.capture<<15 | r.base<<12 | from<<6 | to
}

// Caste and move-type indices as literal integers, independent of the chess package.
const (
	none, pawn, bishop, knight, rook, queen, king, reserved = 0, 1, 2, 3, 4, 5, 6, 7

	basic, capture, doublePush, enPassant, promotion, capturePromotion, castleShort, castleLong = 0, 1, 2, 3, 4, 5, 6, 7

	black, white = 0, 1
)

// oracle states the validity rules plainly, one move type at a time.
func oracle(typ, side, rev, promo, capt, base uint32, from, to chess.Square) bool {
	if promo == reserved || capt == reserved || base == reserved || base == none {
		return false
	}
	if rev != 0 && base != king && base != rook {
		return false
	}
	if from == to {
		return false
	}
	isPromotable := promo == bishop || promo == knight || promo == rook || promo == queen
	df := from.FileIndex() - to.FileIndex()
	fr, tr := from.Rank(), to.Rank()

	switch typ {
	case basic:
		return promo == none && capt == none
	case capture:
		return promo == none && capt != none
	case doublePush:
		if promo != pawn || capt != none || base != pawn || df != 0 {
			return false
		}
		if side == white {
			return fr == 2 && tr == 4
		}
		return fr == 7 && tr == 5
	case enPassant:
		if promo != pawn || capt != pawn || base != pawn || (df != 1 && df != -1) {
			return false
		}
		if side == white {
			return fr == 5 && tr == 6
		}
		return fr == 4 && tr == 3
	case promotion:
		return isPromotable && capt == none && base == pawn
	case capturePromotion:
		return isPromotable && capt != none && capt != king && base == pawn
	case castleShort, castleLong:
		if promo != none || capt != none || base != king {
			return false
		}
		back := 1
		if side == black {
			back = 8
		}
		if fr != back || tr != back {
			return false
		}
		if typ == castleShort {
			return (rev == 1 || rev == 3) && to.File() == 'h'
		}
		return (rev == 2 || rev == 3) && to.File() == 'a'
	}
	return false
}

var samplePairs = []string{
	"a2a4", "h7h5", "e2e4", "e7e5", "e2e3",
	"e5d6", "e5f6", "d4e3", "a4b3", "e5e6",
	"e1h1", "e1a1", "e8h8", "e8a8", "e1g1",
	"g1f3", "a7a8", "b2a1", "e4e4",
}

// TestDecodeMatchesOracle sweeps every sub-field combination over a set of square pairs
// and checks Decode accepts exactly what the oracle accepts. Every accepted move must
// also be rebuilt unchanged by New from its semantic fields.
func TestDecodeMatchesOracle(t *testing.T) {
	var accepted, rejected int
	for _, pair := range samplePairs {
		from := testutil.MustSquare(t, pair[:2])
		to := testutil.MustSquare(t, pair[2:])
		for typ := uint32(0); typ < 8; typ++ {
			for side := uint32(0); side < 2; side++ {
				for rev := uint32(0); rev < 4; rev++ {
					for promo := uint32(0); promo < 8; promo++ {
						for capt := uint32(0); capt < 8; capt++ {
							for base := uint32(0); base < 8; base++ {
								r := raw{typ, side, rev, promo, capt, base, pair[:2], pair[2:]}.pack(t)
								want := oracle(typ, side, rev, promo, capt, base, from, to)
								m, err := move.Decode(r)
								if got := err == nil; got != want {
									t.Fatalf("Decode(%#08x) valid = %v; want %v (err: %v)", r, got, want, err)
								}
								if err != nil {
									rejected++
									continue
								}
								accepted++
								assertRebuilt(t, m)
							}
						}
					}
				}
			}
		}
	}
	if accepted == 0 || rejected == 0 {
		t.Errorf("sweep accepted %d and rejected %d; want both non-zero", accepted, rejected)
	}
}

func assertRebuilt(t *testing.T, m move.Move) {
	t.Helper()
	rebuilt, err := move.New(m.Type(), m.Side(), m.Revocation(), m.Promotion(), m.Capture(), m.Base(), m.From(), m.To())
	if err != nil {
		t.Fatalf("New(fields of %v) error = %v", m.Hash(), err)
	}
	if rebuilt.Hash() != m.Hash() {
		t.Fatalf("New(fields of %v) = %v; want identical hash", m.Hash(), rebuilt.Hash())
	}
}

// TestDecodeGeometryCounts sweeps all 4096 square pairs for the geometrically
// constrained move types.
func TestDecodeGeometryCounts(t *testing.T) {
	tests := []struct {
		name string
		r    raw
		want int
	}{
		{"white double push", raw{typ: doublePush, side: white, promo: pawn, base: pawn}, 8},
		{"black double push", raw{typ: doublePush, side: black, promo: pawn, base: pawn}, 8},
		{"white en passant", raw{typ: enPassant, side: white, promo: pawn, capture: pawn, base: pawn}, 14},
		{"black en passant", raw{typ: enPassant, side: black, promo: pawn, capture: pawn, base: pawn}, 14},
		{"white short castle", raw{typ: castleShort, side: white, rev: 1, base: king}, 7},
		{"black long castle", raw{typ: castleLong, side: black, rev: 3, base: king}, 7},
		{"long castle keeping king side", raw{typ: castleLong, side: white, rev: 1, base: king}, 0},
		{"white queen basic", raw{typ: basic, side: white, base: queen}, 64 * 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := tt.r.pack(t)
			count := 0
			for from := uint32(0); from < 64; from++ {
				for to := uint32(0); to < 64; to++ {
					if _, err := move.Decode(base | from<<6 | to); err == nil {
						count++
					}
				}
			}
			if count != tt.want {
				t.Errorf("valid square pairs = %d; want %d", count, tt.want)
			}
		})
	}
}

func TestDecodeRejectionKeys(t *testing.T) {
	tests := []struct {
		name     string
		raw      uint32
		wantKey  string
		wantIs   error
		contains string
	}{
		{
			name:     "reserved top bit",
			raw:      1 << 31,
			wantKey:  errors.KeyMoveInputHash,
			wantIs:   errors.ErrMalformedHash,
			contains: "invalid input hash",
		},
		{
			name:     "reserved bit 27",
			raw:      1<<27 | raw{typ: basic, side: white, base: knight, from: "g1", to: "f3"}.pack(t),
			wantKey:  errors.KeyMoveInputHash,
			wantIs:   errors.ErrMalformedHash,
			contains: "invalid input hash",
		},
		{
			name:     "reserved promotion pattern",
			raw:      raw{typ: promotion, side: white, promo: reserved, base: pawn, from: "a7", to: "a8"}.pack(t),
			wantKey:  errors.KeyMoveInputHash,
			wantIs:   errors.ErrMalformedHash,
			contains: "promotion=7",
		},
		{
			name:     "reserved capture pattern",
			raw:      raw{typ: capture, side: black, capture: reserved, base: queen, from: "d8", to: "d1"}.pack(t),
			wantKey:  errors.KeyMoveInputHash,
			wantIs:   errors.ErrMalformedHash,
			contains: "capture=7",
		},
		{
			name:    "reserved base pattern",
			raw:     raw{typ: basic, side: white, base: reserved, from: "a1", to: "a2"}.pack(t),
			wantKey: errors.KeyMoveInputHash,
			wantIs:  errors.ErrMalformedHash,
		},
		{
			name:     "knight revoking rights",
			raw:      raw{typ: basic, side: white, rev: 1, base: knight, from: "g1", to: "f3"}.pack(t),
			wantKey:  errors.KeyMoveRevocation,
			wantIs:   errors.ErrInvalidMove,
			contains: "invalid move-type for revocation",
		},
		{
			name:    "basic move with capture",
			raw:     raw{typ: basic, side: white, capture: pawn, base: knight, from: "g1", to: "f3"}.pack(t),
			wantKey: "move.basic",
			wantIs:  errors.ErrInvalidMove,
		},
		{
			name:    "capture of nothing",
			raw:     raw{typ: capture, side: white, base: knight, from: "g1", to: "f3"}.pack(t),
			wantKey: "move.capture",
			wantIs:  errors.ErrInvalidMove,
		},
		{
			name:     "double push skipping a rank",
			raw:      raw{typ: doublePush, side: white, promo: pawn, base: pawn, from: "e2", to: "e5"}.pack(t),
			wantKey:  "move.double-push",
			wantIs:   errors.ErrInvalidMove,
			contains: "rank 2 to rank 4",
		},
		{
			name:    "double push by a rook",
			raw:     raw{typ: doublePush, side: white, promo: pawn, base: rook, from: "e2", to: "e4"}.pack(t),
			wantKey: "move.double-push",
			wantIs:  errors.ErrInvalidMove,
		},
		{
			name:    "en passant on the same file",
			raw:     raw{typ: enPassant, side: white, promo: pawn, capture: pawn, base: pawn, from: "e5", to: "e6"}.pack(t),
			wantKey: "move.en-passant",
			wantIs:  errors.ErrInvalidMove,
		},
		{
			name:    "promotion to king",
			raw:     raw{typ: promotion, side: white, promo: king, base: pawn, from: "a7", to: "a8"}.pack(t),
			wantKey: "move.promotion",
			wantIs:  errors.ErrInvalidMove,
		},
		{
			name:    "capture promotion taking a king",
			raw:     raw{typ: capturePromotion, side: black, promo: queen, capture: king, base: pawn, from: "b2", to: "a1"}.pack(t),
			wantKey: "move.capture-promotion",
			wantIs:  errors.ErrInvalidMove,
		},
		{
			name:     "short castle without king-side revocation",
			raw:      raw{typ: castleShort, side: white, rev: 2, base: king, from: "e1", to: "h1"}.pack(t),
			wantKey:  "move.castle-short",
			wantIs:   errors.ErrInvalidMove,
			contains: "king-side",
		},
		{
			name:    "long castle towards the h-file",
			raw:     raw{typ: castleLong, side: white, rev: 2, base: king, from: "e1", to: "h1"}.pack(t),
			wantKey: "move.castle-long",
			wantIs:  errors.ErrInvalidMove,
		},
		{
			name:    "null move",
			raw:     raw{typ: basic, side: white, base: queen, from: "d1", to: "d1"}.pack(t),
			wantKey: "move.basic",
			wantIs:  errors.ErrInvalidMove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := move.Decode(tt.raw)
			testutil.AssertErrorKey(t, err, tt.wantKey)
			if !errors.Is(err, tt.wantIs) {
				t.Errorf("Decode(%#08x) error = %v; want errors.Is %v", tt.raw, err, tt.wantIs)
			}
			if tt.contains != "" && (err == nil || !strings.Contains(err.Error(), tt.contains)) {
				t.Errorf("Decode(%#08x) error = %v; want it to contain %q", tt.raw, err, tt.contains)
			}
		})
	}
}

func TestDecodeIsIdempotent(t *testing.T) {
	king := testutil.MustPiece(t, chess.White, chess.King, "e1")
	rook := testutil.MustPiece(t, chess.White, chess.Rook, "h1")
	m := testutil.MustMove(t)(move.Castle(true, chess.RevokeBoth, king, rook))

	once := testutil.MustDecode(t, uint32(m.Hash()))
	twice := testutil.MustDecode(t, uint32(once.Hash()))
	testutil.AssertEqual(t, once, m)
	testutil.AssertEqual(t, twice, once)
}

func TestMustDecodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustDecode(1<<31) did not panic")
		}
	}()
	move.MustDecode(1 << 31)
}
