package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidCoordinate", ErrInvalidCoordinate, ErrInvalidCoordinate},
		{"ErrInvalidIndex", ErrInvalidIndex, ErrInvalidIndex},
		{"ErrInvalidArgument", ErrInvalidArgument, ErrInvalidArgument},
		{"ErrMalformedHash", ErrMalformedHash, ErrMalformedHash},
		{"ErrInvalidMove", ErrInvalidMove, ErrInvalidMove},
		{"ErrInvalidCastleState", ErrInvalidCastleState, ErrInvalidCastleState},
		{"ErrIllegalTransition", ErrIllegalTransition, ErrIllegalTransition},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies no two failure classes match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{
		ErrInvalidCoordinate, ErrInvalidIndex, ErrInvalidArgument, ErrMalformedHash,
		ErrInvalidMove, ErrInvalidCastleState, ErrIllegalTransition, ErrInvalidConfig,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestCodecError_Error verifies the error message format
func TestCodecError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *CodecError
		want string
	}{
		{
			name: "full context",
			err:  New(KeyMoveInputHash, ErrMalformedHash, "invalid input hash").WithField("reserved", "0x80000000"),
			want: "move.input-hash: reserved=0x80000000: invalid input hash: malformed move hash",
		},
		{
			name: "field without value",
			err:  New(KeyCastleFEN, ErrInvalidArgument, "duplicate letter").WithField("field", nil),
			want: "castle.fen: field: duplicate letter: invalid argument",
		},
		{
			name: "minimal context",
			err:  &CodecError{Key: KeySideIndex},
			want: "side.index",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("CodecError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestCodecError_Detail verifies Detail omits the key that Error leads with
func TestCodecError_Detail(t *testing.T) {
	err := New(KeyMoveInputHash, ErrMalformedHash, "invalid input hash").WithField("reserved", "0x80000000")
	want := "reserved=0x80000000: invalid input hash: malformed move hash"
	if got := err.Detail(); got != want {
		t.Errorf("Detail() = %q, want %q", got, want)
	}
	if got := err.Error(); got != KeyMoveInputHash+": "+want {
		t.Errorf("Error() = %q", got)
	}
	if got := (&CodecError{Key: KeySideIndex}).Detail(); got != "" {
		t.Errorf("Detail() of a bare key = %q, want empty", got)
	}
}

// TestNewf verifies the cause is formatted
func TestNewf(t *testing.T) {
	err := Newf(KeySquareCoordinate, ErrInvalidCoordinate, "file %q rank %d outside the board", 'z', 9)
	if err.Cause != `file 'z' rank 9 outside the board` {
		t.Errorf("Cause = %q", err.Cause)
	}
}

// TestWithField_Copies verifies WithField leaves the receiver untouched
func TestWithField_Copies(t *testing.T) {
	base := New(KeyCastleState, ErrInvalidCastleState, "both castled both sides")
	annotated := base.WithField("state", "0xcc")

	if base.Field != "" || base.Value != nil {
		t.Errorf("WithField modified the receiver: %+v", base)
	}
	if annotated.Field != "state" || annotated.Value != "0xcc" {
		t.Errorf("annotated = %+v", annotated)
	}
}

// TestCodecError_Unwrap verifies that CodecError properly implements Unwrap
func TestCodecError_Unwrap(t *testing.T) {
	codecErr := New(KeyMoveRevocation, ErrInvalidMove, "a Pawn move cannot revoke castling rights")

	// Unwrap should return the underlying error
	unwrapped := errors.Unwrap(codecErr)
	if !errors.Is(unwrapped, ErrInvalidMove) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrInvalidMove)
	}

	// errors.Is should work through the wrapper
	if !Is(codecErr, ErrInvalidMove) {
		t.Error("Is(codecErr, ErrInvalidMove) = false, want true")
	}
}

// TestCodecError_As verifies that errors.As works with CodecError
func TestCodecError_As(t *testing.T) {
	codecErr := New(KeyCastleTransition, ErrIllegalTransition, "side has castled").WithField("revoke", "White")

	// Wrap it further
	wrapped := fmt.Errorf("apply e1g1: %w", codecErr)

	// Should be able to extract CodecError with errors.As
	var extractedErr *CodecError
	if !As(wrapped, &extractedErr) {
		t.Fatal("As() could not extract CodecError")
	}

	if extractedErr.Key != KeyCastleTransition {
		t.Errorf("extractedErr.Key = %q, want %q", extractedErr.Key, KeyCastleTransition)
	}
	if extractedErr.Field != "revoke" {
		t.Errorf("extractedErr.Field = %q, want %q", extractedErr.Field, "revoke")
	}
}

// TestKeyOf verifies the key is found through wrapping
func TestKeyOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", errors.New("plain"), ""},
		{"direct", New(KeyCasteIndex, ErrInvalidIndex, "no caste for index"), KeyCasteIndex},
		{"wrapped", Wrap(New("move.castle-long", ErrInvalidMove, "rook must start on file a"), "decode"), "move.castle-long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyOf(tt.err); got != tt.want {
				t.Errorf("KeyOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	original := ErrMalformedHash
	wrapped := Wrap(original, "decoding raw move")

	if !errors.Is(wrapped, ErrMalformedHash) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "decoding raw move") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	original := ErrIllegalTransition
	wrapped := Wrapf(original, "apply %s", "e1g1")

	if !errors.Is(wrapped, ErrIllegalTransition) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "apply e1g1") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
