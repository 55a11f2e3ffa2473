package chess

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/lgbarn/movecodec-go/internal/errors"
)

// Square is a board coordinate packed as rank*8+file (little-endian rank-file, a1=0, h8=63).
type Square uint8

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FirstFile = 'a'
	LastFile  = FirstFile + BoardSize - 1
	FirstRank = 1
	LastRank  = BoardSize
)

// Named squares used by castling and the tests.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// Named back-rank squares for Black.
const (
	A8 Square = 56 + iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

type squareInfo struct {
	file byte // 'a'-'h'
	rank int  // 1-8
	name string
}

// squareTable is filled once in init and read-only afterwards.
var squareTable [NumSquares]squareInfo

func init() {
	for i := 0; i < NumSquares; i++ {
		file := byte(FirstFile + i%BoardSize)
		rank := FirstRank + i/BoardSize
		squareTable[i] = squareInfo{
			file: file,
			rank: rank,
			name: string([]byte{file, byte('0' + rank)}),
		}
	}
}

// SquareFor returns the square at file ('a'-'h') and rank (1-8).
func SquareFor(file byte, rank int) (Square, error) {
	if file < FirstFile || file > LastFile || rank < FirstRank || rank > LastRank {
		return 0, errors.Newf(errors.KeySquareCoordinate, errors.ErrInvalidCoordinate,
			"file %q rank %d outside the board", file, rank)
	}
	return Square(int(file-FirstFile) + (rank-FirstRank)*BoardSize), nil
}

// SquareAt returns the square with packing index i (0-63).
func SquareAt[I constraints.Integer](i I) (Square, error) {
	return fromIndex[Square](i, NumSquares, errors.KeySquareIndex)
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return 0, errors.New(errors.KeySquareCoordinate, errors.ErrInvalidCoordinate,
			"square name must be two characters").WithField("name", name)
	}
	return SquareFor(name[0], int(name[1])-'0')
}

// Index returns the packing index (0-63).
func (s Square) Index() int {
	return int(s)
}

// IsValid reports whether s is on the board.
func (s Square) IsValid() bool {
	return s < NumSquares
}

// File returns the file letter ('a'-'h').
func (s Square) File() byte {
	return squareTable[s&(NumSquares-1)].file
}

// Rank returns the rank number (1-8).
func (s Square) Rank() int {
	return squareTable[s&(NumSquares-1)].rank
}

// FileIndex returns the zero-based file (0-7).
func (s Square) FileIndex() int {
	return int(s) % BoardSize
}

// RankIndex returns the zero-based rank (0-7).
func (s Square) RankIndex() int {
	return int(s) / BoardSize
}

// String returns algebraic notation ("a1".."h8").
func (s Square) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Square(%d)", uint8(s))
	}
	return squareTable[s].name
}

// Compare orders squares by packing index. It returns -1, 0 or +1.
func (s Square) Compare(o Square) int {
	switch {
	case s < o:
		return -1
	case s > o:
		return 1
	default:
		return 0
	}
}

// WithFile returns the square on the same rank at the given file.
func (s Square) WithFile(file byte) (Square, error) {
	return SquareFor(file, s.Rank())
}

// Offset returns the square df files and dr ranks away, or false if it is off the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	f := s.FileIndex() + df
	r := s.RankIndex() + dr
	if f < 0 || f >= BoardSize || r < 0 || r >= BoardSize {
		return 0, false
	}
	return Square(r*BoardSize + f), true
}
