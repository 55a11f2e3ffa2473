// Package bridge converts between the moves of the dragontoothmg move generator and
// codec moves. The generator knows the board but not the move types; the codec needs
// the board to classify a move and the castling state to derive its revocation.
package bridge

import (
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/movecodec-go/internal/castle"
	"github.com/lgbarn/movecodec-go/internal/chess"
	"github.com/lgbarn/movecodec-go/internal/errors"
	"github.com/lgbarn/movecodec-go/internal/move"
)

// KeyPosition identifies failures to set up a position from a FEN record.
const KeyPosition = "bridge.position"

var fromGenerator = map[dragontoothmg.Piece]chess.Caste{
	dragontoothmg.Nothing: chess.NoCaste,
	dragontoothmg.Pawn:    chess.Pawn,
	dragontoothmg.Knight:  chess.Knight,
	dragontoothmg.Bishop:  chess.Bishop,
	dragontoothmg.Rook:    chess.Rook,
	dragontoothmg.Queen:   chess.Queen,
	dragontoothmg.King:    chess.King,
}

var toGenerator = map[chess.Caste]dragontoothmg.Piece{
	chess.NoCaste: dragontoothmg.Nothing,
	chess.Pawn:    dragontoothmg.Pawn,
	chess.Knight:  dragontoothmg.Knight,
	chess.Bishop:  dragontoothmg.Bishop,
	chess.Rook:    dragontoothmg.Rook,
	chess.Queen:   dragontoothmg.Queen,
	chess.King:    dragontoothmg.King,
}

// Position is a generator board together with the castling state of the game.
type Position struct {
	Board  dragontoothmg.Board
	Rights castle.State
}

// ParsePosition sets up a position from a FEN record. The castling field is parsed
// into Rights; the board itself is parsed by the generator.
func ParsePosition(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New(KeyPosition, errors.ErrInvalidArgument, "FEN record needs at least four fields").
			WithField("fen", fen)
	}
	if ranks := strings.Count(fields[0], "/"); ranks != 7 {
		return nil, errors.New(KeyPosition, errors.ErrInvalidArgument, "piece placement needs eight ranks").
			WithField("fen", fen)
	}
	if fields[1] != "w" && fields[1] != "b" {
		return nil, errors.New(KeyPosition, errors.ErrInvalidArgument, "side to move must be w or b").
			WithField("fen", fen)
	}
	rights, err := castle.ParseFEN(fields[2])
	if err != nil {
		return nil, errors.Wrap(err, KeyPosition)
	}
	return &Position{Board: dragontoothmg.ParseFen(fen), Rights: rights}, nil
}

// SideToMove returns the side the generator will produce moves for.
func (p *Position) SideToMove() chess.Side {
	if p.Board.Wtomove {
		return chess.White
	}
	return chess.Black
}

// LegalMoves converts every legal move of the position.
func (p *Position) LegalMoves() ([]move.Move, error) {
	generated := p.Board.GenerateLegalMoves()
	moves := make([]move.Move, 0, len(generated))
	for _, dm := range generated {
		m, err := FromDragontooth(&p.Board, dm, p.Rights)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FromDragontooth classifies a generated move on b. rights supplies the mover's
// castling rights, from which king and rook moves derive their revocation.
func FromDragontooth(b *dragontoothmg.Board, dm dragontoothmg.Move, rights castle.State) (move.Move, error) {
	side := chess.Black
	us, them := &b.Black, &b.White
	if b.Wtomove {
		side = chess.White
		us, them = &b.White, &b.Black
	}

	from := chess.Square(dm.From())
	to := chess.Square(dm.To())
	base := casteAt(us, from)
	if base == chess.NoCaste {
		return move.Move{}, errors.New(errors.KeyMoveArgument, errors.ErrInvalidArgument,
			"no piece of the side to move on the origin").WithField("move", dm.String())
	}
	captured := casteAt(them, to)
	promotion := fromGenerator[dm.Promote()]
	rev := revocation(side, base, from, rights)

	df := to.FileIndex() - from.FileIndex()
	dr := to.RankIndex() - from.RankIndex()

	var t chess.MoveType
	switch {
	case base == chess.King && (df == 2 || df == -2):
		// The generator moves the king two files; the codec stores the rook origin.
		short := df > 0
		rookSq, ok := from.Offset(rookOffset(short, from), 0)
		if !ok {
			return move.Move{}, errors.New(errors.KeyMoveArgument, errors.ErrInvalidArgument,
				"castling rook off the board").WithField("move", dm.String())
		}
		return move.New(chess.CastlingType(short), side, rev, chess.NoCaste, chess.NoCaste, base, from, rookSq)
	case base == chess.Pawn && promotion != chess.NoCaste && captured != chess.NoCaste:
		t = chess.CapturePromotion
	case base == chess.Pawn && promotion != chess.NoCaste:
		t = chess.Promotion
	case base == chess.Pawn && (dr == 2 || dr == -2):
		t = chess.DoublePush
	case base == chess.Pawn && df != 0 && captured == chess.NoCaste:
		t = chess.EnPassant
		captured = chess.Pawn
	case captured != chess.NoCaste:
		t = chess.Capture
	default:
		t = chess.Basic
	}
	return move.New(t, side, rev, promotion, captured, base, from, to)
}

// ToDragontooth returns the generator form of m. Castling becomes the two-file king move.
func ToDragontooth(m move.Move) dragontoothmg.Move {
	var dm dragontoothmg.Move
	dm.Setfrom(dragontoothmg.Square(m.From()))
	dm.Setto(dragontoothmg.Square(m.Destination()))
	if p := m.Promotion(); p != chess.NoCaste {
		dm.Setpromote(toGenerator[p])
	}
	return dm
}

func casteAt(bb *dragontoothmg.Bitboards, sq chess.Square) chess.Caste {
	mask := uint64(1) << sq
	switch {
	case bb.All&mask == 0:
		return chess.NoCaste
	case bb.Pawns&mask != 0:
		return chess.Pawn
	case bb.Knights&mask != 0:
		return chess.Knight
	case bb.Bishops&mask != 0:
		return chess.Bishop
	case bb.Rooks&mask != 0:
		return chess.Rook
	case bb.Queens&mask != 0:
		return chess.Queen
	case bb.Kings&mask != 0:
		return chess.King
	}
	return chess.NoCaste
}

// revocation returns the rights a king or rook move removes from side.
func revocation(side chess.Side, base chess.Caste, from chess.Square, rights castle.State) chess.Revocation {
	switch base {
	case chess.King:
		return chess.RevocationFor(rights.HasKingSideRight(side), rights.HasQueenSideRight(side))
	case chess.Rook:
		if from.Rank() != side.BackRank() {
			return chess.RevokeNone
		}
		switch from.File() {
		case 'h':
			return chess.RevocationFor(rights.HasKingSideRight(side), false)
		case 'a':
			return chess.RevocationFor(false, rights.HasQueenSideRight(side))
		}
	}
	return chess.RevokeNone
}

// rookOffset returns the file distance from the king to its castling rook's corner.
func rookOffset(short bool, king chess.Square) int {
	if short {
		return int('h') - int(king.File())
	}
	return int('a') - int(king.File())
}
