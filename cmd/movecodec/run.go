package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/lgbarn/movecodec-go/internal/bridge"
	"github.com/lgbarn/movecodec-go/internal/castle"
	"github.com/lgbarn/movecodec-go/internal/census"
	"github.com/lgbarn/movecodec-go/internal/config"
	"github.com/lgbarn/movecodec-go/internal/move"
	"github.com/lgbarn/movecodec-go/internal/output"
)

type mode int

const (
	modeDecode mode = iota
	modeCastle
	modeCensus
	modeCensusCastle
	modeFEN
)

// tally counts the inputs of the decode and castle modes.
type tally struct {
	inputs int
	valid  int
}

// run executes mode m, writing every record to w. Only the decode and castle modes
// take values, from args or else from stdin; the other modes never read stdin.
func run(ctx context.Context, m mode, w output.RecordWriter, cfg *config.Config, stdin io.Reader, args []string) (tally, error) {
	switch m {
	case modeCastle:
		return decodeCastles(w, inputTokens(stdin, args))
	case modeCensus:
		return tally{}, runCensus(ctx, w, cfg)
	case modeCensusCastle:
		return tally{}, w.WriteCastleReport(census.CastleStates())
	case modeFEN:
		return listMoves(w, cfg, *fenInput)
	default:
		return decodeMoves(w, cfg, inputTokens(stdin, args))
	}
}

// parseRaw parses a raw move integer. Base prefixes 0x, 0o and 0b are accepted.
func parseRaw(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("raw move %q: %w", s, err)
	}
	return uint32(v), nil
}

// parseCastleByte parses a castling-state byte.
func parseCastleByte(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("castle byte %q: %w", s, err)
	}
	return byte(v), nil
}

func decodeMoves(w output.RecordWriter, cfg *config.Config, tokens []string) (tally, error) {
	var t tally
	for _, tok := range tokens {
		raw, err := parseRaw(tok)
		if err != nil {
			return t, err
		}
		t.inputs++
		m, err := move.Decode(raw)
		if err == nil {
			t.valid++
		}
		if err := w.WriteMove(output.MoveToRecord(raw, m, err, cfg.Output.ShowFields)); err != nil {
			return t, err
		}
	}
	return t, nil
}

func decodeCastles(w output.RecordWriter, tokens []string) (tally, error) {
	var t tally
	for _, tok := range tokens {
		b, err := parseCastleByte(tok)
		if err != nil {
			return t, err
		}
		t.inputs++
		s, err := castle.StateFor(b)
		if err == nil {
			t.valid++
		}
		if err := w.WriteCastle(output.CastleToRecord(b, s, err)); err != nil {
			return t, err
		}
	}
	return t, nil
}

func runCensus(ctx context.Context, w output.RecordWriter, cfg *config.Config) error {
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "Classifying %d raw integers with %d workers\n", cfg.Census.Len(), cfg.Census.Workers)
	}

	var progress func(done, total int)
	if cfg.Verbosity > 1 {
		progress = func(done, total int) {
			fmt.Fprintf(cfg.LogFile, "  %d/%d spans\n", done, total)
		}
	}

	report, err := census.Moves(ctx, &cfg.Census, progress)
	if err != nil {
		return err
	}
	return w.WriteMoveReport(report)
}

func listMoves(w output.RecordWriter, cfg *config.Config, fen string) (tally, error) {
	pos, err := bridge.ParsePosition(fen)
	if err != nil {
		return tally{}, err
	}
	moves, err := pos.LegalMoves()
	if err != nil {
		return tally{}, err
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d legal move(s) for %s, rights %s\n", len(moves), pos.SideToMove(), pos.Rights.FEN())
	}
	for _, m := range moves {
		if err := w.WriteMove(output.MoveToRecord(uint32(m.Hash()), m, nil, cfg.Output.ShowFields)); err != nil {
			return tally{}, err
		}
	}
	return tally{inputs: len(moves), valid: len(moves)}, nil
}
