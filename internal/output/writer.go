package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/movecodec-go/internal/census"
	"github.com/lgbarn/movecodec-go/internal/config"
)

// RecordWriter is the interface for writing results to output.
// Different implementations handle different output formats (text, JSON).
type RecordWriter interface {
	// WriteMove writes a single decoded move.
	WriteMove(rec *MoveRecord) error

	// WriteCastle writes a single castling-state result.
	WriteCastle(rec *CastleRecord) error

	// WriteMoveReport writes a move census.
	WriteMoveReport(r *census.MoveReport) error

	// WriteCastleReport writes the castling-state census.
	WriteCastleReport(r *census.CastleReport) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.
func NewWriter(w io.Writer, cfg *config.Config) RecordWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes one line per record.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteMove writes a move line. Rejected moves are skipped unless ShowRejected is set.
func (tw *TextWriter) WriteMove(rec *MoveRecord) error {
	if !rec.Valid && !tw.cfg.Output.ShowRejected {
		return nil
	}
	_, err := fmt.Fprintln(tw.w, FormatMove(rec))
	return err
}

// WriteCastle writes a castling-state line.
func (tw *TextWriter) WriteCastle(rec *CastleRecord) error {
	if !rec.Valid && !tw.cfg.Output.ShowRejected {
		return nil
	}
	_, err := fmt.Fprintln(tw.w, FormatCastle(rec))
	return err
}

// WriteMoveReport writes a move census.
func (tw *TextWriter) WriteMoveReport(r *census.MoveReport) error {
	WriteMoveReport(tw.w, r)
	return nil
}

// WriteCastleReport writes the castling-state census.
func (tw *TextWriter) WriteCastleReport(r *census.CastleReport) error {
	WriteCastleReport(tw.w, r, int(tw.cfg.Output.MaxLineLength))
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes records in JSON format.
// It buffers records and writes them as one JSON document on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	output JSONOutput
	single bool // If true, write each record immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches records and writes them as one document on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:   w,
		cfg: cfg,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each record immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteMove buffers a move (or writes it immediately in single mode).
func (jw *JSONWriter) WriteMove(rec *MoveRecord) error {
	if !rec.Valid && !jw.cfg.Output.ShowRejected {
		return nil
	}
	if jw.single {
		return jw.encode(rec)
	}
	jw.output.Moves = append(jw.output.Moves, rec)
	return nil
}

// WriteCastle buffers a castling-state record (or writes it immediately in single mode).
func (jw *JSONWriter) WriteCastle(rec *CastleRecord) error {
	if !rec.Valid && !jw.cfg.Output.ShowRejected {
		return nil
	}
	if jw.single {
		return jw.encode(rec)
	}
	jw.output.Castles = append(jw.output.Castles, rec)
	return nil
}

// WriteMoveReport buffers a move census (or writes it immediately in single mode).
func (jw *JSONWriter) WriteMoveReport(r *census.MoveReport) error {
	if jw.single {
		return jw.encode(r)
	}
	jw.output.MoveCensus = r
	return nil
}

// WriteCastleReport buffers the castling-state census (or writes it immediately in single mode).
func (jw *JSONWriter) WriteCastleReport(r *census.CastleReport) error {
	if jw.single {
		return jw.encode(r)
	}
	jw.output.CastleCensus = r
	return nil
}

// Flush writes all buffered records as one JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || jw.empty() {
		return nil
	}

	err := jw.encode(&jw.output)

	// Clear buffer after writing
	jw.output = JSONOutput{}

	return err
}

func (jw *JSONWriter) empty() bool {
	o := &jw.output
	return len(o.Moves) == 0 && len(o.Castles) == 0 && o.MoveCensus == nil && o.CastleCensus == nil
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
