// Package output renders decoded moves, castling states and census reports as text
// or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/movecodec-go/internal/census"
)

// printer formats counts with digit grouping, e.g. 96,768.
var printer = message.NewPrinter(language.English)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// Indent starts a new line with the given prefix.
func (o *OutputWriter) Indent(prefix string) {
	if o.lineLength > 0 {
		fmt.Fprintln(o.w)
	}
	fmt.Fprint(o.w, prefix)
	o.lineLength = len(prefix)
	o.needsSpace = false
}

// NewLine ends the current line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// FormatMove renders a move record on one line.
func FormatMove(rec *MoveRecord) string {
	var sb strings.Builder
	sb.WriteString(rec.Input)
	if !rec.Valid {
		fmt.Fprintf(&sb, " rejected %s: %s", rec.Key, rec.Error)
	} else {
		fmt.Fprintf(&sb, " %s %s %s %s", rec.UCI, rec.Type, rec.Side, rec.Piece)
		if rec.Captured != "" {
			fmt.Fprintf(&sb, " x%s@%s", rec.Captured, rec.CaptureAt)
		}
		if rec.Promotion != "" {
			fmt.Fprintf(&sb, " =%s", rec.Promotion)
		}
		if rec.KingTo != "" {
			fmt.Fprintf(&sb, " king->%s rook->%s", rec.KingTo, rec.RookTo)
		}
		if rec.Revocation != "" {
			fmt.Fprintf(&sb, " revokes %s", rec.Revocation)
		}
	}
	if f := rec.Fields; f != nil {
		fmt.Fprintf(&sb, " [type=%d side=%d rev=%d promo=%d capture=%d base=%d from=%d to=%d",
			f.Type, f.Side, f.Revocation, f.Promotion, f.Capture, f.Base, f.From, f.To)
		if f.Reserved != 0 {
			fmt.Fprintf(&sb, " reserved=%#x", f.Reserved)
		}
		sb.WriteString("]")
	}
	return sb.String()
}

// FormatCastle renders a castle record on one line.
func FormatCastle(rec *CastleRecord) string {
	if !rec.Valid {
		return fmt.Sprintf("%s rejected %s: %s", rec.Input, rec.Key, rec.Error)
	}
	return fmt.Sprintf("%s %s", rec.Input, rec.State)
}

// WriteMoveReport renders a move census as text.
func WriteMoveReport(w io.Writer, r *census.MoveReport) {
	span := fmt.Sprintf("[%#x, %#x)", r.Start, r.End)
	printer.Fprintf(w, "raw moves %s: %d total, %d valid, %d rejected\n",
		span, r.Total, r.Valid, r.Total-r.Valid)
	if keys := r.TypeKeys(); len(keys) > 0 {
		fmt.Fprintln(w, "valid by type:")
		for _, k := range keys {
			printer.Fprintf(w, "  %-20s %15d\n", k, r.ByType[k])
		}
	}
	if keys := r.RejectedKeys(); len(keys) > 0 {
		fmt.Fprintln(w, "rejected by key:")
		for _, k := range keys {
			printer.Fprintf(w, "  %-20s %15d\n", k, r.Rejected[k])
		}
	}
}

// WriteCastleReport renders the castling-state census as text, listing the bytes of
// each group wrapped at maxLineLength.
func WriteCastleReport(w io.Writer, r *census.CastleReport, maxLineLength int) {
	fmt.Fprintf(w, "castle states: %d valid, %d rejected\n", len(r.Valid), 256-len(r.Valid))

	ow := NewOutputWriter(w, maxLineLength)
	ow.Indent("valid:")
	for _, b := range r.Valid {
		ow.Write(fmt.Sprintf("%#02x", b))
	}
	ow.NewLine()

	for _, cause := range r.RejectedCauses() {
		bytes := r.Rejected[cause]
		ow.Indent(fmt.Sprintf("%s (%d):", cause, len(bytes)))
		for _, b := range bytes {
			ow.Write(fmt.Sprintf("%#02x", b))
		}
		ow.NewLine()
	}
}
