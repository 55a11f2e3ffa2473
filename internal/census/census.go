// Package census classifies whole ranges of raw move integers and every castling-state
// byte. Each raw move is either decoded into a move type or rejected with the dotted
// key of the invariant it breaks.
package census

import (
	"context"
	"sort"

	"github.com/lgbarn/movecodec-go/internal/castle"
	"github.com/lgbarn/movecodec-go/internal/chess"
	"github.com/lgbarn/movecodec-go/internal/config"
	"github.com/lgbarn/movecodec-go/internal/errors"
	"github.com/lgbarn/movecodec-go/internal/move"
	"github.com/lgbarn/movecodec-go/internal/worker"
)

// MoveReport tallies a range of raw move integers.
type MoveReport struct {
	Start    uint64            `json:"start"`
	End      uint64            `json:"end"`
	Workers  int               `json:"workers,omitempty"`
	Total    uint64            `json:"total"`
	Valid    uint64            `json:"valid"`
	ByType   map[string]uint64 `json:"by_type"`
	Rejected map[string]uint64 `json:"rejected"`
}

func newMoveReport(start, end uint64) *MoveReport {
	return &MoveReport{
		Start:    start,
		End:      end,
		ByType:   make(map[string]uint64),
		Rejected: make(map[string]uint64),
	}
}

// merge adds the counts of o to r.
func (r *MoveReport) merge(o *MoveReport) {
	r.Total += o.Total
	r.Valid += o.Valid
	for k, v := range o.ByType {
		r.ByType[k] += v
	}
	for k, v := range o.Rejected {
		r.Rejected[k] += v
	}
}

// RejectedKeys returns the rejection keys in sorted order.
func (r *MoveReport) RejectedKeys() []string {
	return sortedKeys(r.Rejected)
}

// TypeKeys returns the move-type keys present in the report, in packing order.
func (r *MoveReport) TypeKeys() []string {
	var keys []string
	for _, t := range chess.MoveTypes() {
		if _, ok := r.ByType[t.Key()]; ok {
			keys = append(keys, t.Key())
		}
	}
	return keys
}

// classify decodes every integer of s.
func classify(s worker.Span) *MoveReport {
	r := newMoveReport(s.Lo, s.Hi)
	for raw := s.Lo; raw < s.Hi; raw++ {
		r.Total++
		m, err := move.Decode(uint32(raw))
		if err != nil {
			r.Rejected[keyOf(err)]++
			continue
		}
		r.Valid++
		r.ByType[m.Type().Key()]++
	}
	return r
}

func keyOf(err error) string {
	if key := errors.KeyOf(err); key != "" {
		return key
	}
	return "unknown"
}

// Moves classifies the raw range configured in cfg using a worker pool.
// progress, if not nil, is called once per finished span from the collecting goroutine.
// Cancelling ctx fails the spans not yet classified; the first failed span stops the
// sweep and its error is returned.
func Moves(ctx context.Context, cfg *config.CensusConfig, progress func(done, total int)) (*MoveReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	spans := worker.Split(cfg.Start, cfg.End, cfg.ChunkSize)
	pool := worker.NewPool(cfg.Workers, 2*cfg.Workers, func(item worker.WorkItem) worker.ProcessResult {
		res := worker.ProcessResult{Span: item.Span, Index: item.Index}
		if err := ctx.Err(); err != nil {
			res.Error = err
			return res
		}
		res.Tally = classify(item.Span)
		return res
	})
	pool.Start()

	go func() {
		for i, s := range spans {
			if !pool.Submit(worker.WorkItem{Span: s, Index: i}) {
				break
			}
		}
		pool.Close()
	}()

	report := newMoveReport(cfg.Start, cfg.End)
	report.Workers = pool.NumWorkers()
	var failed *worker.ProcessResult
	done := 0
	for res := range pool.Results() {
		if res.Error != nil && failed == nil {
			res := res
			failed = &res
			pool.Stop()
		}
		if failed != nil {
			continue
		}
		report.merge(res.Tally.(*MoveReport))
		done++
		if progress != nil {
			progress(done, len(spans))
		}
	}
	if failed != nil {
		return nil, errors.Wrapf(failed.Error, "census span [%#x, %#x)", failed.Span.Lo, failed.Span.Hi)
	}
	return report, nil
}

// CastleReport classifies every castling-state byte. Bytes are held as ints so they
// render as numbers rather than base64 in JSON.
type CastleReport struct {
	Valid    []int            `json:"valid"`
	Rejected map[string][]int `json:"rejected"`
}

// RejectedCauses returns the rejection causes in sorted order.
func (r *CastleReport) RejectedCauses() []string {
	keys := make([]string, 0, len(r.Rejected))
	for k := range r.Rejected {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CastleStates validates all 256 castling-state bytes and groups the rejected ones
// by cause.
func CastleStates() *CastleReport {
	r := &CastleReport{Rejected: make(map[string][]int)}
	for i := 0; i < 256; i++ {
		if _, err := castle.StateFor(byte(i)); err != nil {
			cause := err.Error()
			var ce *errors.CodecError
			if errors.As(err, &ce) {
				cause = ce.Cause
			}
			r.Rejected[cause] = append(r.Rejected[cause], i)
			continue
		}
		r.Valid = append(r.Valid, i)
	}
	return r
}

func sortedKeys(m map[string]uint64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
