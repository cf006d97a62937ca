// core/mode/controller.go
package mode

import (
	"context"
	"errors"
	"fmt"
	"io"

	"kcomplex-core/complexity"
	"kcomplex-core/mask"
)

// Record is one input read. Qual is nil for FASTA input and is never
// interpreted, only passed through.
type Record struct {
	ID     string
	Header string // full header line without the leading '>' or '@'
	Seq    []byte
	Qual   []byte
}

// Source yields records in input order and returns io.EOF when exhausted.
type Source interface {
	Read() (Record, error)
}

// Sink receives the per-record output of a run.
type Sink interface {
	// Measurement is called once per record in measure mode.
	Measurement(rec Record, s complexity.Score) error
	// Record is called for every emitted record in mask and filter mode.
	Record(rec Record) error
}

// Stats summarizes a run.
type Stats struct {
	RecordsIn   int
	RecordsOut  int
	BasesIn     int
	BasesMasked int
}

// Controller applies one validated Config to a stream of records.
type Controller struct {
	cfg Config
}

// New validates cfg and returns a Controller for it.
func New(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{cfg: cfg}, nil
}

// Config returns the controller's configuration.
func (c *Controller) Config() Config { return c.cfg }

// Process scores, masks or filters a single record and hands the result
// to sink. It returns whether anything was emitted and how many bases
// were masked.
func (c *Controller) Process(rec Record, sink Sink) (emitted bool, masked int, err error) {
	switch c.cfg.Mode {
	case Measure:
		s := complexity.Compute(rec.Seq, c.cfg.K)
		return true, 0, sink.Measurement(rec, s)

	case Mask:
		m := mask.Compute(rec.Seq, c.cfg.K, c.cfg.WindowSize, c.cfg.Threshold)
		out := rec
		out.Seq = m.Apply(rec.Seq)
		return true, m.Count(), sink.Record(out)

	case Filter:
		s := complexity.Compute(rec.Seq, c.cfg.K)
		keep := s.Passes(c.cfg.Threshold)
		if c.cfg.Invert {
			keep = s.Low(c.cfg.Threshold)
		}
		if !keep {
			return false, 0, nil
		}
		return true, 0, sink.Record(rec)
	}
	return false, 0, configErr("mode", "unknown mode %q", c.cfg.Mode)
}

// Run drains src one record at a time: read, process, emit, repeat.
// The first read or write error stops the run; ctx is checked between
// records.
func (c *Controller) Run(ctx context.Context, src Source, sink Sink) (Stats, error) {
	var st Stats
	for {
		select {
		case <-ctx.Done():
			return st, ctx.Err()
		default:
		}
		rec, err := src.Read()
		if errors.Is(err, io.EOF) {
			return st, nil
		}
		if err != nil {
			return st, fmt.Errorf("record %d: %w", st.RecordsIn+1, err)
		}
		st.RecordsIn++
		st.BasesIn += len(rec.Seq)

		emitted, masked, err := c.Process(rec, sink)
		if err != nil {
			return st, err
		}
		if emitted {
			st.RecordsOut++
		}
		st.BasesMasked += masked
	}
}
