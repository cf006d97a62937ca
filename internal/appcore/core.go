// internal/appcore/core.go
package appcore

import (
	"context"
	"io"
	"log/slog"
	"time"

	"kcomplex-core/mode"
	"kcomplex/internal/config"
	"kcomplex/internal/seqio"
	"kcomplex/internal/summary"
	"kcomplex/internal/writers"
)

// Run streams every input through one mode and writes the results to
// stdout. All configuration is validated before the first record is read.
func Run(ctx context.Context, stdout io.Writer, log *slog.Logger, cfg *config.Config, mc mode.Config) (mode.Stats, error) {
	start := time.Now()

	ctl, err := mode.New(mc)
	if err != nil {
		return mode.Stats{}, err
	}
	sink, err := writers.NewSink(stdout, cfg.Output, mc.K)
	if err != nil {
		return mode.Stats{}, err
	}
	src, err := seqio.Open(cfg.Inputs)
	if err != nil {
		return mode.Stats{}, err
	}
	defer src.Close()

	log.Debug("starting run",
		"mode", mc.Mode, "k", mc.K, "window_size", mc.WindowSize,
		"threshold", mc.Threshold, "invert", mc.Invert,
		"output", cfg.Output, "inputs", src.Paths())

	if mc.Mode == mode.Measure && cfg.Header {
		if err := sink.WriteHeader(); err != nil {
			return mode.Stats{}, err
		}
	}

	st, runErr := ctl.Run(ctx, &shortSource{src: src, k: mc.K, log: log}, sink)
	if ferr := sink.Flush(); runErr == nil {
		runErr = ferr
	}
	if runErr != nil {
		return st, runErr
	}

	elapsed := time.Since(start)
	if cfg.Summary != "" {
		if err := summary.New(mc, src.Paths(), st, elapsed).WriteFile(cfg.Summary); err != nil {
			return st, err
		}
	}
	log.Info("done",
		"mode", mc.Mode, "records_in", st.RecordsIn, "records_out", st.RecordsOut,
		"bases_in", st.BasesIn, "bases_masked", st.BasesMasked,
		"elapsed", elapsed.Round(time.Millisecond))
	return st, nil
}

// shortSource notes records too short to hold a single k-mer. They still
// flow through unchanged; their score is 0 (or undefined when empty).
type shortSource struct {
	src mode.Source
	k   int
	log *slog.Logger
	n   int
}

func (s *shortSource) Read() (mode.Record, error) {
	rec, err := s.src.Read()
	if err != nil {
		return rec, err
	}
	s.n++
	if len(rec.Seq) < s.k {
		s.log.Debug("record shorter than k", "record", s.n, "id", rec.ID, "length", len(rec.Seq), "k", s.k)
	}
	return rec, nil
}

var _ mode.Source = (*shortSource)(nil)

