package appcore

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"kcomplex/internal/seqio"
	"kcomplex/internal/zscore"
)

// ZScoreOptions configures RunZScore.
type ZScoreOptions struct {
	Threshold float64
	Invert    bool
	PrintZ    bool
	Inputs    []string // measure tables; empty or "-" means stdin
}

// RunZScore reads every measure table, pools the defined scores and writes
// the IDs selected by their z-score.
func RunZScore(ctx context.Context, stdout io.Writer, log *slog.Logger, o ZScoreOptions) error {
	inputs := o.Inputs
	if len(inputs) == 0 {
		inputs = []string{seqio.Stdin}
	}

	var (
		entries []zscore.Entry
		skipped int
	)
	for _, path := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		es, sk, err := parseTable(path)
		if err != nil {
			return err
		}
		entries = append(entries, es...)
		skipped += sk
	}

	res, st, err := zscore.Select(entries, o.Threshold, o.Invert)
	if err != nil {
		return err
	}
	log.Info("score distribution",
		"scores", st.N, "undefined", skipped,
		"mean", st.Mean, "sd", st.SD, "selected", len(res))
	return zscore.WriteIDs(stdout, res, o.PrintZ)
}

func parseTable(path string) ([]zscore.Entry, int, error) {
	if path == seqio.Stdin {
		es, sk, err := zscore.Parse(os.Stdin)
		return es, sk, errors.Wrap(err, "stdin")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrap(err, "open measure table")
	}
	defer f.Close()
	es, sk, err := zscore.Parse(f)
	return es, sk, errors.Wrap(err, path)
}
