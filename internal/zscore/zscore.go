// Package zscore selects records whose complexity is unusual relative to
// the rest of a run, working from a measure table rather than sequences.
package zscore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"kcomplex/internal/output"
)

// DefaultThreshold is the default minimum z-score to keep.
const DefaultThreshold = -1.5

var (
	ErrTooFewScores  = errors.New("zscore: need at least two defined scores")
	ErrZeroDeviation = errors.New("zscore: all scores are identical")
)

// Entry is one row of a measure table.
type Entry struct {
	ID    string
	Score float64
}

// Result is an Entry with its z-score.
type Result struct {
	Entry
	Z float64
}

// Stats describes the score distribution.
type Stats struct {
	N       int
	Skipped int // rows with an undefined score
	Mean    float64
	SD      float64 // sample standard deviation
}

// Parse reads a measure table: tab-separated rows whose first field is the
// record ID and whose last field is the score. Both the four-column measure
// TSV and a bare "id<TAB>score" table are accepted. A header row and
// undefined ("NA") scores are skipped.
func Parse(r io.Reader) ([]Entry, int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var (
		out     []Entry
		skipped int
		lineNo  int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, skipped, fmt.Errorf("line %d: expected id and score separated by a tab", lineNo)
		}
		id := strings.TrimSpace(fields[0])
		raw := strings.TrimSpace(fields[len(fields)-1])
		if lineNo == 1 && raw == "score" {
			continue
		}
		if raw == output.UndefinedScore {
			skipped++
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, skipped, fmt.Errorf("line %d: bad score %q: %w", lineNo, raw, err)
		}
		out = append(out, Entry{ID: id, Score: v})
	}
	if err := sc.Err(); err != nil {
		return nil, skipped, fmt.Errorf("read measure table: %w", err)
	}
	return out, skipped, nil
}

// Describe returns the mean and sample standard deviation of the scores.
func Describe(entries []Entry) (Stats, error) {
	st := Stats{N: len(entries)}
	if st.N < 2 {
		return st, ErrTooFewScores
	}
	sum := 0.0
	for _, e := range entries {
		sum += e.Score
	}
	st.Mean = sum / float64(st.N)
	ss := 0.0
	for _, e := range entries {
		d := e.Score - st.Mean
		ss += d * d
	}
	st.SD = math.Sqrt(ss / float64(st.N-1))
	if st.SD == 0 {
		return st, ErrZeroDeviation
	}
	return st, nil
}

// Select keeps entries whose z-score is strictly greater than threshold,
// or strictly less with invert. Input order is preserved.
func Select(entries []Entry, threshold float64, invert bool) ([]Result, Stats, error) {
	st, err := Describe(entries)
	if err != nil {
		return nil, st, err
	}
	var out []Result
	for _, e := range entries {
		z := (e.Score - st.Mean) / st.SD
		keep := z > threshold
		if invert {
			keep = z < threshold
		}
		if keep {
			out = append(out, Result{Entry: e, Z: z})
		}
	}
	return out, st, nil
}

// WriteIDs prints one ID per line, optionally followed by its z-score.
func WriteIDs(w io.Writer, results []Result, withZ bool) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		var err error
		if withZ {
			_, err = fmt.Fprintf(bw, "%s\t%.4f\n", r.ID, r.Z)
		} else {
			_, err = fmt.Fprintln(bw, r.ID)
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
