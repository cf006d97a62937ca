// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"

	"kcomplex-core/complexity"
)

// FormatScore renders a score with four decimals, or UndefinedScore.
func FormatScore(s complexity.Score) string {
	if !s.Defined {
		return UndefinedScore
	}
	return strconv.FormatFloat(s.Value, 'f', 4, 64)
}

// FormatMeasureRowTSV returns the measure columns (no trailing newline).
func FormatMeasureRowTSV(id string, s complexity.Score) string {
	return fmt.Sprintf("%s\t%d\t%d\t%s", id, s.Length, s.Distinct, FormatScore(s))
}

// WriteMeasureTSV prints one measure line.
func WriteMeasureTSV(w io.Writer, id string, s complexity.Score) error {
	_, err := fmt.Fprintln(w, FormatMeasureRowTSV(id, s))
	return err
}
