// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"kcomplex-core/complexity"
)

// MeasureEncoder writes measure-mode rows in one format.
type MeasureEncoder interface {
	// Header writes the optional header row; formats without one write nothing.
	Header(w io.Writer) error
	Encode(w io.Writer, id string, s complexity.Score) error
}

// Measure encoder registry (format → constructor). Register in init() blocks
// from the per-format files.
var measureEncoders = map[string]func(k int) MeasureEncoder{}

// RegisterMeasure adds or replaces (last wins) the encoder for format.
func RegisterMeasure(format string, fn func(k int) MeasureEncoder) { measureEncoders[format] = fn }

// NewMeasureEncoder returns the registered encoder for format.
func NewMeasureEncoder(format string, k int) (MeasureEncoder, error) {
	fn, ok := measureEncoders[format]
	if !ok {
		return nil, fmt.Errorf("unknown measure format %q (no writer registered)", format)
	}
	return fn(k), nil
}

// MeasureFormats lists registered formats, sorted.
func MeasureFormats() []string {
	out := make([]string, 0, len(measureEncoders))
	for f := range measureEncoders {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
