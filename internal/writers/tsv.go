package writers

import (
	"fmt"
	"io"

	"kcomplex-core/complexity"
	"kcomplex/internal/output"
)

func init() {
	RegisterMeasure(output.FormatTSV, func(int) MeasureEncoder { return tsvEncoder{} })
}

type tsvEncoder struct{}

func (tsvEncoder) Header(w io.Writer) error {
	_, err := fmt.Fprintln(w, output.TSVHeader)
	return err
}

func (tsvEncoder) Encode(w io.Writer, id string, s complexity.Score) error {
	return output.WriteMeasureTSV(w, id, s)
}
