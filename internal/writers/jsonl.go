// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"kcomplex-core/complexity"
	"kcomplex/internal/output"
)

func init() {
	RegisterMeasure(output.FormatJSONL, func(k int) MeasureEncoder { return jsonlEncoder{k: k} })
}

// jsonlEncoder writes each measurement as one JSON line (v1).
type jsonlEncoder struct{ k int }

func (jsonlEncoder) Header(io.Writer) error { return nil }

func (e jsonlEncoder) Encode(w io.Writer, id string, s complexity.Score) error {
	return json.NewEncoder(w).Encode(output.ToAPIMeasurement(id, e.k, s))
}
