// pkg/api/measurement_v1.go
package api

// MeasurementV1 is the stable JSON/JSONL schema for measure mode.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MeasurementV1 struct {
	ID            string   `json:"id"`
	Length        int      `json:"length"`
	DistinctKmers int      `json:"distinct_kmers"`
	K             int      `json:"k"`
	Score         *float64 `json:"score"` // null for zero-length sequences
}
