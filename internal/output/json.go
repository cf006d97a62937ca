// internal/output/json.go
package output

import (
	"kcomplex-core/complexity"
	"kcomplex/pkg/api"
)

// ToAPIMeasurement converts a score to the stable wire schema (v1).
// An undefined score is encoded as null.
func ToAPIMeasurement(id string, k int, s complexity.Score) api.MeasurementV1 {
	v := api.MeasurementV1{
		ID:            id,
		Length:        s.Length,
		DistinctKmers: s.Distinct,
		K:             k,
	}
	if s.Defined {
		score := s.Value
		v.Score = &score
	}
	return v
}
