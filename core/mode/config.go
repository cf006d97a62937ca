// core/mode/config.go
package mode

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects what happens to each record.
type Mode string

const (
	Measure Mode = "measure"
	Mask    Mode = "mask"
	Filter  Mode = "filter"
)

// DefaultK is the k-mer length used when none is configured.
const DefaultK = 4

// Modes lists every valid mode in display order.
var Modes = []Mode{Measure, Mask, Filter}

// ConfigError reports an invalid or conflicting configuration. It is raised
// before any record is read.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return "invalid configuration: " + e.Msg
	}
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Msg)
}

func configErr(field, format string, a ...any) error {
	return &ConfigError{Field: field, Msg: fmt.Sprintf(format, a...)}
}

// Config is the immutable per-run configuration. Build it once at startup,
// call Validate, and pass it by value.
type Config struct {
	Mode       Mode
	K          int
	WindowSize int // mask only
	Threshold  float64

	// ThresholdSet distinguishes an explicit 0 from "not given".
	ThresholdSet bool

	// Invert keeps records below the threshold instead (filter only).
	Invert bool
}

// ParseMode maps a mode name (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, ok := range Modes {
		if m == ok {
			return m, nil
		}
	}
	return "", configErr("mode", "unknown mode %q (want measure | mask | filter)", s)
}

// Resolve combines a --mode value with the --mask/--filter shortcuts.
// Requesting both mask and filter, in any combination, is an error.
// An empty name means "not given" and defaults to Measure.
func Resolve(name string, mask, filter bool) (Mode, error) {
	if mask && filter {
		return "", configErr("mode", "mask and filter cannot both be requested")
	}
	var named Mode
	if strings.TrimSpace(name) != "" {
		m, err := ParseMode(name)
		if err != nil {
			return "", err
		}
		named = m
	}
	switch {
	case mask && named == Filter, filter && named == Mask:
		return "", configErr("mode", "mask and filter cannot both be requested")
	case mask:
		return Mask, nil
	case filter:
		return Filter, nil
	case named != "":
		return named, nil
	}
	return Measure, nil
}

// Validate checks the configuration for the selected mode.
func (c Config) Validate() error {
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if c.K < 1 {
		return configErr("k", "must be >= 1, got %d", c.K)
	}
	if c.ThresholdSet && (c.Threshold < 0 || c.Threshold > 1 || math.IsNaN(c.Threshold)) {
		return configErr("threshold", "must be within [0,1], got %v", c.Threshold)
	}
	switch c.Mode {
	case Mask:
		if c.WindowSize < c.K {
			return configErr("window-size", "must be >= k (%d), got %d", c.K, c.WindowSize)
		}
		if !c.ThresholdSet {
			return configErr("threshold", "required for mask mode")
		}
	case Filter:
		if !c.ThresholdSet {
			return configErr("threshold", "required for filter mode")
		}
	}
	if c.Invert && c.Mode != Filter {
		return configErr("invert", "only valid in filter mode")
	}
	return nil
}
