// Package summary writes the optional YAML report of a run.
package summary

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"kcomplex-core/mode"
)

// Summary is the run report written by --summary.
type Summary struct {
	Mode           string   `yaml:"mode"`
	K              int      `yaml:"k"`
	WindowSize     int      `yaml:"window_size,omitempty"`
	Threshold      *float64 `yaml:"threshold,omitempty"`
	Invert         bool     `yaml:"invert,omitempty"`
	Inputs         []string `yaml:"inputs"`
	RecordsIn      int      `yaml:"records_in"`
	RecordsOut     int      `yaml:"records_out"`
	BasesIn        int      `yaml:"bases_in"`
	BasesMasked    int      `yaml:"bases_masked"`
	MaskedFraction float64  `yaml:"masked_fraction"`
	Elapsed        string   `yaml:"elapsed"`
}

// New builds a Summary from the run configuration and its counters.
func New(cfg mode.Config, inputs []string, st mode.Stats, elapsed time.Duration) Summary {
	s := Summary{
		Mode:        string(cfg.Mode),
		K:           cfg.K,
		Inputs:      append([]string(nil), inputs...),
		RecordsIn:   st.RecordsIn,
		RecordsOut:  st.RecordsOut,
		BasesIn:     st.BasesIn,
		BasesMasked: st.BasesMasked,
		Elapsed:     elapsed.Round(time.Millisecond).String(),
	}
	if cfg.Mode == mode.Mask {
		s.WindowSize = cfg.WindowSize
	}
	if cfg.Mode != mode.Measure {
		t := cfg.Threshold
		s.Threshold = &t
	}
	if cfg.Mode == mode.Filter {
		s.Invert = cfg.Invert
	}
	if st.BasesIn > 0 {
		s.MaskedFraction = float64(st.BasesMasked) / float64(st.BasesIn)
	}
	return s
}

// Encode writes s as a YAML document.
func (s Summary) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	return enc.Close()
}

// WriteFile writes s to path, replacing any existing file.
func (s Summary) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if err := s.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
