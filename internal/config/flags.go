package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"kcomplex-core/mode"
	"kcomplex/internal/output"
)

// RegisterFlags wires the run flags onto fs. Defaults live here and nowhere
// else; Load reads them back through viper.
func RegisterFlags(fs *pflag.FlagSet) {
	modes := make([]string, 0, len(mode.Modes))
	for _, m := range mode.Modes {
		modes = append(modes, string(m))
	}

	// Scoring
	fs.IntP(KeyK, "k", mode.DefaultK, "k-mer length used for scoring")
	fs.StringP(KeyMode, "m", string(mode.Measure), "mode: "+strings.Join(modes, " | "))
	fs.Bool(KeyMask, false, "shortcut for --mode mask")
	fs.Bool(KeyFilter, false, "shortcut for --mode filter")
	fs.IntP(KeyWindowSize, "w", 0, "sliding window length in bases (mask mode, must be >= k)")
	fs.Float64P(KeyThreshold, "t", 0, "complexity threshold in [0,1] (required for mask/filter)")
	fs.Bool(KeyInvert, false, "filter mode: keep records below the threshold instead (debugging)")

	// Output
	fs.StringP(KeyOutput, "o", output.FormatTSV, fmt.Sprintf("measure output: %s", strings.Join(output.Formats, " | ")))
	fs.Bool(KeyHeader, false, "print a header row in measure TSV output")
	fs.String(KeySummary, "", "write a YAML run summary to this path")

	// Misc
	fs.String(KeyLogLevel, "info", "log level: "+strings.Join(LogLevels, " | "))
	fs.BoolP(KeyQuiet, "q", false, "only log errors")
	fs.String(KeyConfig, "", "config file (yaml, toml or json)")
	fs.String(KeyEnvFile, "", "dotenv file to export before reading KCOMPLEX_* variables")
}
