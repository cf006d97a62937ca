package output

// TSVHeader is the canonical header row for measure-mode TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "id\tlength\tdistinct_kmers\tscore"

// UndefinedScore is printed in place of the score of an empty sequence.
const UndefinedScore = "NA"

// Measure-mode output formats.
const (
	FormatTSV   = "tsv"
	FormatJSONL = "jsonl"
)

// Formats lists the accepted --output values.
var Formats = []string{FormatTSV, FormatJSONL}
