package output

import (
	"fmt"
	"io"

	"kcomplex-core/mode"
)

// WriteRecord writes rec in the format it was read in: FASTQ when it has a
// quality string, FASTA otherwise. Sequences are written on one line.
func WriteRecord(w io.Writer, rec mode.Record) error {
	if rec.Qual != nil {
		return WriteFASTQ(w, rec)
	}
	return WriteFASTA(w, rec)
}

// WriteFASTA writes a single FASTA record.
func WriteFASTA(w io.Writer, rec mode.Record) error {
	_, err := fmt.Fprintf(w, ">%s\n%s\n", header(rec), rec.Seq)
	return err
}

// WriteFASTQ writes a single four-line FASTQ record.
func WriteFASTQ(w io.Writer, rec mode.Record) error {
	if len(rec.Qual) != len(rec.Seq) {
		return fmt.Errorf("record %s: quality length %d != sequence length %d", rec.ID, len(rec.Qual), len(rec.Seq))
	}
	_, err := fmt.Fprintf(w, "@%s\n%s\n+\n%s\n", header(rec), rec.Seq, rec.Qual)
	return err
}

func header(rec mode.Record) string {
	if rec.Header != "" {
		return rec.Header
	}
	return rec.ID
}

