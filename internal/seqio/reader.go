// internal/seqio/reader.go
package seqio

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"

	"kcomplex-core/mode"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Reader streams FASTA/FASTQ records from one or more files in order.
// Plain and gzip input are detected per file; "-" reads stdin.
type Reader struct {
	paths []string
	idx   int
	cur   *fastx.Reader
	n     int // records read from the current file
}

// Open checks that every non-stdin path exists and returns a Reader over
// them. No paths means stdin. Files are opened lazily, one at a time.
func Open(paths []string) (*Reader, error) {
	if len(paths) == 0 {
		paths = []string{Stdin}
	}
	for _, p := range paths {
		if p == Stdin {
			continue
		}
		fi, err := os.Stat(p)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		if fi.IsDir() {
			return nil, errors.Errorf("open input %s: is a directory", p)
		}
	}
	// Accept every symbol; the scorer treats anything as an ordinary byte.
	seq.ValidateSeq = false
	return &Reader{paths: append([]string(nil), paths...)}, nil
}

// Paths returns the inputs in read order.
func (r *Reader) Paths() []string { return r.paths }

// Read returns the next record, or io.EOF once every input is exhausted.
// FASTQ records always carry a non-nil Qual; FASTA records never do.
func (r *Reader) Read() (mode.Record, error) {
	for {
		if r.cur == nil {
			if r.idx >= len(r.paths) {
				return mode.Record{}, io.EOF
			}
			fr, err := fastx.NewDefaultReader(r.paths[r.idx])
			if err != nil {
				return mode.Record{}, errors.Wrap(err, r.paths[r.idx])
			}
			r.cur, r.n = fr, 0
		}

		rec, err := r.cur.Read()
		if err == io.EOF {
			r.cur.Close()
			r.cur = nil
			r.idx++
			continue
		}
		if err != nil {
			return mode.Record{}, errors.Wrapf(err, "%s: record %d", r.paths[r.idx], r.n+1)
		}
		r.n++
		return convert(rec, r.cur.IsFastq), nil
	}
}

// Close releases the file currently being read, if any.
func (r *Reader) Close() error {
	if r.cur != nil {
		r.cur.Close()
		r.cur = nil
	}
	return nil
}

// convert copies a fastx record; the parser may reuse its buffers.
func convert(rec *fastx.Record, fastq bool) mode.Record {
	out := mode.Record{
		ID:     string(rec.ID),
		Header: string(rec.Name),
		Seq:    append([]byte(nil), rec.Seq.Seq...),
	}
	if fastq {
		out.Qual = append([]byte{}, rec.Seq.Qual...)
	}
	return out
}
