package seqio

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"kcomplex-core/mode"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return fn
}

func readAll(t *testing.T, r *Reader) []mode.Record {
	t.Helper()
	defer r.Close()
	var out []mode.Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		out = append(out, rec)
	}
}

func TestRead_FASTAMultiLine(t *testing.T) {
	fn := writeFile(t, "in.fa", ">r1 first read\nACGT\nacgt\n>r2\nNNNN\n")
	r, err := Open([]string{fn})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	recs := readAll(t, r)
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	if recs[0].ID != "r1" || recs[0].Header != "r1 first read" || string(recs[0].Seq) != "ACGTacgt" {
		t.Fatalf("rec0 = %+v", recs[0])
	}
	if recs[0].Qual != nil || recs[1].Qual != nil {
		t.Fatalf("FASTA records must not carry qualities")
	}
}

func TestRead_FASTQ(t *testing.T) {
	fn := writeFile(t, "in.fq", "@q1\nACGTA\n+\nIIIII\n@q2\nGG\n+\n#!\n")
	r, err := Open([]string{fn})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	recs := readAll(t, r)
	if len(recs) != 2 || string(recs[1].Seq) != "GG" || string(recs[1].Qual) != "#!" {
		t.Fatalf("got %+v", recs)
	}
}

func TestRead_GzipAndMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	gz := filepath.Join(dir, "a.fa.gz")
	f, err := os.Create(gz)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	_, _ = zw.Write([]byte(">z1\nAAAA\n"))
	_ = zw.Close()
	_ = f.Close()
	plain := writeFile(t, "b.fa", ">p1\nCCCC\n")

	r, err := Open([]string{gz, plain})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got := r.Paths(); len(got) != 2 || got[0] != gz {
		t.Fatalf("paths %v", got)
	}
	recs := readAll(t, r)
	if len(recs) != 2 || recs[0].ID != "z1" || recs[1].ID != "p1" {
		t.Fatalf("got %+v", recs)
	}
}

func TestRead_Stdin(t *testing.T) {
	pr, pw, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stdin
	os.Stdin = pr
	t.Cleanup(func() { os.Stdin = old })

	go func() {
		_, _ = pw.Write([]byte(">s1\nACGT\n"))
		_ = pw.Close()
	}()

	r, err := Open(nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if p := r.Paths(); len(p) != 1 || p[0] != Stdin {
		t.Fatalf("default paths %v", p)
	}
	recs := readAll(t, r)
	if len(recs) != 1 || recs[0].ID != "s1" {
		t.Fatalf("got %+v", recs)
	}
}

func TestOpen_Errors(t *testing.T) {
	if _, err := Open([]string{filepath.Join(t.TempDir(), "missing.fa")}); err == nil {
		t.Fatalf("missing file must fail")
	}
	if _, err := Open([]string{t.TempDir()}); err == nil {
		t.Fatalf("directory must fail")
	}
}
