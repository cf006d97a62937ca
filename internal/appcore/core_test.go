package appcore

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kcomplex-core/mode"
	"kcomplex/internal/cmdutil"
	"kcomplex/internal/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestRun_MeasureStats(t *testing.T) {
	fa := writeFile(t, "in.fa", ">a\nACGT\n>b\nAC\n")
	cfg := &config.Config{Output: "tsv", Inputs: []string{fa}}
	mc := mode.Config{Mode: mode.Measure, K: 3}

	var out bytes.Buffer
	st, err := Run(context.Background(), &out, cmdutil.Discard(), cfg, mc)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if st.RecordsIn != 2 || st.RecordsOut != 2 || st.BasesIn != 6 {
		t.Fatalf("stats %+v", st)
	}
	if out.String() != "a\t4\t2\t0.5000\nb\t2\t0\t0.0000\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestRun_LogsShortRecordsAndCompletion(t *testing.T) {
	fa := writeFile(t, "in.fa", ">tiny\nAC\n")
	cfg := &config.Config{Output: "tsv", Inputs: []string{fa}}
	var logBuf bytes.Buffer
	log := cmdutil.NewLogger(&logBuf, -4) // debug

	if _, err := Run(context.Background(), &bytes.Buffer{}, log, cfg, mode.Config{Mode: mode.Measure, K: 4}); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"record shorter than k", "id=tiny", "msg=done", "records_in=1"} {
		if !strings.Contains(logBuf.String(), want) {
			t.Errorf("log lacks %q:\n%s", want, logBuf.String())
		}
	}
}

func TestRun_InvalidModeConfig(t *testing.T) {
	cfg := &config.Config{Output: "tsv"}
	_, err := Run(context.Background(), &bytes.Buffer{}, cmdutil.Discard(), cfg, mode.Config{Mode: mode.Filter, K: 4})
	if err == nil {
		t.Fatalf("filter without threshold must fail")
	}
}

func TestRunZScore(t *testing.T) {
	tbl := writeFile(t, "t.tsv", "a\t0.7\nb\t0.8\nc\t0.1\nd\t0.6\ne\t0.75\nf\t0.7\n")
	var out, logBuf bytes.Buffer
	err := RunZScore(context.Background(), &out, cmdutil.NewLogger(&logBuf, 0), ZScoreOptions{
		Threshold: -1.5, Invert: true, Inputs: []string{tbl},
	})
	if err != nil {
		t.Fatalf("zscore: %v", err)
	}
	if out.String() != "c\n" {
		t.Fatalf("got %q", out.String())
	}
	if !strings.Contains(logBuf.String(), "scores=6") {
		t.Fatalf("distribution not logged:\n%s", logBuf.String())
	}
}

func TestRunZScore_MissingTable(t *testing.T) {
	err := RunZScore(context.Background(), &bytes.Buffer{}, cmdutil.Discard(), ZScoreOptions{
		Inputs: []string{filepath.Join(t.TempDir(), "none.tsv")},
	})
	if err == nil {
		t.Fatalf("missing table must fail")
	}
}
