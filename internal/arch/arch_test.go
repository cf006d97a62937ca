// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func listPackages(t *testing.T, dir string) []pkg {
	t.Helper()
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list in %s: %v", dir, err)
	}
	dec := json.NewDecoder(&out)
	var pkgs []pkg
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		pkgs = append(pkgs, p)
	}
	return pkgs
}

func TestImportBoundaries(t *testing.T) {
	presentation := []string{
		"kcomplex/internal/appcore", "kcomplex/internal/app",
		"kcomplex/internal/cli", "kcomplex/cmd/",
	}
	bans := map[string][]string{
		"kcomplex/internal/writers": append([]string{"kcomplex/internal/seqio", "kcomplex/internal/config"}, presentation...),
		"kcomplex/internal/output":  append([]string{"kcomplex/internal/writers", "kcomplex/internal/seqio"}, presentation...),
		"kcomplex/internal/seqio":   append([]string{"kcomplex/internal/writers", "kcomplex/internal/output"}, presentation...),
		"kcomplex/internal/zscore":  presentation,
		"kcomplex/internal/summary": presentation,
		"kcomplex/internal/config":  presentation,
	}

	var violations []string
	for _, p := range listPackages(t, "../..") {
		if !strings.HasPrefix(p.ImportPath, "kcomplex/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "kcomplex/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}

// The core module is the algorithm only: standard library and itself.
func TestCoreIsSelfContained(t *testing.T) {
	var violations []string
	for _, p := range listPackages(t, "../../core") {
		for _, dep := range p.Imports {
			root := strings.SplitN(dep, "/", 2)[0]
			if strings.HasPrefix(dep, "kcomplex-core/") || (root != "kcomplex" && !strings.Contains(root, ".")) {
				continue
			}
			violations = append(violations, p.ImportPath+" → "+dep)
		}
	}
	if len(violations) > 0 {
		t.Fatalf("core imports outside the standard library:\n  %s", strings.Join(violations, "\n  "))
	}
}
