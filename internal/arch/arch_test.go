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

// within reports whether path is pkg itself or one of its subpackages.
func within(path, pkg string) bool {
	return path == pkg || strings.HasPrefix(path, strings.TrimSuffix(pkg, "/")+"/")
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	front := []string{
		"kinvec/internal/appcore", "kinvec/internal/app", "kinvec/internal/mapapp",
		"kinvec/internal/formatapp", "kinvec/internal/appshell",
		"kinvec/internal/cli", "kinvec/internal/clibase", "kinvec/cmd/",
	}
	bans := map[string][]string{
		"kinvec/internal/common":  append([]string{"kinvec/internal/table", "kinvec/internal/family", "kinvec/internal/dataset"}, front...),
		"kinvec/internal/table":   append([]string{"kinvec/internal/family", "kinvec/internal/dataset", "kinvec/internal/config"}, front...),
		"kinvec/internal/onehot":  append([]string{"kinvec/internal/table", "kinvec/internal/family", "kinvec/internal/dataset", "kinvec/internal/config"}, front...),
		"kinvec/internal/kinase":  append([]string{"kinvec/internal/family", "kinvec/internal/dataset", "kinvec/internal/config"}, front...),
		"kinvec/internal/family":  append([]string{"kinvec/internal/dataset", "kinvec/internal/config"}, front...),
		"kinvec/internal/dataset": append([]string{"kinvec/internal/family", "kinvec/internal/config"}, front...),
		"kinvec/internal/writers": append([]string{"kinvec/internal/family", "kinvec/internal/dataset", "kinvec/internal/config"}, front...),
		"kinvec/internal/mtrand":  append([]string{"kinvec/internal/dataset", "kinvec/internal/config"}, front...),
		"kinvec/internal/config":  front,
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "kinvec/") {
			continue
		}
		imp := p.ImportPath
		for owner, forbidden := range bans {
			if !within(imp, owner) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "kinvec/") {
					continue
				}
				for _, ban := range forbidden {
					if within(dep, ban) {
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
