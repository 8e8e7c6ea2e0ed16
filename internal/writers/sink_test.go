package writers

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteLinesNoTrailingNewline(t *testing.T) {
	m := NewMemSink()
	if err := Emit(m, "fams.csv", func(w io.Writer) error {
		return WriteLines(w, []string{"TK", "AGC", "CMGC"})
	}); err != nil {
		t.Fatal(err)
	}
	got, ok := m.Get("fams.csv")
	if !ok || got != "TK\nAGC\nCMGC" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteLinesEmpty(t *testing.T) {
	m := NewMemSink()
	_ = Emit(m, "empty.csv", func(w io.Writer) error { return WriteLines(w, nil) })
	if got, ok := m.Get("empty.csv"); !ok || got != "" {
		t.Fatalf("want empty artifact, got %q ok=%v", got, ok)
	}
}

func TestDirSinkCreatesParents(t *testing.T) {
	root := t.TempDir()
	s := DirSink{Dir: filepath.Join(root, "data", "nested")}
	if err := Emit(s, "x.csv", func(w io.Writer) error {
		_, err := io.WriteString(w, "hello")
		return err
	}); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(root, "data", "nested", "x.csv"))
	if err != nil || string(b) != "hello" {
		t.Fatalf("read back %q %v", b, err)
	}
	abs := filepath.Join(root, "abs.csv")
	if s.Path(abs) != abs {
		t.Fatalf("absolute names must bypass Dir")
	}
}

func TestEmitReportsRenderError(t *testing.T) {
	boom := errors.New("boom")
	m := NewMemSink()
	err := Emit(m, "bad", func(io.Writer) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
	if _, ok := m.Get("bad"); !ok {
		t.Fatalf("failed render must still create the artifact")
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(io.ErrClosedPipe) || IsBrokenPipe(nil) || IsBrokenPipe(io.EOF) {
		t.Fatalf("IsBrokenPipe classification wrong")
	}
}
