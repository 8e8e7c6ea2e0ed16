package writers

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Sink creates named output artifacts.
type Sink interface {
	Create(name string) (io.WriteCloser, error)
}

// DirSink writes artifacts under Dir, creating it (and any parents) on demand.
// Absolute names bypass Dir.
type DirSink struct {
	Dir string
}

func (d DirSink) Path(name string) string {
	if filepath.IsAbs(name) || d.Dir == "" {
		return name
	}
	return filepath.Join(d.Dir, name)
}

func (d DirSink) Create(name string) (io.WriteCloser, error) {
	p := d.Path(name)
	if dir := filepath.Dir(p); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(p)
}

// MemSink keeps artifacts in memory.
type MemSink struct {
	mu    sync.Mutex
	files map[string]*bytes.Buffer
}

func NewMemSink() *MemSink { return &MemSink{files: map[string]*bytes.Buffer{}} }

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func (m *MemSink) Create(name string) (io.WriteCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := &bytes.Buffer{}
	m.files[name] = b
	return nopCloser{b}, nil
}

// Get returns the content of name and whether it was written.
func (m *MemSink) Get(name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.files[name]
	if !ok {
		return "", false
	}
	return b.String(), true
}

// Emit creates name on s, runs render against a buffered writer and closes it.
// The first error wins; a failed render still closes the file.
func Emit(s Sink, name string, render func(io.Writer) error) (err error) {
	wc, err := s.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer func() {
		if cerr := wc.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", name, cerr)
		}
	}()

	bw := bufio.NewWriter(wc)
	if err := render(bw); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", name, err)
	}
	return nil
}
