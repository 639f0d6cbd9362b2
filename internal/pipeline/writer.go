package pipeline

import (
	"os"
	"path/filepath"
)

// TreeWriter writes output artifacts. Implementations create parent
// directories as needed.
type TreeWriter interface {
	WriteFile(path string, content []byte) error
}

// FSWriter writes to the local filesystem.
type FSWriter struct{}

func (FSWriter) WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, content, 0644)
}
