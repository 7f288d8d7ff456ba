package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSink saves exports into Dir. Each save goes through a temp file in the
// same directory that is renamed into place, so a failed save leaves nothing
// behind.
type FileSink struct {
	Dir string
}

func NewFileSink(dir string) FileSink {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	return FileSink{Dir: dir}
}

func (s FileSink) Save(name, mimeType string, content []byte) (err error) {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("invalid file name %q", name)
	}
	if strings.ContainsRune(name, '/') || name != filepath.Base(name) {
		return fmt.Errorf("invalid file name %q: contains a path separator", name)
	}
	if mimeType != MimeType {
		return fmt.Errorf("unsupported mime type %q", mimeType)
	}
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpPath, filepath.Join(dir, name)); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Path is where Save puts a file with the given name.
func (s FileSink) Path(name string) string {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name)
}
