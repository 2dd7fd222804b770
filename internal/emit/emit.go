// Package emit writes the rendered header/source pair to disk as one
// transactional unit: either both files end up on disk or neither does.
package emit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrTargetExists is returned when either output file is already
// present. Existing files are never overwritten.
var ErrTargetExists = errors.New("file already exists")

// WritePair writes the header first, then the source. Parent
// directories are created if absent. If anything fails after the header
// was written, the header is removed again so no half-generated class
// is left behind.
func WritePair(headerPath, sourcePath, header, source string) error {
	if exists(headerPath) {
		return fmt.Errorf("%w: %s", ErrTargetExists, headerPath)
	}
	if exists(sourcePath) {
		return fmt.Errorf("%w: %s", ErrTargetExists, sourcePath)
	}

	if err := os.MkdirAll(filepath.Dir(headerPath), os.ModePerm); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(headerPath), err)
	}
	if err := os.WriteFile(headerPath, []byte(header), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", headerPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(sourcePath), os.ModePerm); err != nil {
		rollback(headerPath)
		return fmt.Errorf("creating %s: %w", filepath.Dir(sourcePath), err)
	}
	if err := os.WriteFile(sourcePath, []byte(source), 0o644); err != nil {
		rollback(headerPath)
		return fmt.Errorf("writing %s: %w", sourcePath, err)
	}
	return nil
}

func rollback(path string) {
	// Best effort; the write error is the one worth reporting.
	_ = os.Remove(path)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
