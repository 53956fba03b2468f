// Package store persists small numeric values, such as the high score, in a
// JSON file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File is a key/number map kept in one JSON object on disk. A missing file
// reads as empty.
type File struct {
	Path string
}

func NewFile(path string) *File {
	return &File{Path: path}
}

// Get returns the stored value, or 0 when the key or the file is absent.
func (f *File) Get(key string) (float64, error) {
	m, err := f.load()
	if err != nil {
		return 0, err
	}
	return m[key], nil
}

// Set writes value under key, keeping every other key.
func (f *File) Set(key string, value float64) error {
	m, err := f.load()
	if err != nil {
		return err
	}
	m[key] = value
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.Path, err)
	}
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("replace %s: %w", f.Path, err)
	}
	return nil
}

func (f *File) load() (map[string]float64, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]float64{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	m := map[string]float64{}
	if len(data) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.Path, err)
	}
	// A literal null decodes to a nil map.
	if m == nil {
		m = map[string]float64{}
	}
	return m, nil
}
