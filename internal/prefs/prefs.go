// Package prefs stores small string preferences, the desktop counterpart
// of a browser's local storage.
package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/iburimskiy/senk-showcase/internal/config"
)

var ErrNotFound = errors.New("preference not found")

type Store interface {
	Load(key string) (string, error)
	Save(key, value string) error
}

// File keeps all preferences in one flat TOML table.
type File struct {
	Path string
	mu   sync.Mutex
}

func NewFile(path string) *File { return &File{Path: path} }

// DefaultPath is prefs.toml inside the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, config.AppDir, config.PrefsFile), nil
}

// Open returns the file store at DefaultPath, or an in-memory store when
// no config directory is available.
func Open() Store {
	path, err := DefaultPath()
	if err != nil {
		return NewMemory()
	}
	return NewFile(path)
}

func (f *File) read() (map[string]string, error) {
	values := map[string]string{}
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	if _, err := toml.Decode(string(data), &values); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.Path, err)
	}
	return values, nil
}

func (f *File) Load(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return "", err
	}
	v, ok := values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return v, nil
}

// Save rewrites the whole file with key set to value.
func (f *File) Save(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		// an unreadable file is replaced rather than blocking every save
		values = map[string]string{}
	}
	values[key] = value

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(values); err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("replace %s: %w", f.Path, err)
	}
	return nil
}

type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemory() *Memory { return &Memory{values: map[string]string{}} }

func (m *Memory) Load(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return v, nil
}

func (m *Memory) Save(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
