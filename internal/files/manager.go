package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	// DefaultInput is the diary file name looked up under the base path.
	DefaultInput = "calories.txt"
	// DefaultOutput is the CSV written next to it.
	DefaultOutput = "calories.csv"
)

// Manager centralizes where the diary is read from and where exports land.
type Manager struct {
	basePath string
	input    string
	output   string
}

// NewManager constructs a Manager rooted at basePath. If basePath is empty it
// falls back to ResolveBasePath. Empty input or output names use the defaults;
// relative names are resolved against the base path.
func NewManager(basePath, input, output string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}

	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	m := &Manager{basePath: abs}
	if input == "" {
		input = DefaultInput
	}
	if output == "" {
		output = DefaultOutput
	}
	m.input = m.Resolve(input)
	m.output = m.Resolve(output)
	return m, nil
}

// BasePath returns the directory relative paths are resolved against.
func (m *Manager) BasePath() string {
	return m.basePath
}

// InputPath returns the absolute path of the diary file.
func (m *Manager) InputPath() string {
	return m.input
}

// OutputPath returns the absolute path of the CSV export.
func (m *Manager) OutputPath() string {
	return m.output
}

// Resolve makes path absolute relative to the base path.
func (m *Manager) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.basePath, path)
}

// ReadInput returns the whole diary as one string.
func (m *Manager) ReadInput() (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}
	data, err := os.ReadFile(m.input)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// EnsureDir creates the parent directories of path.
func (m *Manager) EnsureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	return nil
}

// WriteFile writes data to path, creating parent directories first.
func (m *Manager) WriteFile(path string, data []byte) error {
	if err := m.EnsureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
