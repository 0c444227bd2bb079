package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSource is read when no input file is given.
const DefaultSource = "input.edt"

// GetPathInfo resolves relPath to an absolute path and its parent directory.
func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}
	parentDir = filepath.Dir(fullPath)
	return fullPath, parentDir, nil
}

// ReadSource reads the whole source file in one shot. An empty path means
// DefaultSource.
func ReadSource(path string) (fullPath string, src string, err error) {
	if path == "" {
		path = DefaultSource
	}
	fullPath, _, err = GetPathInfo(path)
	if err != nil {
		return "", "", err
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return fullPath, "", fmt.Errorf("failed to read source file %q: %w", path, err)
	}
	return fullPath, string(data), nil
}
