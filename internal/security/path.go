// Package security guards the filesystem paths the CLI writes to.
package security

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SanitizePath cleans path and rejects it if it escapes the current
// working directory, guarding against directory-traversal output paths
// (e.g. "-o ../../etc/passwd") while still allowing relative subdirectories
// such as "results/pi.txt".
func SanitizePath(path string) (string, error) {
	cleaned := filepath.Clean(path)
	if strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("path escapes the working directory: %s", path)
	}

	abs, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return cleaned, nil
	}

	rel, err := filepath.Rel(cwd, abs)
	if err != nil {
		if !strings.HasPrefix(abs, cwd) {
			return "", fmt.Errorf("path escapes the working directory: %s", path)
		}
		return cleaned, nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes the working directory: %s", path)
	}

	return cleaned, nil
}
