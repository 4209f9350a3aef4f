package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// SelfPath resolves the setup artifact to remove. An empty path means the
// running executable.
func SelfPath(path string) (string, error) {
	if path != "" {
		return filepath.Abs(path)
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolving executable %s: %w", exe, err)
	}
	return resolved, nil
}

// RemoveSelf deletes the setup artifact. There is no undo.
func RemoveSelf(path string) (string, error) {
	target, err := SelfPath(path)
	if err != nil {
		return "", err
	}

	info, err := os.Lstat(target)
	if err != nil {
		return target, fmt.Errorf("setup artifact %s: %w", target, err)
	}
	if info.IsDir() {
		return target, fmt.Errorf("setup artifact %s is a directory", target)
	}

	if err := os.Remove(target); err != nil {
		return target, fmt.Errorf("removing %s: %w", target, err)
	}
	return target, nil
}
