package manifest

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes document to outputDir/name through a temporary file that
// is renamed into place. An empty name means ManifestFile.
// It returns the absolute path of the written file.
func WriteFile(outputDir, name, document string) (string, error) {
	if name == "" {
		name = ManifestFile
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(outputDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.WriteString(document); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close manifest: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return "", fmt.Errorf("failed to set manifest permissions: %w", err)
	}
	if err := os.Rename(tmpPath, absPath); err != nil {
		return "", fmt.Errorf("failed to move manifest into place: %w", err)
	}
	return absPath, nil
}
