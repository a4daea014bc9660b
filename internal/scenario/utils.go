package scenario

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// GenerateDocumentPath creates a timestamped document filename inside dir
func GenerateDocumentPath(dir string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("timeline_%s.yaml", timestamp))
}

// FindLatestDocument finds the most recent document file in dir. Entries
// that vanish while scanning are skipped.
func FindLatestDocument(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read documents directory: %w", err)
	}
	return latestDocument(dir, entries)
}

func latestDocument(dir string, entries []fs.DirEntry) (string, error) {
	var latestFile string
	var latestTime time.Time

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !(strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if latestFile == "" || info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, name)
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no document files found in %s", dir)
	}

	return latestFile, nil
}
