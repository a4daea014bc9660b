package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ivlev/keytween/internal/config"
	"github.com/ivlev/keytween/internal/engine"
	"github.com/ivlev/keytween/internal/scenario"
	"github.com/ivlev/keytween/internal/store"
	"github.com/ivlev/keytween/internal/timeline"
)

// resolveDocument returns the configured document, or the newest one in the
// documents directory.
func resolveDocument(c *config.Config) (string, error) {
	if c.DocumentPath != "" {
		return c.DocumentPath, nil
	}

	latest, err := scenario.FindLatestDocument(c.DocumentsDir)
	if err != nil {
		return "", fmt.Errorf("%w. Run `keytween init` or pass --document", err)
	}
	fmt.Printf("[*] Выбран документ: %s\n", latest)
	return latest, nil
}

// loadTimeline reads, validates and builds the document at path.
func loadTimeline(path string) (*timeline.Timeline, *scenario.Document, error) {
	doc, err := scenario.ReadDocument(path)
	if err != nil {
		return nil, nil, err
	}

	tl, err := scenario.Build(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return tl, doc, nil
}

func isDatabase(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// defaultOutputPath names a timestamped YAML file under output/.
func defaultOutputPath() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join("output", fmt.Sprintf("tracks_%s.yaml", timestamp))
}

// writeTracks stores tracks in a SQLite database or a YAML/JSON file,
// depending on the extension of path.
func writeTracks(ctx context.Context, path string, tracks []engine.Track) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if !isDatabase(path) {
		return engine.WriteTracks(path, tracks)
	}

	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.SaveTracks(ctx, tracks)
}

// readTracks is the inverse of writeTracks.
func readTracks(ctx context.Context, path string) ([]engine.Track, error) {
	if !isDatabase(path) {
		return engine.ReadTracks(path)
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.LoadTracks(ctx)
}
