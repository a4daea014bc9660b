// Package store keeps baked tracks in a SQLite database.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/ivlev/keytween/internal/engine"
)

//go:embed schema.sql
var schemaSQL string

// ErrTrackNotFound is returned by LoadTrack for an unknown frame.
var ErrTrackNotFound = errors.New("track not found")

// Store is an open sample database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One connection keeps the pragma below in effect for every statement.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveTracks replaces the stored samples of every given track in a single
// transaction.
func (s *Store) SaveTracks(ctx context.Context, tracks []engine.Track) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insertSample, err := tx.PrepareContext(ctx, `INSERT INTO samples
		(frame_id, position, timeline_position, x, y, scale_x, scale_y, rotation, opacity)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer insertSample.Close()

	for _, t := range tracks {
		if _, err := tx.ExecContext(ctx, `DELETE FROM samples WHERE frame_id = ?`, t.FrameID); err != nil {
			return fmt.Errorf("clear track %s: %w", t.FrameID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tracks (frame_id, layer_index, start_position) VALUES (?, ?, ?)
			 ON CONFLICT(frame_id) DO UPDATE SET layer_index = excluded.layer_index, start_position = excluded.start_position`,
			t.FrameID, t.LayerIndex, t.Start); err != nil {
			return fmt.Errorf("save track %s: %w", t.FrameID, err)
		}

		for _, smp := range t.Samples {
			tr := smp.Transformation
			if _, err := insertSample.ExecContext(ctx,
				t.FrameID, smp.Position, smp.TimelinePosition,
				tr.X, tr.Y, tr.ScaleX, tr.ScaleY, tr.Rotation, tr.Opacity); err != nil {
				return fmt.Errorf("save sample %s@%d: %w", t.FrameID, smp.Position, err)
			}
		}
	}

	return tx.Commit()
}

// LoadTrack reads one track with its samples ordered by position.
func (s *Store) LoadTrack(ctx context.Context, frameID string) (engine.Track, error) {
	track := engine.Track{FrameID: frameID}

	err := s.db.QueryRowContext(ctx,
		`SELECT layer_index, start_position FROM tracks WHERE frame_id = ?`, frameID).
		Scan(&track.LayerIndex, &track.Start)
	if errors.Is(err, sql.ErrNoRows) {
		return engine.Track{}, fmt.Errorf("%w: %s", ErrTrackNotFound, frameID)
	}
	if err != nil {
		return engine.Track{}, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT position, timeline_position, x, y, scale_x, scale_y, rotation, opacity
		FROM samples WHERE frame_id = ? ORDER BY position`, frameID)
	if err != nil {
		return engine.Track{}, err
	}
	defer rows.Close()

	track.Samples = []engine.Sample{}
	for rows.Next() {
		var smp engine.Sample
		tr := &smp.Transformation
		if err := rows.Scan(&smp.Position, &smp.TimelinePosition,
			&tr.X, &tr.Y, &tr.ScaleX, &tr.ScaleY, &tr.Rotation, &tr.Opacity); err != nil {
			return engine.Track{}, err
		}
		track.Samples = append(track.Samples, smp)
	}

	return track, rows.Err()
}

// LoadTracks reads every stored track ordered by layer, then start.
func (s *Store) LoadTracks(ctx context.Context) ([]engine.Track, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT frame_id FROM tracks ORDER BY layer_index, start_position, frame_id`)
	if err != nil {
		return nil, err
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tracks := make([]engine.Track, 0, len(ids))
	for _, id := range ids {
		t, err := s.LoadTrack(ctx, id)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}
