package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by WriteTracks for extensions it does not handle.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// WriteTracks writes baked tracks to path. The format follows the
// extension: .yaml/.yml or .json.
func WriteTracks(path string, tracks []Track) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(tracks)
	case ".json":
		data, err = json.MarshalIndent(tracks, "", "  ")
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadTracks reads tracks written by WriteTracks.
func ReadTracks(path string) ([]Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tracks []Track
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &tracks)
	case ".json":
		err = json.Unmarshal(data, &tracks)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}

	return tracks, nil
}

// Positions groups the samples of all tracks by timeline position, in
// ascending order. Each entry lists one sample per track covering it;
// positions no track covers are left out.
func Positions(tracks []Track) []PositionSamples {
	byPosition := make(map[int]*PositionSamples)
	for _, t := range tracks {
		for _, s := range t.Samples {
			if s.TimelinePosition < 1 {
				continue
			}
			ps, ok := byPosition[s.TimelinePosition]
			if !ok {
				ps = &PositionSamples{Position: s.TimelinePosition}
				byPosition[s.TimelinePosition] = ps
			}
			ps.Frames = append(ps.Frames, FrameSample{
				FrameID:        t.FrameID,
				LayerIndex:     t.LayerIndex,
				Transformation: s.Transformation,
			})
		}
	}
	if len(byPosition) == 0 {
		return nil
	}

	out := make([]PositionSamples, 0, len(byPosition))
	for _, ps := range byPosition {
		out = append(out, *ps)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}
