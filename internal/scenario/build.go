// Package scenario stores timelines as YAML documents.
package scenario

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ivlev/keytween/internal/timeline"
	"github.com/ivlev/keytween/internal/tween"
)

// Validate checks the structure of the document. Tween easing names are not
// checked here; unknown names fall back to linear when the timeline is built.
func (d *Document) Validate() error {
	if d.FPS < 0 {
		return fmt.Errorf("fps must not be negative, got %d", d.FPS)
	}

	for li, l := range d.Layers {
		for fi, f := range l.Frames {
			if f.Start < 1 {
				return fmt.Errorf("layer %d frame %d: start must be >= 1, got %d", li, fi, f.Start)
			}
			if f.Length < 1 {
				return fmt.Errorf("layer %d frame %d: length must be >= 1, got %d", li, fi, f.Length)
			}
			if f.Length > MaxPosition || f.Start > MaxPosition-f.Length+1 {
				return fmt.Errorf("layer %d frame %d: ends past timeline position %d", li, fi, MaxPosition)
			}

			seen := make(map[int]bool, len(f.Tweens))
			for _, t := range f.Tweens {
				if seen[t.PlayheadPosition] {
					return fmt.Errorf("layer %d frame %d: duplicate tween at position %d", li, fi, t.PlayheadPosition)
				}
				seen[t.PlayheadPosition] = true
			}
		}
	}

	return nil
}

// Build turns a document into a live timeline. Tweens outside their frame
// are dropped by Frame.AddTween.
func Build(doc *Document) (*timeline.Timeline, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	tl := timeline.New()
	for _, ld := range doc.Layers {
		layer := timeline.NewLayer(ld.Name)
		if ld.ID != "" {
			layer.ID = ld.ID
		}
		tl.AddLayer(layer)

		for _, fd := range ld.Frames {
			frame := timeline.NewFrame(fd.Start, fd.Length)
			if fd.ID != "" {
				frame.ID = fd.ID
			}
			layer.AddFrame(frame)

			for _, id := range fd.Clips {
				clip := timeline.NewClip()
				clip.ID = id
				frame.AddClip(clip)
			}

			for _, td := range fd.Tweens {
				frame.AddTween(tween.Deserialize(td))
			}
		}
	}

	return tl, nil
}

// Capture records a timeline as a document.
func Capture(tl *timeline.Timeline, fps int) *Document {
	doc := &Document{
		Version: CurrentVersion,
		FPS:     fps,
	}

	for _, layer := range tl.Layers() {
		ld := Layer{ID: layer.ID, Name: layer.Name}
		for _, frame := range layer.Frames() {
			fd := Frame{
				ID:     frame.ID,
				Start:  frame.Start,
				Length: frame.Length(),
				Tweens: []tween.Data{},
			}
			for _, c := range frame.Clips() {
				fd.Clips = append(fd.Clips, c.ID)
			}
			for _, t := range frame.Tweens() {
				fd.Tweens = append(fd.Tweens, t.Serialize())
			}
			ld.Frames = append(ld.Frames, fd)
		}
		doc.Layers = append(doc.Layers, ld)
	}

	return doc
}

// Example creates a small two-layer document: a spinning clip that slides
// across and fades out, and a pulsing clip.
func Example(fps int) *Document {
	spin := Frame{
		ID:     uuid.NewString(),
		Start:  1,
		Length: 48,
		Clips:  []string{uuid.NewString()},
		Tweens: []tween.Data{
			{
				PlayheadPosition:   1,
				Transformation:     tween.Transformation{X: 0, Y: 100, ScaleX: 1, ScaleY: 1, Rotation: 0, Opacity: 1},
				FullRotations:      1,
				EasingType:         "in-out",
				OriginalLayerIndex: 0,
			},
			{
				PlayheadPosition:   24,
				Transformation:     tween.Transformation{X: 320, Y: 100, ScaleX: 1, ScaleY: 1, Rotation: 90, Opacity: 1},
				EasingType:         "cubic-out",
				OriginalLayerIndex: 0,
			},
			{
				PlayheadPosition:   48,
				Transformation:     tween.Transformation{X: 640, Y: 100, ScaleX: 1, ScaleY: 1, Rotation: 90, Opacity: 0},
				EasingType:         "none",
				OriginalLayerIndex: 0,
			},
		},
	}

	pulse := Frame{
		ID:     uuid.NewString(),
		Start:  1,
		Length: 48,
		Clips:  []string{uuid.NewString()},
		Tweens: []tween.Data{
			{
				PlayheadPosition:   1,
				Transformation:     tween.Transformation{X: 320, Y: 240, ScaleX: 1, ScaleY: 1, Opacity: 1},
				EasingType:         "bounce-out",
				OriginalLayerIndex: 1,
			},
			{
				PlayheadPosition:   24,
				Transformation:     tween.Transformation{X: 320, Y: 240, ScaleX: 2, ScaleY: 2, Opacity: 1},
				EasingType:         "back-in",
				OriginalLayerIndex: 1,
			},
			{
				PlayheadPosition:   48,
				Transformation:     tween.Transformation{X: 320, Y: 240, ScaleX: 1, ScaleY: 1, Opacity: 1},
				EasingType:         "none",
				OriginalLayerIndex: 1,
			},
		},
	}

	return &Document{
		Version: CurrentVersion,
		FPS:     fps,
		Layers: []Layer{
			{ID: uuid.NewString(), Name: "spin", Frames: []Frame{spin}},
			{ID: uuid.NewString(), Name: "pulse", Frames: []Frame{pulse}},
		},
	}
}
