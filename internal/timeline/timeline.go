// Package timeline is the owner side of tweens: a timeline of layers, each
// layer holding frames, each frame holding tweens and clips.
package timeline

import (
	"github.com/google/uuid"

	"github.com/ivlev/keytween/internal/tween"
)

// Layer is a row of non-overlapping frames.
type Layer struct {
	ID   string
	Name string

	frames   []*Frame
	timeline *Timeline
}

func NewLayer(name string) *Layer {
	return &Layer{
		ID:   uuid.NewString(),
		Name: name,
	}
}

// Index is the position of the layer in its timeline, or -1.
func (l *Layer) Index() int {
	if l.timeline == nil {
		return -1
	}
	for i, other := range l.timeline.layers {
		if other == l {
			return i
		}
	}
	return -1
}

func (l *Layer) AddFrame(f *Frame) {
	f.layer = l
	l.frames = append(l.frames, f)
}

func (l *Layer) Frames() []*Frame {
	out := make([]*Frame, len(l.frames))
	copy(out, l.frames)
	return out
}

// FrameAt returns the frame covering the timeline position, or nil.
func (l *Layer) FrameAt(position int) *Frame {
	for _, f := range l.frames {
		if f.Contains(position) {
			return f
		}
	}
	return nil
}

// Timeline is an ordered stack of layers.
type Timeline struct {
	layers []*Layer
}

func New() *Timeline {
	return &Timeline{}
}

func (tl *Timeline) AddLayer(l *Layer) {
	l.timeline = tl
	tl.layers = append(tl.layers, l)
}

func (tl *Timeline) Layers() []*Layer {
	out := make([]*Layer, len(tl.layers))
	copy(out, tl.layers)
	return out
}

// Length is the last timeline position covered by any frame.
func (tl *Timeline) Length() int {
	length := 0
	for _, l := range tl.layers {
		for _, f := range l.frames {
			if end := f.End(); end > length {
				length = end
			}
		}
	}
	return length
}

// Frames returns every frame, layer by layer.
func (tl *Timeline) Frames() []*Frame {
	var out []*Frame
	for _, l := range tl.layers {
		out = append(out, l.frames...)
	}
	return out
}

// Seek applies the tweens of every frame under the timeline position to
// their clips and returns the frames that had an active tween.
func (tl *Timeline) Seek(position int) []*Frame {
	var touched []*Frame
	for _, l := range tl.layers {
		f := l.FrameAt(position)
		if f == nil {
			continue
		}
		if f.ApplyTweenTransforms(position - f.Start + 1) {
			touched = append(touched, f)
		}
	}
	return touched
}

// PasteTweens restores copied tweens starting at the timeline position,
// keeping their spacing. Each tween goes back to the layer it was copied
// from when that layer exists, and to fallback otherwise. Tweens landing
// outside any frame are dropped.
func (tl *Timeline) PasteTweens(position int, fallback *Layer, data []tween.Data) []*tween.Tween {
	if len(data) == 0 {
		return nil
	}
	first := data[0].PlayheadPosition
	for _, d := range data[1:] {
		if d.PlayheadPosition < first {
			first = d.PlayheadPosition
		}
	}

	var pasted []*tween.Tween
	for _, d := range data {
		layer := fallback
		if d.OriginalLayerIndex >= 0 && d.OriginalLayerIndex < len(tl.layers) {
			layer = tl.layers[d.OriginalLayerIndex]
		}
		if layer == nil {
			continue
		}

		at := position + d.PlayheadPosition - first
		f := layer.FrameAt(at)
		if f == nil {
			continue
		}

		t := tween.Deserialize(d)
		t.SetPlayheadPosition(at - f.Start + 1)
		f.AddTween(t)
		pasted = append(pasted, t)
	}
	return pasted
}
