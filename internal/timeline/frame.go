package timeline

import (
	"sort"

	"github.com/google/uuid"

	"github.com/ivlev/keytween/internal/tween"
)

// Frame is a span of the timeline owning tweens and the clips they drive.
// Tween positions are relative to the frame and start at 1.
type Frame struct {
	ID    string
	Start int // timeline position of the first playhead position

	length int
	tweens []*tween.Tween
	clips  []*Clip
	layer  *Layer
}

// NewFrame creates a frame covering [start, start+length-1] on the timeline.
func NewFrame(start, length int) *Frame {
	return &Frame{
		ID:     uuid.NewString(),
		Start:  start,
		length: length,
	}
}

func (f *Frame) Length() int {
	return f.length
}

// End is the last timeline position covered by the frame.
func (f *Frame) End() int {
	return f.Start + f.length - 1
}

// Contains reports whether the timeline position falls inside the frame.
func (f *Frame) Contains(position int) bool {
	return position >= f.Start && position <= f.End()
}

// SetLength resizes the frame and drops tweens that no longer fit.
func (f *Frame) SetLength(length int) {
	f.length = length
	for _, t := range f.Tweens() {
		t.RestrictToFrameSize()
	}
}

// LayerIndex returns the index of the owning layer, or -1.
func (f *Frame) LayerIndex() int {
	if f.layer == nil {
		return -1
	}
	return f.layer.Index()
}

func (f *Frame) Layer() *Layer {
	return f.layer
}

// Tweens returns the tweens ordered by position.
func (f *Frame) Tweens() []*tween.Tween {
	out := make([]*tween.Tween, len(f.tweens))
	copy(out, f.tweens)
	return out
}

// AddTween attaches t, replacing any tween already at its position. A tween
// outside [1, Length] is detached again right away.
func (f *Frame) AddTween(t *tween.Tween) {
	if existing := f.TweenAt(t.PlayheadPosition()); existing != nil && existing != t {
		existing.Remove()
	}
	if p := t.Parent(); p != nil && p != tween.Parent(f) {
		t.Remove()
	}
	if t.Parent() == nil {
		f.tweens = append(f.tweens, t)
		t.SetParent(f)
	}
	f.sortTweens()
	t.RestrictToFrameSize()
}

// RemoveTween detaches t. Unknown tweens are ignored.
func (f *Frame) RemoveTween(t *tween.Tween) {
	for i, tw := range f.tweens {
		if tw == t {
			f.tweens = append(f.tweens[:i], f.tweens[i+1:]...)
			t.SetParent(nil)
			return
		}
	}
}

// TweenAt returns the tween exactly at position, or nil.
func (f *Frame) TweenAt(position int) *tween.Tween {
	for _, t := range f.tweens {
		if t.PlayheadPosition() == position {
			return t
		}
	}
	return nil
}

// TweenInFront returns the first tween at or after position.
func (f *Frame) TweenInFront(position int) *tween.Tween {
	return tween.InFront(f.tweens, position)
}

// TweenBehind returns the last tween at or before position.
func (f *Frame) TweenBehind(position int) *tween.Tween {
	return tween.Behind(f.tweens, position)
}

// ActiveTween resolves the pose at a frame-relative position. Between two
// tweens the result is interpolated; outside them the nearest tween holds.
func (f *Frame) ActiveTween(position int) *tween.Tween {
	if t := f.TweenAt(position); t != nil {
		return t
	}

	behind := f.TweenBehind(position)
	inFront := f.TweenInFront(position)
	switch {
	case behind != nil && inFront != nil:
		return tween.Interpolate(behind, inFront, position)
	case inFront != nil:
		return inFront
	case behind != nil:
		return behind
	}
	return nil
}

// ApplyTweenTransforms writes the active pose at position onto every clip.
// It reports whether a tween was found.
func (f *Frame) ApplyTweenTransforms(position int) bool {
	active := f.ActiveTween(position)
	if active == nil {
		return false
	}
	for _, c := range f.clips {
		active.ApplyTransformsToClip(c)
	}
	return true
}

// CreateTween pins the current pose at position and returns the new tween.
// The tween is left detached when position is outside the frame.
func (f *Frame) CreateTween(position int) *tween.Tween {
	tr := tween.IdentityTransformation()
	if active := f.ActiveTween(position); active != nil {
		tr = active.Transformation()
	} else if len(f.clips) > 0 {
		tr = f.clips[0].Transformation()
	}

	t := tween.New(position, tr)
	f.AddTween(t)
	return t
}

// MoveTween changes the position of t, replacing whatever was there. Tweens
// owned by another frame are ignored.
func (f *Frame) MoveTween(t *tween.Tween, position int) {
	if t.Parent() != tween.Parent(f) {
		return
	}
	if existing := f.TweenAt(position); existing != nil && existing != t {
		existing.Remove()
	}
	t.SetPlayheadPosition(position)
	f.sortTweens()
	t.RestrictToFrameSize()
}

func (f *Frame) AddClip(c *Clip) {
	f.clips = append(f.clips, c)
}

func (f *Frame) Clips() []*Clip {
	out := make([]*Clip, len(f.clips))
	copy(out, f.clips)
	return out
}

func (f *Frame) sortTweens() {
	sort.SliceStable(f.tweens, func(i, j int) bool {
		return f.tweens[i].PlayheadPosition() < f.tweens[j].PlayheadPosition()
	})
}
