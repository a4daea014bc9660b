// Package tween holds keyframes ("tweens") and the interpolation between them.
package tween

import (
	"errors"
	"fmt"

	"github.com/ivlev/keytween/internal/easing"
)

// ErrUnknownEasing is wrapped by every EasingError.
var ErrUnknownEasing = errors.New("unknown easing type")

// EasingError reports a rejected easing assignment. The tween keeps its
// previous easing when this is returned.
type EasingError struct {
	Name    string
	Current easing.Type
}

func (e *EasingError) Error() string {
	return fmt.Sprintf("%v: %q (keeping %q)", ErrUnknownEasing, e.Name, e.Current)
}

func (e *EasingError) Unwrap() error {
	return ErrUnknownEasing
}

// Parent is the owner of a tween: a frame on a timeline.
type Parent interface {
	// Length is the inclusive upper bound for tween positions.
	Length() int
	// TweenInFront returns the tween with the smallest position >= position, or nil.
	TweenInFront(position int) *Tween
	// RemoveTween detaches t from the owner.
	RemoveTween(t *Tween)
	// LayerIndex is the index of the owner's layer, -1 when it has none.
	LayerIndex() int
}

// Clip is anything with a transformation slot that a tween can be applied to.
type Clip interface {
	SetTransformation(tr Transformation)
}

// Tween pins a transformation at a playhead position inside a frame.
type Tween struct {
	playheadPosition   int
	transformation     Transformation
	fullRotations      int
	easingType         easing.Type
	originalLayerIndex int

	parent Parent
}

// New creates an unattached tween with linear easing.
func New(position int, tr Transformation) *Tween {
	return &Tween{
		playheadPosition:   position,
		transformation:     tr,
		easingType:         easing.None,
		originalLayerIndex: -1,
	}
}

func (t *Tween) PlayheadPosition() int {
	return t.playheadPosition
}

// SetPlayheadPosition moves the tween. The owner is expected to re-sort and
// call RestrictToFrameSize afterwards.
func (t *Tween) SetPlayheadPosition(position int) {
	t.playheadPosition = position
}

// Transformation returns a copy of the pinned pose.
func (t *Tween) Transformation() Transformation {
	return t.transformation
}

func (t *Tween) SetTransformation(tr Transformation) {
	t.transformation = tr
}

// FullRotations is the number of extra turns added to the next tween's
// rotation when interpolating away from this one.
func (t *Tween) FullRotations() int {
	return t.fullRotations
}

func (t *Tween) SetFullRotations(n int) {
	t.fullRotations = n
}

func (t *Tween) EasingType() easing.Type {
	return t.easingType
}

// SetEasingType changes the easing curve. Unknown names are rejected with an
// *EasingError and leave the tween untouched.
func (t *Tween) SetEasingType(name string) error {
	ty, ok := easing.Parse(name)
	if !ok {
		return &EasingError{Name: name, Current: t.easingType}
	}
	t.easingType = ty
	return nil
}

// OriginalLayerIndex is the layer index recorded at the last serialization.
func (t *Tween) OriginalLayerIndex() int {
	return t.originalLayerIndex
}

func (t *Tween) Parent() Parent {
	return t.parent
}

// SetParent is called by owners when attaching (p != nil) or detaching (p == nil).
func (t *Tween) SetParent(p Parent) {
	t.parent = p
}

// LayerIndex is the index of the owning layer, or -1 when detached.
func (t *Tween) LayerIndex() int {
	if t.parent == nil {
		return -1
	}
	return t.parent.LayerIndex()
}

// Remove detaches the tween from its owner.
func (t *Tween) Remove() {
	if t.parent == nil {
		return
	}
	t.parent.RemoveTween(t)
	t.parent = nil
}

// ApplyTransformsToClip writes a copy of the pinned pose onto c.
func (t *Tween) ApplyTransformsToClip(c Clip) {
	c.SetTransformation(t.transformation)
}

// NextTween returns the next tween in the same owner, or nil.
func (t *Tween) NextTween() *Tween {
	if t.parent == nil {
		return nil
	}
	return t.parent.TweenInFront(t.playheadPosition + 1)
}

// NextIn is NextTween over an explicit sibling list.
func (t *Tween) NextIn(siblings []*Tween) *Tween {
	return InFront(siblings, t.playheadPosition+1)
}

// OutOfBounds reports whether the position falls outside [1, length].
func (t *Tween) OutOfBounds(length int) bool {
	return t.playheadPosition < 1 || t.playheadPosition > length
}

// RestrictToFrameSize removes the tween if its owner no longer covers its
// position. Owners call this after every length change.
func (t *Tween) RestrictToFrameSize() {
	if t.parent == nil {
		return
	}
	if t.OutOfBounds(t.parent.Length()) {
		t.Remove()
	}
}

// InFront returns the tween with the smallest position >= position.
func InFront(tweens []*Tween, position int) *Tween {
	var found *Tween
	for _, tw := range tweens {
		if tw.playheadPosition < position {
			continue
		}
		if found == nil || tw.playheadPosition < found.playheadPosition {
			found = tw
		}
	}
	return found
}

// Behind returns the tween with the largest position <= position.
func Behind(tweens []*Tween, position int) *Tween {
	var found *Tween
	for _, tw := range tweens {
		if tw.playheadPosition > position {
			continue
		}
		if found == nil || tw.playheadPosition > found.playheadPosition {
			found = tw
		}
	}
	return found
}
