package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/keytween/internal/tween"
)

func at(x float64) tween.Transformation {
	tr := tween.IdentityTransformation()
	tr.X = x
	return tr
}

func newTimeline(t *testing.T) (*Timeline, *Layer, *Frame) {
	t.Helper()
	tl := New()
	layer := NewLayer("Layer 1")
	tl.AddLayer(layer)
	frame := NewFrame(1, 10)
	layer.AddFrame(frame)
	return tl, layer, frame
}

func TestFrameBounds(t *testing.T) {
	f := NewFrame(5, 4)

	assert.NotEmpty(t, f.ID)
	assert.Equal(t, 8, f.End())
	assert.False(t, f.Contains(4))
	assert.True(t, f.Contains(5))
	assert.True(t, f.Contains(8))
	assert.False(t, f.Contains(9))
	assert.Equal(t, -1, f.LayerIndex())
}

func TestAddTweenKeepsOrder(t *testing.T) {
	_, _, f := newTimeline(t)
	c := tween.New(9, at(9))
	a := tween.New(1, at(1))
	b := tween.New(4, at(4))

	f.AddTween(c)
	f.AddTween(a)
	f.AddTween(b)

	assert.Equal(t, []*tween.Tween{a, b, c}, f.Tweens())
	for _, tw := range f.Tweens() {
		assert.Same(t, f, tw.Parent())
		assert.Equal(t, 0, tw.LayerIndex())
	}
}

func TestAddTweenReplacesSamePosition(t *testing.T) {
	_, _, f := newTimeline(t)
	old := tween.New(3, at(1))
	replacement := tween.New(3, at(2))

	f.AddTween(old)
	f.AddTween(replacement)

	require.Len(t, f.Tweens(), 1)
	assert.Same(t, replacement, f.TweenAt(3))
	assert.Nil(t, old.Parent())
}

func TestAddTweenMovesBetweenFrames(t *testing.T) {
	_, layer, f := newTimeline(t)
	other := NewFrame(11, 10)
	layer.AddFrame(other)

	tw := tween.New(2, at(0))
	f.AddTween(tw)
	other.AddTween(tw)

	assert.Empty(t, f.Tweens())
	assert.Equal(t, []*tween.Tween{tw}, other.Tweens())
	assert.Same(t, other, tw.Parent())
}

func TestAddTweenOutsideFrame(t *testing.T) {
	f := NewFrame(1, 5)
	keep := tween.New(2, at(0))
	f.AddTween(keep)

	late := tween.New(9, at(0))
	f.AddTween(late)
	assert.Nil(t, late.Parent())

	created := f.CreateTween(0)
	require.NotNil(t, created)
	assert.Nil(t, created.Parent())

	assert.Equal(t, []*tween.Tween{keep}, f.Tweens())
	assert.Same(t, f, keep.Parent())
}

func TestAddTweenOutsideFrameLeavesOldOwner(t *testing.T) {
	_, layer, f := newTimeline(t)
	short := NewFrame(11, 3)
	layer.AddFrame(short)

	tw := tween.New(8, at(0))
	f.AddTween(tw)
	short.AddTween(tw)

	assert.Empty(t, f.Tweens())
	assert.Empty(t, short.Tweens())
	assert.Nil(t, tw.Parent())
}

func TestTweenRemoveDetachesFromFrame(t *testing.T) {
	_, _, f := newTimeline(t)
	a := tween.New(1, at(0))
	b := tween.New(5, at(0))
	f.AddTween(a)
	f.AddTween(b)

	a.Remove()
	assert.Equal(t, []*tween.Tween{b}, f.Tweens())
	assert.Nil(t, a.Parent())
}

func TestNextTweenThroughFrame(t *testing.T) {
	_, _, f := newTimeline(t)
	a := tween.New(1, at(0))
	b := tween.New(6, at(0))
	c := tween.New(10, at(0))
	f.AddTween(a)
	f.AddTween(c)
	f.AddTween(b)

	assert.Same(t, b, a.NextTween())
	assert.Same(t, c, b.NextTween())
	assert.Nil(t, c.NextTween())
}

func TestSetLengthRestrictsTweens(t *testing.T) {
	_, _, f := newTimeline(t)
	keep := tween.New(3, at(0))
	edge := tween.New(5, at(0))
	drop := tween.New(8, at(0))
	f.AddTween(keep)
	f.AddTween(edge)
	f.AddTween(drop)

	f.SetLength(5)

	assert.Equal(t, []*tween.Tween{keep, edge}, f.Tweens())
	assert.Nil(t, drop.Parent())

	f.SetLength(20)
	assert.Len(t, f.Tweens(), 2)
}

func TestMoveTween(t *testing.T) {
	_, _, f := newTimeline(t)
	a := tween.New(2, at(0))
	b := tween.New(7, at(0))
	f.AddTween(a)
	f.AddTween(b)

	f.MoveTween(a, 9)
	assert.Equal(t, []*tween.Tween{b, a}, f.Tweens())

	f.MoveTween(b, 9)
	assert.Equal(t, []*tween.Tween{b}, f.Tweens())
	assert.Nil(t, a.Parent())

	f.MoveTween(b, 0)
	assert.Empty(t, f.Tweens())
}

func TestMoveTweenOfOtherFrame(t *testing.T) {
	_, layer, a := newTimeline(t)
	b := NewFrame(11, 10)
	layer.AddFrame(b)

	first := tween.New(2, at(0))
	second := tween.New(6, at(0))
	a.AddTween(first)
	a.AddTween(second)

	b.MoveTween(first, 9)

	assert.Equal(t, 2, first.PlayheadPosition())
	assert.Same(t, a, first.Parent())
	assert.Equal(t, []*tween.Tween{first, second}, a.Tweens())
	assert.Empty(t, b.Tweens())

	loose := tween.New(3, at(0))
	a.MoveTween(loose, 4)
	assert.Equal(t, 3, loose.PlayheadPosition())
	assert.Len(t, a.Tweens(), 2)
}

func TestActiveTween(t *testing.T) {
	_, _, f := newTimeline(t)

	assert.Nil(t, f.ActiveTween(3))

	a := tween.New(3, at(0))
	b := tween.New(7, at(40))
	f.AddTween(a)
	f.AddTween(b)

	tests := []struct {
		position int
		wantX    float64
	}{
		{1, 0},
		{3, 0},
		{4, 10},
		{5, 20},
		{7, 40},
		{10, 40},
	}

	for _, tt := range tests {
		got := f.ActiveTween(tt.position)
		require.NotNil(t, got, "position %d", tt.position)
		assert.InDelta(t, tt.wantX, got.Transformation().X, 1e-9, "position %d", tt.position)
	}

	assert.Same(t, a, f.ActiveTween(3))
	assert.Nil(t, f.ActiveTween(5).Parent(), "interpolated tweens are unattached")
	assert.Len(t, f.Tweens(), 2)
}

func TestApplyTweenTransforms(t *testing.T) {
	_, _, f := newTimeline(t)
	clip := NewClip()
	f.AddClip(clip)

	assert.False(t, f.ApplyTweenTransforms(1))
	assert.Equal(t, tween.IdentityTransformation(), clip.Transformation())

	f.AddTween(tween.New(1, at(0)))
	f.AddTween(tween.New(5, at(100)))

	assert.True(t, f.ApplyTweenTransforms(3))
	assert.InDelta(t, 50.0, clip.Transformation().X, 1e-9)

	src := f.TweenAt(5)
	assert.True(t, f.ApplyTweenTransforms(5))
	tr := clip.Transformation()
	tr.X = -1
	clip.SetTransformation(tr)
	assert.Equal(t, 100.0, src.Transformation().X)
}

func TestCreateTween(t *testing.T) {
	_, _, f := newTimeline(t)

	first := f.CreateTween(1)
	assert.Equal(t, tween.IdentityTransformation(), first.Transformation())

	last := tween.New(9, at(80))
	f.AddTween(last)

	mid := f.CreateTween(5)
	assert.Same(t, f, mid.Parent())
	assert.InDelta(t, 40.0, mid.Transformation().X, 1e-9)
	assert.Len(t, f.Tweens(), 3)
}

func TestCreateTweenFromClip(t *testing.T) {
	_, _, f := newTimeline(t)
	clip := NewClip()
	clip.SetTransformation(at(12))
	f.AddClip(clip)

	tw := f.CreateTween(2)
	assert.Equal(t, 12.0, tw.Transformation().X)
}

func TestLayerIndex(t *testing.T) {
	tl := New()
	l0 := NewLayer("bottom")
	l1 := NewLayer("top")
	loose := NewLayer("loose")
	tl.AddLayer(l0)
	tl.AddLayer(l1)

	assert.Equal(t, 0, l0.Index())
	assert.Equal(t, 1, l1.Index())
	assert.Equal(t, -1, loose.Index())

	f := NewFrame(1, 5)
	l1.AddFrame(f)
	tw := tween.New(1, at(0))
	f.AddTween(tw)
	assert.Equal(t, 1, tw.LayerIndex())
	assert.Equal(t, 1, tw.Serialize().OriginalLayerIndex)
}

func TestTimelineLengthAndFrames(t *testing.T) {
	tl := New()
	l0 := NewLayer("a")
	l1 := NewLayer("b")
	tl.AddLayer(l0)
	tl.AddLayer(l1)

	assert.Equal(t, 0, tl.Length())

	l0.AddFrame(NewFrame(1, 10))
	l0.AddFrame(NewFrame(11, 5))
	l1.AddFrame(NewFrame(4, 20))

	assert.Equal(t, 23, tl.Length())
	assert.Len(t, tl.Frames(), 3)
	assert.Equal(t, 15, l0.FrameAt(15).End())
	assert.Nil(t, l0.FrameAt(16))
}

func TestSeek(t *testing.T) {
	tl := New()
	l0 := NewLayer("a")
	l1 := NewLayer("b")
	tl.AddLayer(l0)
	tl.AddLayer(l1)

	f0 := NewFrame(11, 10)
	l0.AddFrame(f0)
	c0 := NewClip()
	f0.AddClip(c0)
	f0.AddTween(tween.New(1, at(0)))
	f0.AddTween(tween.New(10, at(90)))

	f1 := NewFrame(1, 30)
	l1.AddFrame(f1)

	touched := tl.Seek(14)
	assert.Equal(t, []*Frame{f0}, touched)
	assert.InDelta(t, 30.0, c0.Transformation().X, 1e-9)

	assert.Empty(t, tl.Seek(5))
}

func TestPasteTweens(t *testing.T) {
	tl := New()
	l0 := NewLayer("a")
	l1 := NewLayer("b")
	tl.AddLayer(l0)
	tl.AddLayer(l1)
	f0 := NewFrame(1, 20)
	f1 := NewFrame(1, 20)
	l0.AddFrame(f0)
	l1.AddFrame(f1)

	src := tween.New(2, at(5))
	f1.AddTween(src)
	src2 := tween.New(4, at(7))
	f1.AddTween(src2)
	copied := []tween.Data{src.Serialize(), src2.Serialize(), {PlayheadPosition: 3, OriginalLayerIndex: 9}}

	pasted := tl.PasteTweens(10, l0, copied)
	require.Len(t, pasted, 3)

	assert.Same(t, f1, pasted[0].Parent())
	assert.Equal(t, 10, pasted[0].PlayheadPosition())
	assert.Equal(t, 12, pasted[1].PlayheadPosition())
	assert.Same(t, f0, pasted[2].Parent(), "unknown layer falls back")
	assert.Equal(t, 11, pasted[2].PlayheadPosition())

	assert.Empty(t, tl.PasteTweens(40, l0, copied), "outside every frame")
	assert.Nil(t, tl.PasteTweens(1, l0, nil))
}
