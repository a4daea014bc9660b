package tween

import (
	"github.com/ivlev/keytween/internal/easing"
)

// Interpolate blends a and b at position and returns a new unattached tween
// carrying the result. The easing of a shapes the blend, and a's
// FullRotations adds whole turns to b's rotation before blending.
//
// The time fraction is not clamped: positions outside [a, b] extrapolate.
// a and b must sit at different positions.
func Interpolate(a, b *Tween, position int) *Tween {
	dist := float64(b.playheadPosition - a.playheadPosition)
	t := float64(position-a.playheadPosition) / dist

	fn, ok := easing.Lookup(a.easingType)
	if !ok {
		fn = func(t float64) float64 { return t }
	}
	t = fn(t)

	tA := a.transformation
	tB := b.transformation
	endRotation := tB.Rotation + 360*float64(a.fullRotations)

	return New(position, Transformation{
		X:        lerp(tA.X, tB.X, t),
		Y:        lerp(tA.Y, tB.Y, t),
		ScaleX:   lerp(tA.ScaleX, tB.ScaleX, t),
		ScaleY:   lerp(tA.ScaleY, tB.ScaleY, t),
		Rotation: lerp(tA.Rotation, endRotation, t),
		Opacity:  lerp(tA.Opacity, tB.Opacity, t),
	})
}

// lerp performs linear interpolation between a and b
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
