// Package easing maps the fixed set of easing names to curve functions.
package easing

import (
	"github.com/fogleman/ease"
)

// Type is the name of an easing curve as stored on a tween.
type Type string

// Easing names. "in", "out" and "in-out" are the quadratic family.
const (
	None  Type = "none"
	In    Type = "in"
	Out   Type = "out"
	InOut Type = "in-out"

	CubicIn    Type = "cubic-in"
	CubicOut   Type = "cubic-out"
	CubicInOut Type = "cubic-in-out"

	QuarticIn    Type = "quartic-in"
	QuarticOut   Type = "quartic-out"
	QuarticInOut Type = "quartic-in-out"

	QuinticIn    Type = "quintic-in"
	QuinticOut   Type = "quintic-out"
	QuinticInOut Type = "quintic-in-out"

	SineIn    Type = "sine-in"
	SineOut   Type = "sine-out"
	SineInOut Type = "sine-in-out"

	ExponentialIn    Type = "exponential-in"
	ExponentialOut   Type = "exponential-out"
	ExponentialInOut Type = "exponential-in-out"

	CircularIn    Type = "circular-in"
	CircularOut   Type = "circular-out"
	CircularInOut Type = "circular-in-out"

	BackIn    Type = "back-in"
	BackOut   Type = "back-out"
	BackInOut Type = "back-in-out"

	BounceIn    Type = "bounce-in"
	BounceOut   Type = "bounce-out"
	BounceInOut Type = "bounce-in-out"
)

// Func remaps normalized time. Inputs are expected in [0,1] but the
// curves are evaluated for any value.
type Func func(t float64) float64

type entry struct {
	name Type
	fn   Func
}

// table keeps the listing order stable for Types.
var table = []entry{
	{None, ease.Linear},
	{In, ease.InQuad},
	{Out, ease.OutQuad},
	{InOut, ease.InOutQuad},

	{CubicIn, ease.InCubic},
	{CubicOut, ease.OutCubic},
	{CubicInOut, ease.InOutCubic},

	{QuarticIn, ease.InQuart},
	{QuarticOut, ease.OutQuart},
	{QuarticInOut, ease.InOutQuart},

	{QuinticIn, ease.InQuint},
	{QuinticOut, ease.OutQuint},
	{QuinticInOut, ease.InOutQuint},

	{SineIn, ease.InSine},
	{SineOut, ease.OutSine},
	{SineInOut, ease.InOutSine},

	{ExponentialIn, ease.InExpo},
	{ExponentialOut, ease.OutExpo},
	{ExponentialInOut, ease.InOutExpo},

	{CircularIn, ease.InCirc},
	{CircularOut, ease.OutCirc},
	{CircularInOut, ease.InOutCirc},

	{BackIn, ease.InBack},
	{BackOut, ease.OutBack},
	{BackInOut, ease.InOutBack},

	{BounceIn, ease.InBounce},
	{BounceOut, ease.OutBounce},
	{BounceInOut, ease.InOutBounce},
}

var registry = func() map[Type]Func {
	m := make(map[Type]Func, len(table))
	for _, e := range table {
		m[e.name] = e.fn
	}
	return m
}()

// Lookup returns the curve registered for t.
func Lookup(t Type) (Func, bool) {
	fn, ok := registry[t]
	return fn, ok
}

// Parse converts a raw name into a Type, reporting whether it is known.
func Parse(name string) (Type, bool) {
	t := Type(name)
	return t, t.Valid()
}

// Valid reports whether t is one of the registered names.
func (t Type) Valid() bool {
	_, ok := registry[t]
	return ok
}

func (t Type) String() string {
	return string(t)
}

// Types lists every registered name in declaration order.
func Types() []Type {
	out := make([]Type, len(table))
	for i, e := range table {
		out[i] = e.name
	}
	return out
}
