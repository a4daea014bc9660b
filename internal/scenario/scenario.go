package scenario

import (
	"github.com/ivlev/keytween/internal/tween"
)

// CurrentVersion is written into every new document.
const CurrentVersion = "1.0"

// MaxPosition is the last timeline position a frame may cover, a little over
// twelve hours at 24 fps.
const MaxPosition = 1 << 20

// Document is a complete animation timeline stored on disk
type Document struct {
	Version string  `yaml:"version" json:"version"`
	FPS     int     `yaml:"fps" json:"fps"`
	Layers  []Layer `yaml:"layers" json:"layers"`
}

// Layer is one row of frames
type Layer struct {
	ID     string  `yaml:"id" json:"id"`
	Name   string  `yaml:"name" json:"name"`
	Frames []Frame `yaml:"frames" json:"frames"`
}

// Frame is a span of the timeline with its tweens
type Frame struct {
	ID     string       `yaml:"id" json:"id"`
	Start  int          `yaml:"start" json:"start"`   // Timeline position (1-based)
	Length int          `yaml:"length" json:"length"` // Number of playhead positions
	Clips  []string     `yaml:"clips,omitempty" json:"clips,omitempty"`
	Tweens []tween.Data `yaml:"tweens" json:"tweens"`
}
