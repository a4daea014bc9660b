package timeline

import (
	"github.com/google/uuid"

	"github.com/ivlev/keytween/internal/tween"
)

// Clip is a displayed object whose pose is driven by its frame's tweens.
type Clip struct {
	ID string

	transformation tween.Transformation
}

// NewClip creates a clip at the identity pose.
func NewClip() *Clip {
	return &Clip{
		ID:             uuid.NewString(),
		transformation: tween.IdentityTransformation(),
	}
}

func (c *Clip) Transformation() tween.Transformation {
	return c.transformation
}

func (c *Clip) SetTransformation(tr tween.Transformation) {
	c.transformation = tr
}
