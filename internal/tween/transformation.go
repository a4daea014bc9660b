package tween

// Transformation is the pose of a displayed object.
type Transformation struct {
	X        float64 `yaml:"x" json:"x"`
	Y        float64 `yaml:"y" json:"y"`
	ScaleX   float64 `yaml:"scaleX" json:"scaleX"`
	ScaleY   float64 `yaml:"scaleY" json:"scaleY"`
	Rotation float64 `yaml:"rotation" json:"rotation"` // degrees
	Opacity  float64 `yaml:"opacity" json:"opacity"`
}

// IdentityTransformation returns an unscaled, unrotated, fully opaque pose at the origin.
func IdentityTransformation() Transformation {
	return Transformation{
		ScaleX:  1,
		ScaleY:  1,
		Opacity: 1,
	}
}
