package tween

import (
	"log"
)

// Data is the persisted form of a tween.
type Data struct {
	PlayheadPosition   int            `yaml:"playheadPosition" json:"playheadPosition"`
	Transformation     Transformation `yaml:"transformation" json:"transformation"`
	FullRotations      int            `yaml:"fullRotations" json:"fullRotations"`
	EasingType         string         `yaml:"easingType" json:"easingType"`
	OriginalLayerIndex int            `yaml:"originalLayerIndex" json:"originalLayerIndex"`
}

// Serialize records the tween. The layer index is taken from the live owner
// when attached, otherwise the last known value is kept.
func (t *Tween) Serialize() Data {
	layerIndex := t.originalLayerIndex
	if live := t.LayerIndex(); live != -1 {
		layerIndex = live
	}

	return Data{
		PlayheadPosition:   t.playheadPosition,
		Transformation:     t.transformation,
		FullRotations:      t.fullRotations,
		EasingType:         string(t.easingType),
		OriginalLayerIndex: layerIndex,
	}
}

// Deserialize builds an unattached tween from d. An unknown easing name is
// logged and replaced by linear easing.
func Deserialize(d Data) *Tween {
	t := New(d.PlayheadPosition, d.Transformation)
	t.fullRotations = d.FullRotations
	t.originalLayerIndex = d.OriginalLayerIndex

	if d.EasingType != "" {
		if err := t.SetEasingType(d.EasingType); err != nil {
			log.Printf("[!] Tween at %d: %v", d.PlayheadPosition, err)
		}
	}
	return t
}
