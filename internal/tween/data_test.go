package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ivlev/keytween/internal/easing"
)

func TestSerializeDetachedKeepsStoredLayer(t *testing.T) {
	tw := Deserialize(Data{
		PlayheadPosition:   4,
		Transformation:     Transformation{X: 1, ScaleX: 1, ScaleY: 1, Opacity: 1},
		FullRotations:      2,
		EasingType:         "circular-out",
		OriginalLayerIndex: 7,
	})

	d := tw.Serialize()
	assert.Equal(t, 4, d.PlayheadPosition)
	assert.Equal(t, 2, d.FullRotations)
	assert.Equal(t, "circular-out", d.EasingType)
	assert.Equal(t, 7, d.OriginalLayerIndex)
}

func TestSerializeAttachedUsesLiveLayer(t *testing.T) {
	frame := &stubFrame{length: 10, layer: 2}
	tw := Deserialize(Data{PlayheadPosition: 1, OriginalLayerIndex: 7})
	frame.add(tw)

	assert.Equal(t, 2, tw.Serialize().OriginalLayerIndex)

	// After detaching, the stored value is still the one from Deserialize.
	tw.Remove()
	assert.Equal(t, 7, tw.Serialize().OriginalLayerIndex)
}

func TestDeserializeUnknownEasing(t *testing.T) {
	tw := Deserialize(Data{PlayheadPosition: 1, EasingType: "wobble"})
	assert.Equal(t, easing.None, tw.EasingType())

	tw = Deserialize(Data{PlayheadPosition: 1})
	assert.Equal(t, easing.None, tw.EasingType())
}

func TestDataYAMLKeys(t *testing.T) {
	d := Data{
		PlayheadPosition:   3,
		Transformation:     Transformation{X: 1, Y: 2, ScaleX: 3, ScaleY: 4, Rotation: 5, Opacity: 0.5},
		FullRotations:      1,
		EasingType:         "in-out",
		OriginalLayerIndex: 0,
	}

	out, err := yaml.Marshal(d)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(out, &raw))
	assert.ElementsMatch(t,
		[]string{"playheadPosition", "transformation", "fullRotations", "easingType", "originalLayerIndex"},
		keys(raw))

	tr, ok := raw["transformation"].(map[string]any)
	require.True(t, ok)
	assert.ElementsMatch(t,
		[]string{"x", "y", "scaleX", "scaleY", "rotation", "opacity"},
		keys(tr))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
