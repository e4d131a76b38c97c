package material

import (
	"testing"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/core"
)

func TestCheckerTexture_Pattern(t *testing.T) {
	white := core.NewColor(1, 1, 1)
	black := core.NewColor(0, 0, 0)
	tex := NewCheckerTexture(4, 4, 1, white, black)

	tests := []struct {
		name     string
		u, v     float64
		expected core.Color
	}{
		{name: "origin", u: 0, v: 0, expected: white},
		{name: "next column", u: 0.3, v: 0, expected: black},
		{name: "next row", u: 0, v: 0.3, expected: black},
		{name: "diagonal", u: 0.3, v: 0.3, expected: white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tex.Sample(tt.u, tt.v); result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestTexture_SampleWraps(t *testing.T) {
	white := core.NewColor(1, 1, 1)
	black := core.NewColor(0, 0, 0)
	tex := NewCheckerTexture(4, 4, 1, white, black)

	tests := []struct {
		name         string
		u, v         float64
		wrapU, wrapV float64
	}{
		{name: "above one", u: 1.25, v: 0, wrapU: 0.25, wrapV: 0},
		{name: "negative", u: -0.25, v: 0, wrapU: 0.75, wrapV: 0},
		{name: "both axes", u: 2.5, v: -1.5, wrapU: 0.5, wrapV: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := tex.Sample(tt.u, tt.v), tex.Sample(tt.wrapU, tt.wrapV); got != want {
				t.Errorf("Expected %v to wrap to %v", got, want)
			}
		})
	}
}

func TestTexture_Immutable(t *testing.T) {
	tex := NewCheckerTexture(8, 8, 2, core.NewColor(1, 0, 0), core.NewColor(0, 0, 1))

	before := tex.Sample(0.1, 0.1)
	for i := 0; i < 100; i++ {
		tex.Sample(float64(i)*0.01, float64(i)*0.03)
	}
	if after := tex.Sample(0.1, 0.1); after != before {
		t.Errorf("Sampling mutated the texture: %v became %v", before, after)
	}
}
