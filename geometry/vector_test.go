package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{name: "unit x", in: Vec2{5, 0}, want: Vec2{1, 0}},
		{name: "diagonal", in: Vec2{3, 4}, want: Vec2{0.6, 0.8}},
		{name: "zero vector stays zero", in: Vec2{}, want: Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestRotateAndPerpendicular(t *testing.T) {
	v := Vec2{1, 0}

	rotated := v.Rotate(math.Pi / 2)
	assert.InDelta(t, 0, rotated.X, 1e-9)
	assert.InDelta(t, 1, rotated.Y, 1e-9)

	assert.Equal(t, Vec2{0, 1}, v.Perpendicular())
	assert.Equal(t, 0.0, Vec2{3, 7}.Perpendicular().DotProduct(Vec2{3, 7}))
}

func TestCrossAndAngle(t *testing.T) {
	assert.Equal(t, 1.0, Vec2{1, 0}.Cross(Vec2{0, 1}))
	assert.Equal(t, -1.0, Vec2{0, 1}.Cross(Vec2{1, 0}))
	assert.InDelta(t, math.Pi/2, Vec2{1, 0}.AngleTo(Vec2{0, 3}), 1e-9)
	assert.Equal(t, 0.0, Vec2{}.AngleTo(Vec2{1, 1}))
}

func TestReflect(t *testing.T) {
	got := Vec2{1, -1}.Reflect(Vec2{0, 1})
	assert.Equal(t, Vec2{1, 1}, got)
}

func TestDistanceFromPointToLine(t *testing.T) {
	assert.InDelta(t, 5, DistanceFromPointToLine(Vec2{5, 5}, Vec2{0, 0}, Vec2{10, 0}), 1e-9)
	// Beyond the end the distance is to the endpoint
	assert.InDelta(t, 5, DistanceFromPointToLine(Vec2{13, 4}, Vec2{0, 0}, Vec2{10, 0}), 1e-9)
}
