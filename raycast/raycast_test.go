package raycast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/meghashyamc/stealth2d/geometry"
)

func TestCastRayToTargetWithoutObstacles(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		origin := geometry.Vec2{
			X: rapid.Float64Range(-1000, 1000).Draw(t, "ox"),
			Y: rapid.Float64Range(-1000, 1000).Draw(t, "oy"),
		}
		target := geometry.Vec2{
			X: rapid.Float64Range(-1000, 1000).Draw(t, "tx"),
			Y: rapid.Float64Range(-1000, 1000).Draw(t, "ty"),
		}
		infinite := rapid.Bool().Draw(t, "infinite")

		r := New()
		if r.CastRayToTarget(origin, target, nil, infinite) {
			t.Fatalf("ray with no obstacles reported a hit")
		}

		want := target
		if infinite {
			want = origin.Add(target.Sub(origin).Normalize().Scale(MaxRayLength))
		}
		got := r.Rays()[0]
		if got.Start != origin || got.End != want || r.Hits()[0] != want {
			t.Fatalf("ray %v, hit %v, want end %v", got, r.Hits()[0], want)
		}
	})
}

func TestCastRayToTargetStopsAtClosestObstacle(t *testing.T) {
	obstacles := []geometry.Rect{
		geometry.NewRect(80, -10, 10, 20),
		geometry.NewRect(40, -10, 10, 20),
		geometry.NewRect(200, 200, 10, 10),
	}

	r := New()
	blocked := r.CastRayToTarget(geometry.Vec2{X: 0, Y: 0}, geometry.Vec2{X: 100, Y: 0}, obstacles, false)

	require.True(t, blocked)
	require.Equal(t, 1, r.Len())
	assert.InDelta(t, 40, r.Rays()[0].End.X, 1e-9)
	assert.InDelta(t, 0, r.Rays()[0].End.Y, 1e-9)
	assert.Equal(t, r.Rays()[0].End, r.Hits()[0])
}

func TestCastRayToTargetAccumulatesUntilReset(t *testing.T) {
	r := New()
	r.CastRayToTarget(geometry.Vec2{}, geometry.Vec2{X: 10, Y: 0}, nil, false)
	r.CastRayToTarget(geometry.Vec2{}, geometry.Vec2{X: 0, Y: 10}, nil, false)
	assert.Equal(t, 2, r.Len())
	assert.Len(t, r.Hits(), 2)

	r.ResetRays()
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Hits())
}

func TestCastToTargetIsStateless(t *testing.T) {
	ray, blocked := CastToTarget(geometry.Vec2{}, geometry.Vec2{X: 0, Y: 50}, []geometry.Rect{geometry.NewRect(-5, 20, 10, 5)}, true)
	assert.True(t, blocked)
	assert.InDelta(t, 0, ray.End.X, 1e-9)
	assert.InDelta(t, 20, ray.End.Y, 1e-6)
}

func TestCastFieldOfViewBoundaryRays(t *testing.T) {
	r := New()
	r.CastFieldOfView(geometry.Vec2{}, nil, geometry.Vec2{X: 100, Y: 0}, 90)

	require.Equal(t, 2, r.Len())
	for _, ray := range r.Rays() {
		assert.InDelta(t, MaxRayLength, ray.Length(), 1e-6)
		assert.InDelta(t, math.Pi/4, math.Abs(ray.Angle), 1e-9)
	}
}

func TestCastFieldOfViewCornerRays(t *testing.T) {
	// A box straight ahead: all four corners are inside a 90 degree cone
	obstacles := []geometry.Rect{geometry.NewRect(50, -10, 20, 20)}

	r := New()
	r.CastFieldOfView(geometry.Vec2{}, obstacles, geometry.Vec2{X: 100, Y: 0}, 90)

	assert.Equal(t, 2+4*3, r.Len())
	assert.Len(t, r.Hits(), r.Len())

	// A corner behind the viewer is skipped
	behind := []geometry.Rect{geometry.NewRect(-70, -10, 20, 20)}
	r.CastFieldOfView(geometry.Vec2{}, behind, geometry.Vec2{X: 100, Y: 0}, 90)
	assert.Equal(t, 2, r.Len())
}

func TestFieldOfViewIsDeterministic(t *testing.T) {
	obstacles := []geometry.Rect{
		geometry.NewRect(50, -40, 20, 20),
		geometry.NewRect(80, 10, 40, 10),
		geometry.NewRect(-30, 60, 10, 80),
	}
	origin := geometry.Vec2{X: 5, Y: 3}
	center := geometry.Vec2{X: 100, Y: 20}

	r := New()
	r.ResetRays()
	r.CastFieldOfView(origin, obstacles, center, 120)
	r.SortByAngle()
	first := r.Clone()

	r.ResetRays()
	r.CastFieldOfView(origin, obstacles, center, 120)
	r.SortByAngle()

	require.Equal(t, first.Len(), r.Len())
	for i := range r.Rays() {
		assert.Equal(t, first.Rays()[i].Angle, r.Rays()[i].Angle)
		assert.Equal(t, first.Hits()[i], r.Hits()[i])
	}
}

func TestSortByAngleKeepsHitsAligned(t *testing.T) {
	r := FieldOfView(geometry.Vec2{}, []geometry.Rect{geometry.NewRect(50, -10, 20, 20)}, geometry.Vec2{X: 100, Y: 0}, 90)

	for i, ray := range r.Rays() {
		assert.Equal(t, ray.End, r.Hits()[i])
		if i > 0 {
			assert.LessOrEqual(t, r.Rays()[i-1].Angle, ray.Angle)
		}
	}
}

func TestTriangles(t *testing.T) {
	r := New()
	assert.Nil(t, r.Triangles())

	r = FieldOfView(geometry.Vec2{}, nil, geometry.Vec2{X: 100, Y: 0}, 60)
	triangles := r.Triangles()
	require.Len(t, triangles, 1)
	assert.Equal(t, geometry.Vec2{}, triangles[0][0])
}
