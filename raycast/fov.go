package raycast

import (
	"math"

	"github.com/meghashyamc/stealth2d/geometry"
)

// cornerAngleOffset is the angular nudge, in radians, of the two extra rays cast beside
// every obstacle corner so the fan captures what lies past the silhouette edge.
const cornerAngleOffset = 0.0001

// CastFieldOfView resets the recorded rays and casts the fan seen from origin looking at
// fovCenter with an opening of fovDegrees: the two boundary rays, then a ray to every
// obstacle corner inside the cone plus one on each side of it.
func (r *Raycast) CastFieldOfView(origin geometry.Vec2, obstacles []geometry.Rect, fovCenter geometry.Vec2, fovDegrees float64) {
	r.ResetRays()

	halfFOV := fovDegrees * math.Pi / 180 / 2
	reference := geometry.NewLineSegment(origin, fovCenter)
	centralAngle := fovCenter.Sub(origin).Angle()

	leftRayEnd := origin.Add(geometry.FromAngle(centralAngle + halfFOV).Scale(MaxRayLength))
	rightRayEnd := origin.Add(geometry.FromAngle(centralAngle - halfFOV).Scale(MaxRayLength))

	r.FindClosestIntersection(origin, leftRayEnd, obstacles, reference)
	r.FindClosestIntersection(origin, rightRayEnd, obstacles, reference)

	for _, obstacle := range obstacles {
		for _, corner := range obstacle.Corners() {
			toCorner := corner.Sub(origin)
			angleDiff := math.Remainder(toCorner.Angle()-centralAngle, 2*math.Pi)
			if math.Abs(angleDiff) > halfFOV {
				continue
			}

			r.FindClosestIntersection(origin, corner, obstacles, reference)

			direction := toCorner.Normalize()
			leftEnd := origin.Add(direction.Rotate(cornerAngleOffset).Scale(MaxRayLength))
			rightEnd := origin.Add(direction.Rotate(-cornerAngleOffset).Scale(MaxRayLength))

			r.FindClosestIntersection(origin, leftEnd, obstacles, reference)
			r.FindClosestIntersection(origin, rightEnd, obstacles, reference)
		}
	}
}

// FieldOfView returns a fresh, angle-sorted fan without touching any existing Raycast.
func FieldOfView(origin geometry.Vec2, obstacles []geometry.Rect, fovCenter geometry.Vec2, fovDegrees float64) *Raycast {
	r := New()
	r.CastFieldOfView(origin, obstacles, fovCenter, fovDegrees)
	r.SortByAngle()
	return r
}
