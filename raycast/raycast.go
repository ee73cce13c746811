// Package raycast casts rays from a point against rectangular obstacles and keeps the
// resolved rays so they can be drawn as lines or as a visibility fan.
package raycast

import (
	"cmp"
	"math"
	"slices"

	"github.com/meghashyamc/stealth2d/geometry"
)

// MaxRayLength is how far an infinite ray travels.
const MaxRayLength = 100000.0

// Raycast holds the rays resolved by a sequence of casts and their end points. Casts
// accumulate until ResetRays is called.
type Raycast struct {
	rays []geometry.LineSegment
	hits []geometry.Vec2
}

func New() *Raycast {
	return &Raycast{}
}

// ResetRays drops every ray recorded so far.
func (r *Raycast) ResetRays() {
	r.rays = r.rays[:0]
	r.hits = r.hits[:0]
}

func (r *Raycast) Rays() []geometry.LineSegment {
	return r.rays
}

func (r *Raycast) Hits() []geometry.Vec2 {
	return r.hits
}

func (r *Raycast) Len() int {
	return len(r.rays)
}

// Clone returns a deep copy that shares no storage with r.
func (r *Raycast) Clone() *Raycast {
	return &Raycast{
		rays: slices.Clone(r.rays),
		hits: slices.Clone(r.hits),
	}
}

// CastRayToTarget casts a ray from origin to target, or past it up to MaxRayLength when
// infiniteLength is set. It returns true when an obstacle blocked the ray. The resolved
// ray is recorded either way.
func (r *Raycast) CastRayToTarget(origin, target geometry.Vec2, obstacles []geometry.Rect, infiniteLength bool) bool {
	rayEnd := target
	if infiniteLength {
		rayEnd = origin.Add(target.Sub(origin).Normalize().Scale(MaxRayLength))
	}

	return r.FindClosestIntersection(origin, rayEnd, obstacles, geometry.NewLineSegment(origin, origin))
}

// FindClosestIntersection tests origin->rayEnd against every obstacle and records the ray
// cut at the nearest hit, or the full ray when nothing was struck. The recorded ray carries
// its signed angle relative to reference.
func (r *Raycast) FindClosestIntersection(origin, rayEnd geometry.Vec2, obstacles []geometry.Rect, reference geometry.LineSegment) bool {
	ray, hit, blocked := closestIntersection(origin, rayEnd, obstacles, reference)

	r.rays = append(r.rays, ray)
	r.hits = append(r.hits, hit)

	return blocked
}

// SortByAngle orders the recorded rays by their angle, keeping hits aligned with rays.
func (r *Raycast) SortByAngle() {
	order := make([]int, len(r.rays))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(r.rays[a].Angle, r.rays[b].Angle)
	})

	rays := make([]geometry.LineSegment, len(r.rays))
	hits := make([]geometry.Vec2, len(r.hits))
	for i, idx := range order {
		rays[i] = r.rays[idx]
		hits[i] = r.hits[idx]
	}
	r.rays = rays
	r.hits = hits
}

// Triangles fans the recorded rays into triangles sharing the ray origin. Rays must be
// sorted by angle first. The fan does not wrap from the last ray back to the first.
func (r *Raycast) Triangles() [][3]geometry.Vec2 {
	if len(r.rays) < 2 {
		return nil
	}

	triangles := make([][3]geometry.Vec2, 0, len(r.rays)-1)
	for i := 0; i < len(r.rays)-1; i++ {
		triangles = append(triangles, [3]geometry.Vec2{
			r.rays[i].Start,
			r.rays[i].End,
			r.rays[i+1].End,
		})
	}

	return triangles
}

// CastToTarget is the stateless form of CastRayToTarget.
func CastToTarget(origin, target geometry.Vec2, obstacles []geometry.Rect, infiniteLength bool) (geometry.LineSegment, bool) {
	var r Raycast
	blocked := r.CastRayToTarget(origin, target, obstacles, infiniteLength)
	return r.rays[0], blocked
}

func closestIntersection(origin, rayEnd geometry.Vec2, obstacles []geometry.Rect, reference geometry.LineSegment) (geometry.LineSegment, geometry.Vec2, bool) {
	candidate := geometry.NewLineSegment(origin, rayEnd)
	closestHit := rayEnd
	closestDistance := math.Inf(1)
	blocked := false

	for _, obstacle := range obstacles {
		intersection := geometry.LineRectIntersect(candidate, obstacle)
		if !intersection.Hit {
			continue
		}

		blocked = true
		if distance := intersection.Position.Sub(origin).MagnitudeSquared(); distance < closestDistance {
			closestDistance = distance
			closestHit = intersection.Position
		}
	}

	ray := geometry.NewLineSegment(origin, closestHit)
	ray.Angle = angleBetween(ray, reference)

	return ray, closestHit, blocked
}

// angleBetween is the signed angle from ray to reference.
func angleBetween(ray, reference geometry.LineSegment) float64 {
	rayVec := ray.Direction()
	refVec := reference.Direction()

	return math.Atan2(rayVec.Cross(refVec), rayVec.DotProduct(refVec))
}
