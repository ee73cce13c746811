package geometry

import "math"

// parallelEpsilon is the cross product magnitude below which two lines are treated as parallel.
const parallelEpsilon = 1e-8

// ClosestPointOnLine projects point onto the line through segment and clamps the projection
// to the segment. A zero-length segment returns its start point.
func ClosestPointOnLine(point Vec2, segment LineSegment) Vec2 {
	lineVec := segment.End.Sub(segment.Start)
	pointVec := point.Sub(segment.Start)

	lengthSquared := lineVec.MagnitudeSquared()
	if lengthSquared == 0 {
		return segment.Start
	}

	projection := clamp(pointVec.DotProduct(lineVec)/lengthSquared, 0, 1)

	return segment.Start.Add(lineVec.Scale(projection))
}

// LineCircleIntersect reports whether segment touches circle. The hit position is the
// closest point on the segment to the circle center, not the true entry point.
func LineCircleIntersect(segment LineSegment, circle Circle) Intersect {
	closestPoint := ClosestPointOnLine(circle.Center, segment)

	if closestPoint.Sub(circle.Center).MagnitudeSquared() > circle.Radius*circle.Radius {
		return Intersect{}
	}

	return Intersect{Hit: true, Position: closestPoint}
}

// LineRectIntersect tests a segment against an axis-aligned rectangle using the slab method.
// If an endpoint lies inside the rectangle, that endpoint is returned as the hit position.
func LineRectIntersect(segment LineSegment, rect Rect) Intersect {
	x1, y1 := segment.Start.X, segment.Start.Y
	x2, y2 := segment.End.X, segment.End.Y

	// Segment bounding box entirely on one side of the rect
	if (x1 < rect.Min.X && x2 < rect.Min.X) || (x1 > rect.Max.X && x2 > rect.Max.X) ||
		(y1 < rect.Min.Y && y2 < rect.Min.Y) || (y1 > rect.Max.Y && y2 > rect.Max.Y) {
		return Intersect{}
	}

	if rect.Contains(segment.Start) {
		return Intersect{Hit: true, Position: segment.Start}
	}
	if rect.Contains(segment.End) {
		return Intersect{Hit: true, Position: segment.End}
	}

	dx := x2 - x1
	dy := y2 - y1

	tMin := 0.0
	tMax := 1.0

	// An axis with no movement was already range-checked by the reject above
	if dx != 0 {
		tx1 := (rect.Min.X - x1) / dx
		tx2 := (rect.Max.X - x1) / dx

		tMin = math.Max(tMin, math.Min(tx1, tx2))
		tMax = math.Min(tMax, math.Max(tx1, tx2))
	}

	if dy != 0 {
		ty1 := (rect.Min.Y - y1) / dy
		ty2 := (rect.Max.Y - y1) / dy

		tMin = math.Max(tMin, math.Min(ty1, ty2))
		tMax = math.Min(tMax, math.Max(ty1, ty2))
	}

	if tMax < tMin || tMax < 0 || tMin > 1 {
		return Intersect{}
	}

	t := tMin
	if t <= 0 {
		t = tMax
	}

	return Intersect{
		Hit:      true,
		Position: Vec2{x1 + t*dx, y1 + t*dy},
	}
}

// LineLineIntersect intersects segment p1-p2 with segment q1-q2. Parallel and collinear
// segments never report a hit.
func LineLineIntersect(p1, p2, q1, q2 Vec2) Intersect {
	r := p2.Sub(p1)
	s := q2.Sub(q1)
	qp := q1.Sub(p1)

	rxs := r.Cross(s)
	if math.Abs(rxs) < parallelEpsilon {
		return Intersect{}
	}

	t := qp.Cross(s) / rxs
	u := qp.Cross(r) / rxs

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Intersect{}
	}

	return Intersect{Hit: true, Position: p1.Add(r.Scale(t))}
}

func CircleCircleCollide(a, b Circle) bool {
	radiusSum := a.Radius + b.Radius
	return a.Center.Sub(b.Center).MagnitudeSquared() <= radiusSum*radiusSum
}

func RectRectCollide(a, b Rect) bool {
	if a.Max.X < b.Min.X || b.Max.X < a.Min.X {
		return false
	}
	if a.Max.Y < b.Min.Y || b.Max.Y < a.Min.Y {
		return false
	}
	return true
}

func RectCircleCollide(rect Rect, circle Circle) bool {
	closest := rect.ClosestPoint(circle.Center)
	return closest.Sub(circle.Center).MagnitudeSquared() <= circle.Radius*circle.Radius
}
