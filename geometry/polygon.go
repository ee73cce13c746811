package geometry

import "math"

// CreateRegularPolygon approximates a circle with sideCount segments, starting at angle 0.
func CreateRegularPolygon(center Vec2, radius float64, sideCount int) []LineSegment {
	if sideCount <= 0 {
		return nil
	}

	segments := make([]LineSegment, 0, sideCount)
	for i := 0; i < sideCount; i++ {
		angle1 := 2 * math.Pi * float64(i) / float64(sideCount)
		angle2 := 2 * math.Pi * float64(i+1) / float64(sideCount)

		p1 := center.Add(FromAngle(angle1).Scale(radius))
		p2 := center.Add(FromAngle(angle2).Scale(radius))

		segments = append(segments, NewLineSegment(p1, p2))
	}

	return segments
}

// CreatePerpendicularSegment returns a segment of the given length centered on midpoint and
// perpendicular to reference. A zero-length reference yields a degenerate segment at midpoint.
func CreatePerpendicularSegment(reference LineSegment, midpoint Vec2, length float64) LineSegment {
	direction := reference.Direction().Perpendicular().Normalize()
	half := direction.Scale(length / 2)

	return NewLineSegment(midpoint.Sub(half), midpoint.Add(half))
}
