package geometry

// DistanceFromPointToLine calculates the shortest distance from a point to a line segment
func DistanceFromPointToLine(point, lineStart, lineEnd Vec2) float64 {
	closest := ClosestPointOnLine(point, NewLineSegment(lineStart, lineEnd))
	return point.DistanceTo(closest)
}
