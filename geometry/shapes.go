package geometry

// LineSegment is a ray or a wall edge. Angle is left zero by constructors and is filled in
// by the raycaster so that rays can be sorted into a fan.
type LineSegment struct {
	Start Vec2
	End   Vec2
	Angle float64
}

func NewLineSegment(start, end Vec2) LineSegment {
	return LineSegment{Start: start, End: end}
}

func (l LineSegment) Length() float64 {
	return l.End.Sub(l.Start).Magnitude()
}

// Direction returns the unnormalized vector from Start to End.
func (l LineSegment) Direction() Vec2 {
	return l.End.Sub(l.Start)
}

// Reversed swaps the endpoints.
func (l LineSegment) Reversed() LineSegment {
	return LineSegment{Start: l.End, End: l.Start, Angle: l.Angle}
}

// Circle is an entity hitbox.
type Circle struct {
	Center Vec2
	Radius float64
}

func NewCircle(center Vec2, radius float64) Circle {
	if radius < 0 {
		radius = 0
	}
	return Circle{Center: center, Radius: radius}
}

// Rect is an axis-aligned rectangle with Min.X <= Max.X and Min.Y <= Max.Y.
type Rect struct {
	Min Vec2
	Max Vec2
}

// NewRect builds a rectangle from its top-left position and size. Negative sizes are
// clamped to zero so the min/max ordering always holds.
func NewRect(x, y, width, height float64) Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{
		Min: Vec2{x, y},
		Max: Vec2{x + width, y + height},
	}
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) TopLeft() Vec2 {
	return r.Min
}

func (r Rect) TopRight() Vec2 {
	return Vec2{r.Max.X, r.Min.Y}
}

func (r Rect) BottomLeft() Vec2 {
	return Vec2{r.Min.X, r.Max.Y}
}

func (r Rect) BottomRight() Vec2 {
	return r.Max
}

// Corners returns the four corners clockwise from the top-left.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}
}

func (r Rect) Center() Vec2 {
	return r.Min.Lerp(r.Max, 0.5)
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ClosestPoint clamps p into the rectangle axis by axis.
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: clamp(p.X, r.Min.X, r.Max.X),
		Y: clamp(p.Y, r.Min.Y, r.Max.Y),
	}
}

// Intersect is the result of a line intersection test. Position is only meaningful when Hit is set.
type Intersect struct {
	Hit      bool
	Position Vec2
}

func clamp(value, min, max float64) float64 {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}
