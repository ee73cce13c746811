package geometry

import (
	"math"
)

// Vec2 is a 2D vector. Methods return new values; the receiver is never mutated.
type Vec2 struct {
	X float64
	Y float64
}

func Zero() Vec2 {
	return Vec2{}
}

// DotProduct calculates the dot product of two vectors
func (v Vec2) DotProduct(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product of v and other.
func (v Vec2) Cross(other Vec2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// reflected = incident - 2*(incident·normal)*normal
func (v Vec2) Reflect(normal Vec2) Vec2 {
	dotProduct := v.DotProduct(normal)

	reflectedX := v.X - 2*dotProduct*normal.X
	reflectedY := v.Y - 2*dotProduct*normal.Y

	return Vec2{
		X: reflectedX,
		Y: reflectedY,
	}
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// AngleTo calculates the angle between this vector and another vector in radians
func (v Vec2) AngleTo(other Vec2) float64 {
	dot := v.DotProduct(other)
	magV := v.Magnitude()
	magOther := other.Magnitude()

	// Handle zero-length vectors
	if magV == 0 || magOther == 0 {
		return 0
	}

	// cos(θ) = (A · B) / (|A| * |B|)
	cosTheta := dot / (magV * magOther)

	// Clamp to [-1, 1] to handle floating point precision issues
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}

	return math.Acos(cosTheta)
}

// Normalize returns the unit vector in v's direction, or the zero vector when v has no length.
func (v Vec2) Normalize() Vec2 {
	magnitude := math.Sqrt(v.X*v.X + v.Y*v.Y)
	if magnitude == 0 {
		return Vec2{0, 0}
	}
	return Vec2{v.X / magnitude, v.Y / magnitude}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{v.X * factor, v.Y * factor}
}

// Rotate returns v rotated counterclockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Perpendicular returns v rotated by 90 degrees.
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{-v.Y, v.X}
}

func (v Vec2) DistanceTo(other Vec2) float64 {
	return other.Sub(v).Magnitude()
}

func (v Vec2) Lerp(other Vec2, t float64) Vec2 {
	return Vec2{v.X + (other.X-v.X)*t, v.Y + (other.Y-v.Y)*t}
}

// Angle returns the direction of v in radians, measured from the +X axis.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func FromAngle(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{cos, sin}
}
