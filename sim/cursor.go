package sim

import (
	"github.com/meghashyamc/stealth2d/geometry"
)

const (
	cursorMinRadius   = 15.0
	cursorMaxRadius   = 85.0
	cursorMinDistance = 30.0
	cursorMaxDistance = 850.0
)

// Cursor is the aiming reticle. Its radius, which is also the shotgun spread, grows with the
// distance between the player and the aim point.
type Cursor struct {
	position geometry.Vec2
	radius   float64
}

func NewCursor() *Cursor {
	return &Cursor{radius: cursorMinRadius}
}

func (c *Cursor) Update(aim, playerPosition geometry.Vec2) {
	c.position = aim

	distance := max(cursorMinDistance, min(aim.DistanceTo(playerPosition), cursorMaxDistance))
	t := (distance - cursorMinDistance) / (cursorMaxDistance - cursorMinDistance)
	c.radius = cursorMinRadius + (cursorMaxRadius-cursorMinRadius)*t
}

func (c *Cursor) Position() geometry.Vec2 {
	return c.position
}

func (c *Cursor) Radius() float64 {
	return c.radius
}

func (c *Cursor) Draw(r Renderer) {
	drawPolygon(r, geometry.CreateRegularPolygon(c.position, c.radius, hitboxSides), colorCursor)
	drawPolygon(r, geometry.CreateRegularPolygon(c.position, cursorCenterRadius, hitboxSides), colorCursor)
}
