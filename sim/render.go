package sim

import (
	"image/color"

	"github.com/meghashyamc/stealth2d/geometry"
)

// Renderer receives the geometry of a frame. The simulation never draws by itself. Colors
// carry straight, not premultiplied, alpha.
type Renderer interface {
	DrawLine(line geometry.LineSegment, c color.RGBA)
	DrawRect(rect geometry.Rect, c color.RGBA, filled bool)
	DrawTriangle(triangle [3]geometry.Vec2, c color.RGBA)
	DrawText(content string, size float64, position geometry.Vec2, c color.RGBA)
}

var (
	colorWall         = color.RGBA{90, 90, 110, 255}
	colorLockedDoor   = color.RGBA{200, 40, 40, 255}
	colorOpenDoor     = color.RGBA{40, 200, 80, 255}
	colorAmmoCrate    = color.RGBA{200, 160, 40, 255}
	colorKey          = color.RGBA{240, 220, 60, 255}
	colorEnemy        = color.RGBA{255, 0, 0, 255}
	colorEnemySight   = color.RGBA{255, 255, 160, 40}
	colorEnemyProbe   = color.RGBA{255, 255, 255, 255}
	colorPlayer       = color.RGBA{0, 255, 0, 255}
	colorPlayerDead   = color.RGBA{120, 120, 120, 255}
	colorNoise        = color.RGBA{0, 220, 255, 200}
	colorCursor       = color.RGBA{255, 0, 0, 255}
	colorShotgunBlast = color.RGBA{255, 0, 0, 255}
)

const (
	hitboxSides        = 8
	cursorCenterRadius = 5.0
)

func drawPolygon(r Renderer, segments []geometry.LineSegment, c color.RGBA) {
	for _, segment := range segments {
		r.DrawLine(segment, c)
	}
}
