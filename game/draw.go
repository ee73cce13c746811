package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/meghashyamc/stealth2d/assets"
	"github.com/meghashyamc/stealth2d/geometry"
)

const lineWidth = 1.5

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// screenRenderer draws simulation geometry onto an ebiten image.
type screenRenderer struct {
	screen *ebiten.Image
}

// straight converts a straight alpha color into what ebiten expects.
func straight(c color.RGBA) color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, c.A}
}

func (r screenRenderer) DrawLine(line geometry.LineSegment, c color.RGBA) {
	vector.StrokeLine(r.screen,
		float32(line.Start.X), float32(line.Start.Y),
		float32(line.End.X), float32(line.End.Y),
		lineWidth, straight(c), true)
}

func (r screenRenderer) DrawRect(rect geometry.Rect, c color.RGBA, filled bool) {
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, h := float32(rect.Width()), float32(rect.Height())

	if filled {
		vector.DrawFilledRect(r.screen, x, y, w, h, straight(c), false)
		return
	}
	vector.StrokeRect(r.screen, x, y, w, h, lineWidth, straight(c), false)
}

func (r screenRenderer) DrawTriangle(triangle [3]geometry.Vec2, c color.RGBA) {
	cr, cg, cb, ca := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255

	vertices := make([]ebiten.Vertex, 0, 3)
	for _, point := range triangle {
		vertices = append(vertices, ebiten.Vertex{
			DstX:   float32(point.X),
			DstY:   float32(point.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr * ca,
			ColorG: cg * ca,
			ColorB: cb * ca,
			ColorA: ca,
		})
	}

	r.screen.DrawTriangles(vertices, []uint16{0, 1, 2}, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func (r screenRenderer) DrawText(content string, size float64, position geometry.Vec2, c color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(position.X, position.Y)
	op.ColorScale.ScaleWithColor(straight(c))
	text.Draw(r.screen, content, assets.Face(size), op)
}
