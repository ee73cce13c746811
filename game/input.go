package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/meghashyamc/stealth2d/geometry"
	"github.com/meghashyamc/stealth2d/sim"
)

func getCurrentMousePosition() geometry.Vec2 {
	mouseX, mouseY := ebiten.CursorPosition()
	return geometry.Vec2{X: float64(mouseX), Y: float64(mouseY)}
}

// readInput samples the keyboard and mouse once for the coming tick.
func readInput() sim.Input {
	return sim.Input{
		Up:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:   ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:   ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Sprint: ebiten.IsKeyPressed(ebiten.KeyShift),
		Fire:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Reload: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Aim:    getCurrentMousePosition(),
	}
}
