package sim

import "github.com/meghashyamc/stealth2d/geometry"

// Input is sampled once per tick before the update pass. Fire and Reload are edge
// triggered; the movement flags are held.
type Input struct {
	Up     bool
	Down   bool
	Left   bool
	Right  bool
	Sprint bool
	Fire   bool
	Reload bool
	Aim    geometry.Vec2
}

type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (in Input) directions() []Direction {
	var directions []Direction
	if in.Up {
		directions = append(directions, DirectionUp)
	}
	if in.Down {
		directions = append(directions, DirectionDown)
	}
	if in.Left {
		directions = append(directions, DirectionLeft)
	}
	if in.Right {
		directions = append(directions, DirectionRight)
	}
	return directions
}
