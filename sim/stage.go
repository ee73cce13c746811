package sim

import (
	"github.com/meghashyamc/stealth2d/geometry"
	"github.com/meghashyamc/stealth2d/level"
	"github.com/meghashyamc/stealth2d/logger"
	"github.com/meghashyamc/stealth2d/world"
)

// Stage is the live content of the loaded level. Obstacles are read-only during a tick;
// pickups and enemies are removed as they are used up.
type Stage struct {
	LevelID     uint16
	Obstacles   []geometry.Rect
	Transitions []level.Transition
	AmmoCrates  []level.AmmoCrate
	Keys        []level.Key
	Enemies     []*Enemy
	Texts       []level.Text
}

// NewStage spawns the content of lvl. Filtering out what is already unlocked is up to the
// caller.
func NewStage(lvl *level.Level, log logger.Logger) *Stage {
	stage := &Stage{
		LevelID:     lvl.ID,
		Obstacles:   lvl.Obstacles(),
		Transitions: lvl.Transitions,
		AmmoCrates:  append([]level.AmmoCrate(nil), lvl.AmmoCrates...),
		Keys:        append([]level.Key(nil), lvl.Keys...),
		Texts:       lvl.Texts,
	}

	for _, spawn := range lvl.Enemies {
		stage.Enemies = append(stage.Enemies, NewEnemyFromSpawn(spawn, log))
	}

	return stage
}

// removeDead drops the enemies that died this tick.
func (s *Stage) removeDead() {
	alive := s.Enemies[:0]
	for _, enemy := range s.Enemies {
		if !enemy.Dead() {
			alive = append(alive, enemy)
		}
	}

	clear(s.Enemies[len(alive):])
	s.Enemies = alive
}

func (s *Stage) Draw(r Renderer, w world.World) {
	for _, text := range s.Texts {
		r.DrawText(text.Content, text.Size, geometry.Vec2{X: text.X, Y: text.Y}, text.Color())
	}

	for _, wall := range s.Obstacles {
		r.DrawRect(wall, colorWall, true)
	}

	for _, transition := range s.Transitions {
		c := colorOpenDoor
		if !transition.Unlocked(w) {
			c = colorLockedDoor
		}
		r.DrawRect(transition.Rect(), c, false)
	}

	for _, crate := range s.AmmoCrates {
		r.DrawRect(crate.Rect(), colorAmmoCrate, true)
	}

	for _, key := range s.Keys {
		r.DrawRect(key.Rect(), colorKey, true)
	}

	for _, enemy := range s.Enemies {
		enemy.Draw(r)
	}
}
