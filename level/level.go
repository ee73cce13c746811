// Package level describes the contents of a level and loads level files.
package level

import (
	"image/color"

	"github.com/meghashyamc/stealth2d/geometry"
	"github.com/meghashyamc/stealth2d/world"
)

const (
	ammoCrateWidth  = 30
	ammoCrateHeight = 20
	keySize         = 15
)

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) Vec2() geometry.Vec2 {
	return geometry.Vec2{X: p.X, Y: p.Y}
}

type Wall struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (w Wall) Rect() geometry.Rect {
	return geometry.NewRect(w.X, w.Y, w.Width, w.Height)
}

type EnemySpawn struct {
	ID        uint16 `yaml:"id"`
	Type      string `yaml:"type"`
	Location  Point  `yaml:"location"`
	PathStart Point  `yaml:"pathStart"`
	PathEnd   Point  `yaml:"pathEnd"`
}

func (e EnemySpawn) Path() geometry.LineSegment {
	return geometry.NewLineSegment(e.PathStart.Vec2(), e.PathEnd.Vec2())
}

type AmmoCrate struct {
	ID        uint16  `yaml:"id"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	AmmoCount int     `yaml:"ammoCount"`
}

func (a AmmoCrate) Rect() geometry.Rect {
	return geometry.NewRect(a.X, a.Y, ammoCrateWidth, ammoCrateHeight)
}

type Key struct {
	ID uint16  `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

func (k Key) Rect() geometry.Rect {
	return geometry.NewRect(k.X, k.Y, keySize, keySize)
}

// Transition moves the player to another level. A transition that requires a key is solid
// until that key has been picked up.
type Transition struct {
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	NextLevelID  uint16  `yaml:"nextLevelId"`
	NextPosition Point   `yaml:"nextPosition"`
	RequiresKey  bool    `yaml:"requiresKey"`
	KeyID        uint16  `yaml:"keyId"`
}

func (t Transition) Rect() geometry.Rect {
	return geometry.NewRect(t.X, t.Y, t.Width, t.Height)
}

// Unlocked reports whether the player may pass through.
func (t Transition) Unlocked(w world.World) bool {
	return !t.RequiresKey || w.IsUnlocked(world.CategoryKeys, t.KeyID)
}

type Text struct {
	Content string  `yaml:"content"`
	Size    float64 `yaml:"size"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	R       uint8   `yaml:"r"`
	G       uint8   `yaml:"g"`
	B       uint8   `yaml:"b"`
	A       uint8   `yaml:"a"`
}

func (t Text) Color() color.RGBA {
	return color.RGBA{t.R, t.G, t.B, t.A}
}

type Level struct {
	ID          uint16       `yaml:"-"`
	Name        string       `yaml:"name"`
	PlayerStart *Point       `yaml:"playerStart"`
	Walls       []Wall       `yaml:"walls"`
	Enemies     []EnemySpawn `yaml:"enemies"`
	AmmoCrates  []AmmoCrate  `yaml:"ammoCrates"`
	Keys        []Key        `yaml:"keys"`
	Transitions []Transition `yaml:"transitions"`
	Texts       []Text       `yaml:"texts"`
}

// Obstacles returns the wall rectangles in file order.
func (l *Level) Obstacles() []geometry.Rect {
	obstacles := make([]geometry.Rect, 0, len(l.Walls))
	for _, wall := range l.Walls {
		obstacles = append(obstacles, wall.Rect())
	}
	return obstacles
}

// WithoutUnlocked returns a copy of the level without the enemies, ammo crates and keys
// whose ids are already flagged, so used-up objects are never spawned again.
func (l *Level) WithoutUnlocked(w world.World) *Level {
	filtered := *l
	filtered.Enemies = nil
	filtered.AmmoCrates = nil
	filtered.Keys = nil

	for _, enemy := range l.Enemies {
		if !w.IsUnlocked(world.CategoryEnemies, enemy.ID) {
			filtered.Enemies = append(filtered.Enemies, enemy)
		}
	}
	for _, crate := range l.AmmoCrates {
		if !w.IsUnlocked(world.CategoryAmmoCrates, crate.ID) {
			filtered.AmmoCrates = append(filtered.AmmoCrates, crate)
		}
	}
	for _, key := range l.Keys {
		if !w.IsUnlocked(world.CategoryKeys, key.ID) {
			filtered.Keys = append(filtered.Keys, key)
		}
	}

	return &filtered
}
