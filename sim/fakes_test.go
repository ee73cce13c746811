package sim

import (
	"image/color"
	"math/rand"

	"github.com/meghashyamc/stealth2d/geometry"
	"github.com/meghashyamc/stealth2d/level"
	"github.com/meghashyamc/stealth2d/raycast"
	"github.com/meghashyamc/stealth2d/world"
)

const tick = 1.0 / 60

type recordingSounds struct {
	played []Sound
}

func (s *recordingSounds) Play(sound Sound) int {
	s.played = append(s.played, sound)
	return len(s.played) - 1
}

func (s *recordingSounds) count(sound Sound) int {
	n := 0
	for _, played := range s.played {
		if played == sound {
			n++
		}
	}
	return n
}

type countingRenderer struct {
	lines, rects, triangles, texts int
}

func (r *countingRenderer) DrawLine(geometry.LineSegment, color.RGBA)           { r.lines++ }
func (r *countingRenderer) DrawRect(geometry.Rect, color.RGBA, bool)            { r.rects++ }
func (r *countingRenderer) DrawTriangle([3]geometry.Vec2, color.RGBA)           { r.triangles++ }
func (r *countingRenderer) DrawText(string, float64, geometry.Vec2, color.RGBA) { r.texts++ }

type fakeLevels map[uint16]*level.Level

func (f fakeLevels) LoadOrFallback(id uint16) *level.Level {
	if lvl, ok := f[id]; ok {
		lvl.ID = id
		return lvl
	}
	return level.EmptyRoom(id)
}

type recordingStore struct {
	saves []int
}

func (s *recordingStore) Save(flags *world.Flags) error {
	s.saves = append(s.saves, flags.Len())
	return nil
}

var testLevelIDs = LevelIDs{Start: 1, GameOver: 999}

func newTestPlayer(sounds SoundPlayer) *Player {
	return NewPlayer(testLevelIDs, sounds, rand.New(rand.NewSource(1)))
}

func patrol(start, end geometry.Vec2) geometry.LineSegment {
	return geometry.NewLineSegment(start, end)
}

// blastAt returns a blast whose collision rays all go from origin through target.
func blastAt(origin, target geometry.Vec2, pellets int) *ShotgunBlast {
	blast := &ShotgunBlast{alpha: blastStartAlpha}
	blast.rays = newRays(origin, target, pellets)
	blast.collisionRays = blast.rays.Clone()
	return blast
}

func newRays(origin, target geometry.Vec2, count int) *raycast.Raycast {
	rays := raycast.New()
	for i := 0; i < count; i++ {
		rays.CastRayToTarget(origin, target, nil, true)
	}
	return rays
}
