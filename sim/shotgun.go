package sim

import (
	"math"
	"math/rand"

	"github.com/meghashyamc/stealth2d/geometry"
	"github.com/meghashyamc/stealth2d/raycast"
)

const (
	MagazineCapacity   = 8
	ReserveCapacity    = 32
	initialReserveAmmo = 8
	pelletCount        = 5
	blastStartAlpha    = 255.0
	// blastFadeRate is how much alpha a blast trace loses per second.
	blastFadeRate = 95.0
)

// ShotgunBlast is one discharge. rays is the fading visual trace; collisionRays is the copy
// used for damage and is emptied one tick after the blast was fired.
type ShotgunBlast struct {
	rays             *raycast.Raycast
	collisionRays    *raycast.Raycast
	collisionChecked bool
	alpha            float64
}

func (b *ShotgunBlast) Rays() []geometry.LineSegment {
	return b.rays.Rays()
}

func (b *ShotgunBlast) CollisionRays() []geometry.LineSegment {
	return b.collisionRays.Rays()
}

func (b *ShotgunBlast) Alpha() float64 {
	return b.alpha
}

type Shotgun struct {
	blasts   []*ShotgunBlast
	magazine int
	reserve  int
	rng      *rand.Rand
}

// NewShotgun returns a shotgun with a full magazine. rng drives the pellet spread.
func NewShotgun(rng *rand.Rand) *Shotgun {
	return &Shotgun{
		magazine: MagazineCapacity,
		reserve:  initialReserveAmmo,
		rng:      rng,
	}
}

func (s *Shotgun) Magazine() int {
	return s.magazine
}

func (s *Shotgun) Reserve() int {
	return s.reserve
}

func (s *Shotgun) ReserveFull() bool {
	return s.reserve >= ReserveCapacity
}

func (s *Shotgun) Blasts() []*ShotgunBlast {
	return s.blasts
}

// AddReserveAmmo adds to the reserve, capped at ReserveCapacity.
func (s *Shotgun) AddReserveAmmo(amount int) {
	s.reserve = min(s.reserve+amount, ReserveCapacity)
}

// Shoot fires pelletCount infinite rays from origin towards random points of the disc of the
// given radius around aim. It returns false, and fires nothing, when the magazine is empty.
func (s *Shotgun) Shoot(obstacles []geometry.Rect, origin, aim geometry.Vec2, radius float64) bool {
	if s.magazine <= 0 {
		return false
	}
	s.magazine--

	rays := raycast.New()
	for i := 0; i < pelletCount; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		distance := math.Sqrt(s.rng.Float64()) * radius

		pellet := aim.Add(geometry.FromAngle(angle).Scale(distance))
		rays.CastRayToTarget(origin, pellet, obstacles, true)
	}

	s.blasts = append(s.blasts, &ShotgunBlast{
		rays:          rays,
		collisionRays: rays.Clone(),
		alpha:         blastStartAlpha,
	})

	return true
}

// Reload moves rounds from the reserve into the magazine. It reports whether anything moved.
func (s *Shotgun) Reload() bool {
	moved := min(MagazineCapacity-s.magazine, s.reserve)
	if moved <= 0 {
		return false
	}

	s.magazine += moved
	s.reserve -= moved
	return true
}

// Empty drops all ammo and every blast still on screen.
func (s *Shotgun) Empty() {
	s.magazine = 0
	s.reserve = 0
	s.blasts = nil
}

// Update retires the collision rays of blasts that have already been checked once, marks
// the new ones as checked and fades the traces out.
func (s *Shotgun) Update(dt float64) {
	alive := s.blasts[:0]
	for _, blast := range s.blasts {
		if blast.collisionChecked {
			blast.collisionRays.ResetRays()
		} else {
			blast.collisionChecked = true
		}

		blast.alpha -= blastFadeRate * dt
		if blast.alpha > 0 {
			alive = append(alive, blast)
		}
	}

	clear(s.blasts[len(alive):])
	s.blasts = alive
}

func (s *Shotgun) Draw(r Renderer) {
	for _, blast := range s.blasts {
		c := colorShotgunBlast
		c.A = uint8(min(blast.alpha, 255))
		for _, ray := range blast.Rays() {
			r.DrawLine(ray, c)
		}
	}
}
