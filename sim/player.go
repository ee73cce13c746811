package sim

import (
	"math"
	"math/rand"

	"github.com/meghashyamc/stealth2d/geometry"
	"github.com/meghashyamc/stealth2d/world"
)

const (
	playerHitboxRadius = 10.0
	walkingSpeed       = 30.0
	sprintingSpeed     = 60.0
	// playerDamping is applied to the velocity every tick.
	playerDamping = 0.9
	// slideFriction scales the velocity left after sliding along a wall.
	slideFriction = 0.8
	// noiseDecay is the factor noise is multiplied by every 1/60 s.
	noiseDecay = 0.9
)

var defaultPlayerStart = geometry.Vec2{X: 600, Y: 400}

// LevelIDs are the levels the player is sent to when dying and when respawning.
type LevelIDs struct {
	Start    uint16
	GameOver uint16
}

type Player struct {
	position     geometry.Vec2
	velocity     geometry.Vec2
	hitboxRadius float64
	speed        float64
	noise        float64
	dead         bool
	shotgun      *Shotgun
	cursor       *Cursor
	levels       LevelIDs
	sounds       SoundPlayer
	rng          *rand.Rand
}

func NewPlayer(levels LevelIDs, sounds SoundPlayer, rng *rand.Rand) *Player {
	return &Player{
		position:     defaultPlayerStart,
		hitboxRadius: playerHitboxRadius,
		speed:        walkingSpeed,
		shotgun:      NewShotgun(rng),
		cursor:       NewCursor(),
		levels:       levels,
		sounds:       sounds,
		rng:          rng,
	}
}

func (p *Player) Position() geometry.Vec2 {
	return p.position
}

// SetPosition teleports the player and stops it.
func (p *Player) SetPosition(position geometry.Vec2) {
	p.position = position
	p.velocity = geometry.Zero()
}

func (p *Player) Velocity() geometry.Vec2 {
	return p.velocity
}

func (p *Player) HitboxRadius() float64 {
	return p.hitboxRadius
}

func (p *Player) Hitbox() geometry.Circle {
	return geometry.NewCircle(p.position, p.hitboxRadius)
}

func (p *Player) Noise() float64 {
	return p.noise
}

func (p *Player) Dead() bool {
	return p.dead
}

func (p *Player) Shotgun() *Shotgun {
	return p.shotgun
}

func (p *Player) Cursor() *Cursor {
	return p.cursor
}

// SetSprinting switches between the walking and sprinting impulse.
func (p *Player) SetSprinting(sprinting bool) {
	if sprinting {
		p.speed = sprintingSpeed
		return
	}
	p.speed = walkingSpeed
}

// Move adds one tick worth of impulse in the given direction.
func (p *Player) Move(dir Direction) {
	switch dir {
	case DirectionUp:
		p.velocity.Y -= p.speed
	case DirectionDown:
		p.velocity.Y += p.speed
	case DirectionLeft:
		p.velocity.X -= p.speed
	case DirectionRight:
		p.velocity.X += p.speed
	}
}

// Shoot fires the shotgun at the cursor. A shot that leaves the barrel makes noise.
func (p *Player) Shoot(obstacles []geometry.Rect, aim geometry.Vec2) bool {
	if !p.shotgun.Shoot(obstacles, p.position, aim, p.cursor.Radius()) {
		return false
	}

	p.noise = 30 * math.Pow(p.noise+1, 0.3)
	p.sounds.Play(SoundShotFired)
	return true
}

func (p *Player) Reload() bool {
	if !p.shotgun.Reload() {
		return false
	}

	p.sounds.Play(SoundReload)
	return true
}

// HandleInput applies one tick of input: reload, fire, then movement.
func (p *Player) HandleInput(in Input, obstacles []geometry.Rect) {
	if in.Reload {
		p.Reload()
	}
	if in.Fire {
		p.Shoot(obstacles, in.Aim)
	}

	p.SetSprinting(in.Sprint)
	for _, dir := range in.directions() {
		p.Move(dir)
	}
}

// Update integrates the player and resolves, in order, walls, transitions, pickups and
// enemies. Pickups are removed from the stage when collected.
func (p *Player) Update(dt float64, stage *Stage, aim geometry.Vec2, w world.World) {
	p.decayNoise(dt)

	p.position = p.position.Add(p.velocity.Scale(dt))
	p.velocity = p.velocity.Scale(playerDamping)

	p.ResolveWallCollisions(stage.Obstacles)

	if !p.checkTransitions(stage, w) {
		p.checkAmmoPickups(stage, w)
		p.checkKeyPickups(stage, w)
		p.checkEnemyCollisions(stage, w)
	}

	p.cursor.Update(aim, p.position)
	p.shotgun.Update(dt)
}

func (p *Player) decayNoise(dt float64) {
	if p.noise <= p.hitboxRadius {
		p.noise = 0
		return
	}
	p.noise *= math.Pow(noiseDecay, dt*60)
}

// ResolveWallCollisions pushes the player out of every overlapping rect and lets it slide
// along the surface.
func (p *Player) ResolveWallCollisions(walls []geometry.Rect) {
	p.resolvePenetration(walls)
}

func (p *Player) resolvePenetration(rects []geometry.Rect) {
	collided := false
	totalCorrection := geometry.Zero()

	for _, rect := range rects {
		if !geometry.RectCircleCollide(rect, p.Hitbox()) {
			continue
		}

		closest := rect.ClosestPoint(p.position)
		penetration := p.position.Sub(closest)
		distance := penetration.Magnitude()

		// Center inside the rect, no direction to push along
		if distance == 0 {
			continue
		}

		if depth := p.hitboxRadius - distance; depth > 0 {
			totalCorrection = totalCorrection.Add(penetration.Normalize().Scale(depth))
			collided = true
		}
	}

	if !collided {
		return
	}

	p.position = p.position.Add(totalCorrection)

	normal := totalCorrection.Normalize()
	if dot := p.velocity.DotProduct(normal); dot < 0 {
		p.velocity = p.velocity.Sub(normal.Scale(dot)).Scale(slideFriction)
	}
}

// checkTransitions walks through the first unlocked transition touched and blocks on
// locked ones. It reports whether the player left the level.
func (p *Player) checkTransitions(stage *Stage, w world.World) bool {
	var locked []geometry.Rect

	for _, transition := range stage.Transitions {
		rect := transition.Rect()
		if !geometry.RectCircleCollide(rect, p.Hitbox()) {
			continue
		}

		if !transition.Unlocked(w) {
			locked = append(locked, rect)
			continue
		}

		p.SetPosition(transition.NextPosition.Vec2())
		w.RequestLevelLoad(transition.NextLevelID)
		return true
	}

	p.resolvePenetration(locked)
	return false
}

func (p *Player) checkAmmoPickups(stage *Stage, w world.World) {
	if p.shotgun.ReserveFull() {
		return
	}

	for i, crate := range stage.AmmoCrates {
		if !geometry.RectCircleCollide(crate.Rect(), p.Hitbox()) {
			continue
		}

		p.shotgun.AddReserveAmmo(crate.AmmoCount)
		w.MarkUnlocked(world.CategoryAmmoCrates, crate.ID)
		stage.AmmoCrates = append(stage.AmmoCrates[:i], stage.AmmoCrates[i+1:]...)
		p.sounds.Play(SoundAmmoPickedUp)
		return
	}
}

func (p *Player) checkKeyPickups(stage *Stage, w world.World) {
	for i, key := range stage.Keys {
		if !geometry.RectCircleCollide(key.Rect(), p.Hitbox()) {
			continue
		}

		w.MarkUnlocked(world.CategoryKeys, key.ID)
		stage.Keys = append(stage.Keys[:i], stage.Keys[i+1:]...)
		p.sounds.Play(SoundKeyPickedUp)
		return
	}
}

func (p *Player) checkEnemyCollisions(stage *Stage, w world.World) {
	for _, enemy := range stage.Enemies {
		if enemy.Dead() || !geometry.CircleCircleCollide(p.Hitbox(), enemy.Hitbox()) {
			continue
		}

		if p.dead {
			p.respawn(w)
		} else {
			p.die(w)
		}
		return
	}
}

func (p *Player) die(w world.World) {
	p.dead = true
	p.noise = 0
	p.shotgun.Empty()
	p.sounds.Play(SoundGameOver)
	w.RequestLevelLoad(p.levels.GameOver)
}

func (p *Player) respawn(w world.World) {
	p.dead = false
	p.noise = 0
	p.SetPosition(defaultPlayerStart)
	p.shotgun = NewShotgun(p.rng)
	w.ResetProgress()
	w.RequestLevelLoad(p.levels.Start)
}

func (p *Player) Draw(r Renderer) {
	if p.noise > p.hitboxRadius {
		drawPolygon(r, geometry.CreateRegularPolygon(p.position, p.noise, hitboxSides), colorNoise)
	}

	body := colorPlayer
	if p.dead {
		body = colorPlayerDead
	}
	drawPolygon(r, geometry.CreateRegularPolygon(p.position, p.hitboxRadius, hitboxSides), body)

	p.shotgun.Draw(r)
	p.cursor.Draw(r)
}
