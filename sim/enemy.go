package sim

import (
	"math"
	"time"

	"github.com/meghashyamc/stealth2d/geometry"
	"github.com/meghashyamc/stealth2d/level"
	"github.com/meghashyamc/stealth2d/logger"
	"github.com/meghashyamc/stealth2d/raycast"
	"github.com/meghashyamc/stealth2d/world"
)

type EnemyState int

const (
	StateNormal EnemyState = iota
	StateIdle
	StateInvestigating
	StateChasing
	StateDeactivated
)

func (s EnemyState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateIdle:
		return "idle"
	case StateInvestigating:
		return "investigating"
	case StateChasing:
		return "chasing"
	case StateDeactivated:
		return "deactivated"
	}
	return "unknown"
}

const (
	// enemyDamping is applied to the velocity every tick.
	enemyDamping = 0.98
	// reachedDistance is how close an enemy must get to its target to count as there.
	reachedDistance  = 2.0
	minMoveDistance  = 0.001
	degreesToRadians = math.Pi / 180
)

type Enemy struct {
	id        uint16
	kind      EnemyType
	stats     EnemyStats
	position  geometry.Vec2
	velocity  geometry.Vec2
	target    geometry.Vec2
	facing    geometry.Vec2
	path      geometry.LineSegment
	state     EnemyState
	lastState EnemyState
	health    int
	idleTimer *Timer
	// sight is the field of view fan kept for drawing; probes are the rays cast at the player.
	sight  *raycast.Raycast
	probes *raycast.Raycast
	hits   int
	dead   bool
}

// NewEnemy places an enemy that patrols path, heading for path.End first.
func NewEnemy(id uint16, kind EnemyType, position geometry.Vec2, path geometry.LineSegment) *Enemy {
	stats, _ := StatsFor(kind)

	e := &Enemy{
		id:        id,
		kind:      kind,
		stats:     stats,
		position:  position,
		target:    path.End,
		facing:    geometry.Vec2{X: 1, Y: 0},
		path:      path,
		state:     StateNormal,
		health:    stats.Health,
		idleTimer: NewTimer(stats.IdleDuration),
		sight:     raycast.New(),
		probes:    raycast.New(),
	}
	if kind == EnemyDummy {
		e.state = StateDeactivated
	}
	e.lookAt(e.target)
	e.lastState = e.state

	return e
}

// NewEnemyFromSpawn builds an enemy from a level descriptor.
func NewEnemyFromSpawn(spawn level.EnemySpawn, log logger.Logger) *Enemy {
	return NewEnemy(spawn.ID, ParseEnemyType(spawn.Type, log), spawn.Location.Vec2(), spawn.Path())
}

func (e *Enemy) ID() uint16 {
	return e.id
}

func (e *Enemy) Type() EnemyType {
	return e.kind
}

func (e *Enemy) State() EnemyState {
	return e.state
}

func (e *Enemy) Position() geometry.Vec2 {
	return e.position
}

func (e *Enemy) Target() geometry.Vec2 {
	return e.target
}

func (e *Enemy) Health() int {
	return e.health
}

func (e *Enemy) Dead() bool {
	return e.dead
}

func (e *Enemy) Hitbox() geometry.Circle {
	return geometry.NewCircle(e.position, e.stats.HitboxRadius)
}

// Sight is the angle-sorted field of view fan cast during the last update.
func (e *Enemy) Sight() *raycast.Raycast {
	return e.sight
}

// HitsTaken is the number of pellets that struck the enemy during the last update.
func (e *Enemy) HitsTaken() int {
	return e.hits
}

// Update runs one tick of the state machine: blast damage, death, sight, hearing, then the
// patrol. Dead and deactivated enemies do nothing beyond taking damage.
func (e *Enemy) Update(dt float64, player *Player, obstacles []geometry.Rect, w world.World) {
	if e.dead {
		return
	}

	e.applyBlastDamage(player)
	if e.health <= 0 {
		e.dead = true
		e.sight.ResetRays()
		e.probes.ResetRays()
		w.MarkUnlocked(world.CategoryEnemies, e.id)
		return
	}

	if e.state == StateDeactivated {
		return
	}

	e.lastState = e.state
	e.probes.ResetRays()

	switch {
	case e.SeesPlayer(player.Position(), player.HitboxRadius(), obstacles):
		e.state = StateChasing
		e.target = player.Position()
	case e.hearsPlayer(player):
		e.state = StateInvestigating
		if e.lastState != StateInvestigating {
			e.target = player.Position()
		}
	case e.state == StateIdle && !e.idleTimer.IsReady():
		e.idleTimer.Update(time.Duration(dt * float64(time.Second)))
	case e.state == StateIdle:
		e.flipTarget()
		e.state = StateNormal
	case e.reachedTarget():
		e.state = StateIdle
		e.idleTimer.Reset()
	default:
		e.state = StateNormal
	}

	e.move(dt)

	e.sight.CastFieldOfView(e.position, obstacles, e.position.Add(e.facing), e.stats.FOVDegrees)
	e.sight.SortByAngle()
}

func (e *Enemy) applyBlastDamage(player *Player) {
	e.hits = 0

	hitbox := e.Hitbox()
	for _, blast := range player.Shotgun().Blasts() {
		for _, ray := range blast.CollisionRays() {
			if !geometry.LineCircleIntersect(ray, hitbox).Hit {
				continue
			}

			e.hits++
			e.health--
			e.target = player.Position()
			if e.state == StateIdle {
				e.state = StateNormal
			}
		}
	}
}

// SeesPlayer reports whether the player is inside the field of view and at least one of its
// center and two edge points can be reached without crossing an obstacle.
func (e *Enemy) SeesPlayer(playerPosition geometry.Vec2, playerRadius float64, obstacles []geometry.Rect) bool {
	toPlayer := playerPosition.Sub(e.position)
	if toPlayer.MagnitudeSquared() < minMoveDistance {
		return false
	}

	halfFOV := e.stats.FOVDegrees / 2 * degreesToRadians
	if e.facing.AngleTo(toPlayer) > halfFOV {
		return false
	}

	enemyToPlayer := geometry.NewLineSegment(e.position, playerPosition)
	edge := geometry.CreatePerpendicularSegment(enemyToPlayer, playerPosition, playerRadius*2)

	for _, point := range []geometry.Vec2{playerPosition, edge.Start, edge.End} {
		if !e.probes.CastRayToTarget(e.position, point, obstacles, false) {
			return true
		}
	}

	return false
}

func (e *Enemy) hearsPlayer(player *Player) bool {
	return player.Noise() >= e.position.DistanceTo(player.Position())
}

func (e *Enemy) reachedTarget() bool {
	return e.position.DistanceTo(e.target) <= reachedDistance
}

func (e *Enemy) flipTarget() {
	if e.target == e.path.End {
		e.target = e.path.Start
	} else {
		e.target = e.path.End
	}
}

func (e *Enemy) speed() float64 {
	switch e.state {
	case StateNormal:
		return e.stats.WalkingSpeed
	case StateInvestigating:
		return e.stats.InvestigateSpeed
	case StateChasing:
		return e.stats.ChasingSpeed
	}
	return 0
}

func (e *Enemy) move(dt float64) {
	if e.state == StateIdle {
		e.velocity = geometry.Zero()
	} else if !e.reachedTarget() {
		e.lookAt(e.target)
		direction := e.target.Sub(e.position).Normalize()
		e.velocity = e.velocity.Add(direction.Scale(e.speed() * dt * 60))
	}

	e.position = e.position.Add(e.velocity.Scale(dt))
	e.velocity = e.velocity.Scale(enemyDamping)
}

// lookAt turns the enemy towards point unless it is standing on it.
func (e *Enemy) lookAt(point geometry.Vec2) {
	direction := point.Sub(e.position)
	if direction.MagnitudeSquared() < minMoveDistance {
		return
	}
	e.facing = direction.Normalize()
}

func (e *Enemy) Draw(r Renderer) {
	if e.dead {
		return
	}

	if e.state != StateDeactivated {
		for _, triangle := range e.sight.Triangles() {
			r.DrawTriangle(triangle, colorEnemySight)
		}
		for _, probe := range e.probes.Rays() {
			r.DrawLine(probe, colorEnemyProbe)
		}
	}

	drawPolygon(r, geometry.CreateRegularPolygon(e.position, e.stats.HitboxRadius, hitboxSides), colorEnemy)
}
