package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meghashyamc/stealth2d/geometry"
	"github.com/meghashyamc/stealth2d/logger"
	"github.com/meghashyamc/stealth2d/world"
)

func newPatrollingEnemy(kind EnemyType) *Enemy {
	return NewEnemy(1, kind, geometry.Vec2{}, patrol(geometry.Vec2{}, geometry.Vec2{X: 100, Y: 0}))
}

func TestEnemyIgnoresPlayerOutsideFieldOfView(t *testing.T) {
	enemy := newPatrollingEnemy(EnemyNormal)
	player := newTestPlayer(Silent())
	player.SetPosition(geometry.Vec2{X: 50, Y: 50})

	assert.False(t, enemy.SeesPlayer(player.Position(), player.HitboxRadius(), nil))

	enemy.Update(tick, player, nil, NewSession(nil))
	assert.Equal(t, StateNormal, enemy.State())
	assert.Equal(t, geometry.Vec2{X: 100, Y: 0}, enemy.Target())
}

func TestEnemyChasesVisiblePlayer(t *testing.T) {
	enemy := newPatrollingEnemy(EnemyNormal)
	player := newTestPlayer(Silent())
	player.SetPosition(geometry.Vec2{X: 100, Y: 0})

	assert.True(t, enemy.SeesPlayer(player.Position(), player.HitboxRadius(), nil))

	enemy.Update(tick, player, nil, NewSession(nil))
	assert.Equal(t, StateChasing, enemy.State())
	assert.Equal(t, player.Position(), enemy.Target())
	assert.Greater(t, enemy.Position().X, 0.0)
}

func TestEnemySightBlockedByWall(t *testing.T) {
	enemy := newPatrollingEnemy(EnemyNormal)
	wall := geometry.NewRect(40, -50, 10, 100)

	assert.False(t, enemy.SeesPlayer(geometry.Vec2{X: 100, Y: 0}, 10, []geometry.Rect{wall}))

	// A wall that hides only the center still leaves an edge of the player visible
	narrow := geometry.NewRect(40, -2, 10, 4)
	assert.True(t, enemy.SeesPlayer(geometry.Vec2{X: 100, Y: 0}, 10, []geometry.Rect{narrow}))
}

func TestEnemyCastsSortedFieldOfView(t *testing.T) {
	enemy := newPatrollingEnemy(EnemyNormal)
	player := newTestPlayer(Silent())
	player.SetPosition(geometry.Vec2{X: -500, Y: -500})
	walls := []geometry.Rect{geometry.NewRect(200, -20, 20, 40)}

	enemy.Update(tick, player, walls, NewSession(nil))

	rays := enemy.Sight().Rays()
	require.NotEmpty(t, rays)
	for i := 1; i < len(rays); i++ {
		assert.LessOrEqual(t, rays[i-1].Angle, rays[i].Angle)
	}
}

func TestEnemyIdlesAtEndpointThenTurnsBack(t *testing.T) {
	start := geometry.Vec2{}
	end := geometry.Vec2{X: 1, Y: 0}
	enemy := NewEnemy(1, EnemyNormal, start, patrol(start, end))
	player := newTestPlayer(Silent())
	player.SetPosition(geometry.Vec2{X: -500, Y: 500})
	session := NewSession(nil)

	enemy.Update(tick, player, nil, session)
	require.Equal(t, StateIdle, enemy.State())

	ticks := 0
	for enemy.State() == StateIdle && ticks < 400 {
		enemy.Update(tick, player, nil, session)
		assert.Equal(t, start, enemy.Position(), "idle enemies stand still")
		ticks++
	}

	assert.Equal(t, StateNormal, enemy.State())
	assert.Equal(t, start, enemy.Target())
	assert.GreaterOrEqual(t, ticks, 180, "idles for its full idle duration")
}

func TestEnemyInvestigatesNoise(t *testing.T) {
	enemy := newPatrollingEnemy(EnemyNormal)
	player := newTestPlayer(Silent())
	player.SetPosition(geometry.Vec2{X: 0, Y: -50})
	player.noise = 100

	enemy.Update(tick, player, nil, NewSession(nil))
	assert.Equal(t, StateInvestigating, enemy.State())
	assert.Equal(t, geometry.Vec2{X: 0, Y: -50}, enemy.Target())

	// The target stays where the noise was heard
	player.SetPosition(geometry.Vec2{X: 0, Y: 60})
	enemy.Update(tick, player, nil, NewSession(nil))
	assert.Equal(t, geometry.Vec2{X: 0, Y: -50}, enemy.Target())
}

func TestDeactivatedEnemyDoesNothing(t *testing.T) {
	enemy := NewEnemy(3, EnemyDummy, geometry.Vec2{X: 10, Y: 10}, patrol(geometry.Vec2{X: 10, Y: 10}, geometry.Vec2{X: 10, Y: 10}))
	player := newTestPlayer(Silent())
	player.SetPosition(geometry.Vec2{X: 30, Y: 10})

	for i := 0; i < 10; i++ {
		enemy.Update(tick, player, nil, NewSession(nil))
	}

	assert.Equal(t, StateDeactivated, enemy.State())
	assert.Equal(t, geometry.Vec2{X: 10, Y: 10}, enemy.Position())
	assert.Zero(t, enemy.Sight().Len())
}

func TestEnemyDiesAfterHealthHits(t *testing.T) {
	enemy := NewEnemy(7, EnemyBrute, geometry.Vec2{X: 100, Y: 0}, patrol(geometry.Vec2{X: 100, Y: 0}, geometry.Vec2{X: 100, Y: 200}))
	player := newTestPlayer(Silent())
	player.shotgun.blasts = append(player.shotgun.blasts, blastAt(player.Position(), enemy.Position(), enemy.Health()))
	session := NewSession(nil)

	enemy.Update(tick, player, nil, session)

	assert.True(t, enemy.Dead())
	assert.Equal(t, 0, enemy.Health())
	assert.True(t, session.IsUnlocked(world.CategoryEnemies, 7))
}

func TestShotEnemyTurnsTowardsShooter(t *testing.T) {
	enemy := NewEnemy(2, EnemyBoss, geometry.Vec2{X: 100, Y: 0}, patrol(geometry.Vec2{X: 100, Y: 0}, geometry.Vec2{X: 100, Y: 1}))
	player := newTestPlayer(Silent())
	player.SetPosition(geometry.Vec2{X: 100, Y: -300})
	session := NewSession(nil)

	enemy.Update(tick, player, nil, session)
	require.Equal(t, StateIdle, enemy.State())

	player.shotgun.blasts = append(player.shotgun.blasts, blastAt(player.Position(), enemy.Position(), 1))
	enemy.Update(tick, player, nil, session)

	assert.Equal(t, 1, enemy.HitsTaken())
	assert.Equal(t, 11, enemy.Health())
	assert.False(t, enemy.Dead())
	assert.NotEqual(t, StateIdle, enemy.State())
}

func TestUnknownEnemyTypeUsesDefaults(t *testing.T) {
	assert.Equal(t, EnemyNormal, ParseEnemyType("Dragon", logger.NewNop()))
	assert.Equal(t, EnemyBoss, ParseEnemyType("Boss", logger.NewNop()))

	stats, ok := StatsFor(EnemyType(42))
	assert.False(t, ok)
	assert.Equal(t, enemyStats[EnemyNormal], stats)

	for _, kind := range []EnemyType{EnemyNormal, EnemyBrute, EnemyPistol, EnemyShotgun, EnemyBoss, EnemyDummy} {
		stats, ok := StatsFor(kind)
		assert.True(t, ok, kind.String())
		assert.Positive(t, stats.Health, kind.String())
	}
}
