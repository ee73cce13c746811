package sim

import (
	"fmt"
	"time"

	"github.com/meghashyamc/stealth2d/logger"
)

type EnemyType int

const (
	EnemyNormal EnemyType = iota
	EnemyBrute
	EnemyPistol
	EnemyShotgun
	EnemyBoss
	// EnemyDummy never moves or looks around, but can still be shot.
	EnemyDummy
)

var enemyTypeNames = map[string]EnemyType{
	"Normal":  EnemyNormal,
	"Brute":   EnemyBrute,
	"Pistol":  EnemyPistol,
	"Shotgun": EnemyShotgun,
	"Boss":    EnemyBoss,
	"Dummy":   EnemyDummy,
}

func (t EnemyType) String() string {
	for name, enemyType := range enemyTypeNames {
		if enemyType == t {
			return name
		}
	}
	return fmt.Sprintf("EnemyType(%d)", int(t))
}

// EnemyStats are the per-type parameters of an enemy. Speeds are impulses added to the
// velocity every 1/60 s.
type EnemyStats struct {
	HitboxRadius     float64
	WalkingSpeed     float64
	InvestigateSpeed float64
	ChasingSpeed     float64
	Health           int
	IdleDuration     time.Duration
	FOVDegrees       float64
}

var enemyStats = map[EnemyType]EnemyStats{
	EnemyNormal:  {HitboxRadius: 10, WalkingSpeed: 1.5, InvestigateSpeed: 2.5, ChasingSpeed: 4.0, Health: 1, IdleDuration: 3 * time.Second, FOVDegrees: 60},
	EnemyBrute:   {HitboxRadius: 14, WalkingSpeed: 1.0, InvestigateSpeed: 2.0, ChasingSpeed: 3.0, Health: 4, IdleDuration: 3 * time.Second, FOVDegrees: 50},
	EnemyPistol:  {HitboxRadius: 10, WalkingSpeed: 1.5, InvestigateSpeed: 2.5, ChasingSpeed: 3.5, Health: 2, IdleDuration: 2 * time.Second, FOVDegrees: 70},
	EnemyShotgun: {HitboxRadius: 10, WalkingSpeed: 1.2, InvestigateSpeed: 2.2, ChasingSpeed: 3.2, Health: 3, IdleDuration: 3 * time.Second, FOVDegrees: 60},
	EnemyBoss:    {HitboxRadius: 18, WalkingSpeed: 1.0, InvestigateSpeed: 2.5, ChasingSpeed: 4.5, Health: 12, IdleDuration: 4 * time.Second, FOVDegrees: 90},
	EnemyDummy:   {HitboxRadius: 10, Health: 3},
}

// StatsFor returns the stats of an enemy type. Unknown types get the EnemyNormal stats and
// ok is false.
func StatsFor(t EnemyType) (stats EnemyStats, ok bool) {
	stats, ok = enemyStats[t]
	if !ok {
		return enemyStats[EnemyNormal], false
	}
	return stats, true
}

// ParseEnemyType maps a level file type tag to an EnemyType. Unknown tags are logged and
// treated as EnemyNormal.
func ParseEnemyType(tag string, log logger.Logger) EnemyType {
	enemyType, ok := enemyTypeNames[tag]
	if !ok {
		log.Warn("invalid enemy type, using default", "type", tag, "default", EnemyNormal.String())
		return EnemyNormal
	}
	return enemyType
}
