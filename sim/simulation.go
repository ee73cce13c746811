// Package sim is the frame-stepped simulation: the player, its shotgun, the enemy state
// machines and the level they live in.
package sim

import (
	"errors"
	"math/rand"
	"time"

	"github.com/meghashyamc/stealth2d/level"
	"github.com/meghashyamc/stealth2d/logger"
	"github.com/meghashyamc/stealth2d/world"
)

// ErrQuit is returned by Step once the quit level has been requested.
var ErrQuit = errors.New("quit requested")

// LevelSource hands out levels. It must always return a usable level.
type LevelSource interface {
	LoadOrFallback(id uint16) *level.Level
}

// ProgressStore persists the unlocked flags between runs.
type ProgressStore interface {
	Save(flags *world.Flags) error
}

type Simulation struct {
	levels  LevelSource
	store   ProgressStore
	session *Session
	player  *Player
	stage   *Stage
	sounds  SoundPlayer
	ids     LevelIDs
	logger  logger.Logger
}

// NewSimulation wires a simulation. store and sounds may be nil.
func NewSimulation(levels LevelSource, session *Session, ids LevelIDs, sounds SoundPlayer, store ProgressStore, rng *rand.Rand, log logger.Logger) *Simulation {
	if sounds == nil {
		sounds = Silent()
	}

	return &Simulation{
		levels:  levels,
		store:   store,
		session: session,
		player:  NewPlayer(ids, sounds, rng),
		sounds:  sounds,
		ids:     ids,
		logger:  log,
	}
}

// Start loads the start level and places the player on it.
func (s *Simulation) Start() {
	s.loadLevel(s.ids.Start, true)
}

func (s *Simulation) Player() *Player {
	return s.player
}

func (s *Simulation) Stage() *Stage {
	return s.stage
}

func (s *Simulation) Session() *Session {
	return s.session
}

// Step runs one tick: input, player, every enemy in turn, then any level load requested
// during the tick.
func (s *Simulation) Step(dt time.Duration, in Input) error {
	seconds := dt.Seconds()
	wasDead := s.player.Dead()

	s.player.HandleInput(in, s.stage.Obstacles)
	s.player.Update(seconds, s.stage, in.Aim, s.session)

	for _, enemy := range s.stage.Enemies {
		enemy.Update(seconds, s.player, s.stage.Obstacles, s.session)
		if enemy.HitsTaken() > 0 {
			s.sounds.Play(SoundShotgunHit)
		}
		if enemy.Dead() {
			s.logger.Debug("enemy killed", "enemyID", enemy.ID(), "type", enemy.Type().String())
			s.sounds.Play(SoundEnemyKilled)
		}
	}
	s.stage.removeDead()

	levelID, ok := s.session.TakePendingLevel()
	if !ok {
		return nil
	}
	if levelID == level.QuitLevelID {
		s.logger.Info("quit level reached")
		return ErrQuit
	}

	// Dying and respawning place the player at the level start, transitions already did
	s.loadLevel(levelID, s.player.Dead() != wasDead)
	return nil
}

func (s *Simulation) loadLevel(id uint16, placePlayer bool) {
	lvl := s.levels.LoadOrFallback(id).WithoutUnlocked(s.session)
	s.stage = NewStage(lvl, s.logger)

	if placePlayer && lvl.PlayerStart != nil {
		s.player.SetPosition(lvl.PlayerStart.Vec2())
	}

	s.logger.Debug("stage ready", "levelID", lvl.ID, "enemies", len(s.stage.Enemies), "unlocked", s.session.Flags().Len())

	if s.store == nil {
		return
	}
	if err := s.store.Save(s.session.Flags()); err != nil {
		s.logger.Error("failed to save progress", "err", err)
	}
}

// Draw hands the frame to r: the level first, then the player on top.
func (s *Simulation) Draw(r Renderer) {
	s.stage.Draw(r, s.session)
	s.player.Draw(r)
}
