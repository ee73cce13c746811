package level

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meghashyamc/stealth2d/logger"
)

// QuitLevelID is never loaded; requesting it ends the game.
const QuitLevelID uint16 = 0

var ErrLevelNotFound = errors.New("level not found")

//go:embed levels/*.yaml
var embeddedLevels embed.FS

// Loader reads level_<id>.yaml files. Files in the override directory take precedence over
// the levels built into the binary.
type Loader struct {
	override   fs.FS
	builtin    fs.FS
	fallbackID uint16
	logger     logger.Logger
}

// NewLoader creates a loader. dir may be empty, in which case only built-in levels are used.
func NewLoader(dir string, fallbackID uint16, log logger.Logger) *Loader {
	builtin, err := fs.Sub(embeddedLevels, "levels")
	if err != nil {
		// The embed pattern guarantees the directory exists
		panic(err)
	}

	l := &Loader{
		builtin:    builtin,
		fallbackID: fallbackID,
		logger:     log,
	}
	if dir != "" {
		l.override = os.DirFS(dir)
	}

	return l
}

func fileName(id uint16) string {
	return fmt.Sprintf("level_%d.yaml", id)
}

// Load reads and validates one level.
func (l *Loader) Load(id uint16) (*Level, error) {
	data, err := l.read(fileName(id))
	if err != nil {
		return nil, err
	}

	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fileName(id), err)
	}
	lvl.ID = id

	return lvl, nil
}

// LoadOrFallback loads a level and degrades to the fallback level, and then to an empty
// built-in room, when that fails. It never returns nil.
func (l *Loader) LoadOrFallback(id uint16) *Level {
	lvl, err := l.Load(id)
	if err == nil {
		l.logger.Info("level loaded", "levelID", id, "name", lvl.Name)
		return lvl
	}
	l.logger.Error("failed to load level, using fallback", "levelID", id, "fallbackID", l.fallbackID, "err", err)

	lvl, err = l.Load(l.fallbackID)
	if err == nil {
		return lvl
	}
	l.logger.Error("failed to load fallback level", "fallbackID", l.fallbackID, "err", err)

	return EmptyRoom(l.fallbackID)
}

func (l *Loader) read(name string) ([]byte, error) {
	if l.override != nil {
		data, err := fs.ReadFile(l.override, name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
	}

	data, err := fs.ReadFile(l.builtin, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return data, nil
}

// Parse decodes and validates a level document.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, err
	}

	if err := validate(&lvl); err != nil {
		return nil, err
	}

	return &lvl, nil
}

func validate(lvl *Level) error {
	for i, wall := range lvl.Walls {
		if wall.Width < 0 || wall.Height < 0 {
			return fmt.Errorf("wall %d: negative size %vx%v", i, wall.Width, wall.Height)
		}
	}
	for i, transition := range lvl.Transitions {
		if transition.Width < 0 || transition.Height < 0 {
			return fmt.Errorf("transition %d: negative size %vx%v", i, transition.Width, transition.Height)
		}
	}
	for _, crate := range lvl.AmmoCrates {
		if crate.AmmoCount < 0 {
			return fmt.Errorf("ammo crate %d: negative ammo count %d", crate.ID, crate.AmmoCount)
		}
	}

	seen := make(map[uint16]struct{}, len(lvl.Enemies))
	for _, enemy := range lvl.Enemies {
		if _, ok := seen[enemy.ID]; ok {
			return fmt.Errorf("enemy id %d used twice", enemy.ID)
		}
		seen[enemy.ID] = struct{}{}
	}

	return nil
}

// EmptyRoom is a walled room with nothing in it, used when no level file can be read.
func EmptyRoom(id uint16) *Level {
	return &Level{
		ID:   id,
		Name: "empty room",
		Walls: []Wall{
			{X: 0, Y: 0, Width: 1200, Height: 20},
			{X: 0, Y: 780, Width: 1200, Height: 20},
			{X: 0, Y: 0, Width: 20, Height: 800},
			{X: 1180, Y: 0, Width: 20, Height: 800},
		},
		Transitions: []Transition{
			{X: 1100, Y: 360, Width: 40, Height: 80, NextLevelID: 1, NextPosition: Point{X: 100, Y: 400}},
		},
	}
}
