// Package store keeps the unlocked flags between runs using gdata.
package store

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/meghashyamc/stealth2d/logger"
	"github.com/meghashyamc/stealth2d/world"
)

const (
	progressObject   = "progress"
	progressProperty = "unlocked.yaml"
)

type progress struct {
	Unlocked []int `yaml:"unlocked"`
}

// FlagStore saves the flag set as a YAML list of flat indexes. A nil gdata manager puts it in
// memory-only mode where Load finds nothing and Save does nothing.
type FlagStore struct {
	manager *gdata.Manager
	logger  logger.Logger
}

// Open creates a store for appName. When the platform storage cannot be opened the store
// still works, in memory-only mode.
func Open(appName string, log logger.Logger) *FlagStore {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn("failed to open save data, progress will not be kept", "appName", appName, "err", err)
		manager = nil
	}

	return NewFlagStore(manager, log)
}

func NewFlagStore(manager *gdata.Manager, log logger.Logger) *FlagStore {
	return &FlagStore{
		manager: manager,
		logger:  log,
	}
}

// Persistent reports whether saves outlive the process.
func (s *FlagStore) Persistent() bool {
	return s.manager != nil
}

// Load replaces the contents of flags with the saved ones. Missing save data leaves flags
// empty and is not an error.
func (s *FlagStore) Load(flags *world.Flags) error {
	flags.Reset()

	if s.manager == nil || !s.manager.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	var saved progress
	if err := yaml.Unmarshal(data, &saved); err != nil {
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}

	flags.SetIndexes(saved.Unlocked)
	s.logger.Debug("progress loaded", "unlocked", flags.Len())
	return nil
}

func (s *FlagStore) Save(flags *world.Flags) error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(progress{Unlocked: flags.Indexes()})
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	if err := s.manager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}

	s.logger.Debug("progress saved", "unlocked", flags.Len())
	return nil
}

// Clear forgets the saved progress.
func (s *FlagStore) Clear() error {
	return s.Save(world.NewFlags())
}
