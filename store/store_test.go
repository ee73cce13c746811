package store

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meghashyamc/stealth2d/logger"
	"github.com/meghashyamc/stealth2d/world"
)

func createTestManager(t *testing.T) *gdata.Manager {
	appName := fmt.Sprintf("stealth2d_test_%d", time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Skipf("cannot create gdata manager: %v", err)
	}

	t.Cleanup(func() {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			os.RemoveAll(filepath.Join(homeDir, ".local", "share", appName))
		}
	})

	return manager
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := NewFlagStore(createTestManager(t), logger.NewNop())

	flags := world.NewFlags()
	flags.Set(world.CategoryEnemies, 3)
	flags.Set(world.CategoryKeys, 1)
	flags.Set(world.CategoryAmmoCrates, 65535)
	require.NoError(t, store.Save(flags))

	loaded := world.NewFlags()
	loaded.Set(world.CategoryKeys, 9)
	require.NoError(t, store.Load(loaded))

	assert.Equal(t, flags.Indexes(), loaded.Indexes())
	assert.False(t, loaded.Test(world.CategoryKeys, 9), "load replaces what was there")
}

func TestLoadWithoutSaveData(t *testing.T) {
	store := NewFlagStore(createTestManager(t), logger.NewNop())

	flags := world.NewFlags()
	require.NoError(t, store.Load(flags))
	assert.Zero(t, flags.Len())
}

func TestClear(t *testing.T) {
	store := NewFlagStore(createTestManager(t), logger.NewNop())

	flags := world.NewFlags()
	flags.Set(world.CategoryEnemies, 3)
	require.NoError(t, store.Save(flags))
	require.NoError(t, store.Clear())

	require.NoError(t, store.Load(flags))
	assert.Zero(t, flags.Len())
}

func TestMemoryOnlyMode(t *testing.T) {
	store := NewFlagStore(nil, logger.NewNop())
	assert.False(t, store.Persistent())

	flags := world.NewFlags()
	flags.Set(world.CategoryKeys, 2)
	require.NoError(t, store.Save(flags))

	loaded := world.NewFlags()
	require.NoError(t, store.Load(loaded))
	assert.Zero(t, loaded.Len())
}
