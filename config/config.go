package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultWindowWidth   = 1200
	defaultWindowHeight  = 800
	defaultWindowTitle   = "Stealth 2D"
	defaultStartLevel    = 1
	defaultGameOverLevel = 999
	defaultFallbackLevel = 404
	defaultTPS           = 60
	defaultAppName       = "stealth2d"
	defaultMaxVoices     = 8
	defaultLogLevel      = "debug"
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

// getInt returns the env var, then the yaml key, then def.
func (c *Config) getInt(envKey, key string, def int) int {
	value := c.config.GetInt(envKey)
	if value == 0 {
		value = c.config.GetInt(key)
	}
	if value == 0 {
		value = def
	}

	return value
}

func (c *Config) getString(envKey, key, def string) string {
	value := c.config.GetString(envKey)
	if len(value) == 0 {
		value = c.config.GetString(key)
	}
	if len(value) == 0 {
		value = def
	}

	return value
}

func (c *Config) GetWindowWidth() int {
	return c.getInt("WINDOW_WIDTH", "window.width", defaultWindowWidth)
}

func (c *Config) GetWindowHeight() int {
	return c.getInt("WINDOW_HEIGHT", "window.height", defaultWindowHeight)
}

func (c *Config) GetWindowTitle() string {
	return c.getString("WINDOW_TITLE", "window.title", defaultWindowTitle)
}

func (c *Config) GetStartLevel() uint16 {
	return uint16(c.getInt("START_LEVEL", "game.startlevel", defaultStartLevel))
}

func (c *Config) GetGameOverLevel() uint16 {
	return uint16(c.getInt("GAME_OVER_LEVEL", "game.gameoverlevel", defaultGameOverLevel))
}

func (c *Config) GetFallbackLevel() uint16 {
	return uint16(c.getInt("FALLBACK_LEVEL", "game.fallbacklevel", defaultFallbackLevel))
}

// GetTPS is the number of simulation ticks per second.
func (c *Config) GetTPS() int {
	return c.getInt("TPS", "game.tps", defaultTPS)
}

// GetLevelsDir is an optional directory whose level files override the built-in ones.
func (c *Config) GetLevelsDir() string {
	return c.getString("LEVELS_DIR", "data.levelsdir", "")
}

func (c *Config) GetAppName() string {
	return c.getString("APP_NAME", "data.appname", defaultAppName)
}

// GetAudioEnabled defaults to true; AUDIO_ENABLED=false or audio.enabled: false turns it off.
func (c *Config) GetAudioEnabled() bool {
	if c.config.IsSet("AUDIO_ENABLED") {
		return c.config.GetBool("AUDIO_ENABLED")
	}
	if c.config.IsSet("audio.enabled") {
		return c.config.GetBool("audio.enabled")
	}

	return true
}

func (c *Config) GetAudioMaxVoices() int {
	return c.getInt("AUDIO_MAX_VOICES", "audio.maxvoices", defaultMaxVoices)
}

func (c *Config) GetLogLevel() string {
	return c.getString("LOG_LEVEL", "log.level", defaultLogLevel)
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
