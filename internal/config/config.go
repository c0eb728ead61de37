package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"twenty48/internal/game"
)

const (
	envConfigPath = "TWENTY48_CONFIG"
	envAPIBaseURL = "TWENTY48_API_URL"
	envTimeout    = "TWENTY48_TIMEOUT"
	envScoreFile  = "TWENTY48_SCORE_FILE"

	defaultConfigPath = "twenty48.yaml"
	defaultScoreFile  = ".twenty48/scores.yaml"
)

// Duration wraps time.Duration so it can be written as "10s" in YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config holds the application configuration.
type Config struct {
	APIBaseURL     string      `yaml:"api_base_url"`
	RequestTimeout Duration    `yaml:"request_timeout"`
	ScoreFile      string      `yaml:"score_file"`
	DefaultGame    game.Config `yaml:"default_game"`
}

// DefaultGameConfig is the configuration the form starts out with: a
// classic 4x4 game to 2048.
func DefaultGameConfig() game.Config {
	return game.Config{
		GridSize:          4,
		RootTileValue:     2,
		SpawnTileCount:    1,
		StartingTileCount: 2,
		WinTileValue:      2048,
	}
}

// Load builds the configuration from an optional YAML file overlaid
// with environment variables. A .env file in the working directory is
// read first if present. TWENTY48_API_URL must be set one way or the
// other.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ScoreFile:   defaultScoreFile,
		DefaultGame: DefaultGameConfig(),
	}

	path := os.Getenv(envConfigPath)
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; environment variables can carry
		// everything.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", envTimeout, v, err)
		}
		cfg.RequestTimeout = Duration(parsed)
	}
	if v := os.Getenv(envScoreFile); v != "" {
		cfg.ScoreFile = v
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("no API base URL configured: set %s or api_base_url in %s", envAPIBaseURL, defaultConfigPath)
	}
	if err := cfg.DefaultGame.Validate(); err != nil {
		return nil, fmt.Errorf("default_game: %w", err)
	}

	return cfg, nil
}
