package game

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/torchlit/internal/logger"
	"github.com/samdwyer/torchlit/internal/telemetry"
	"github.com/samdwyer/torchlit/internal/ui"
	"github.com/samdwyer/torchlit/internal/world"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"TORCHLIT_SEED" envDefault:"0"`

	Map       MapConfig           `envPrefix:"TORCHLIT_"`
	FOV       FOVConfig           `envPrefix:"TORCHLIT_"`
	Palette   ui.PaletteConfig    `envPrefix:"TORCHLIT_COLOR_"`
	Log       logger.Config       `envPrefix:"LOG_"`
	Honeycomb telemetry.Honeycomb `envPrefix:"TORCHLIT_HONEYCOMB_"`
}

// MapConfig controls dungeon generation.
type MapConfig struct {
	Width       int `env:"MAP_WIDTH" envDefault:"80"`
	Height      int `env:"MAP_HEIGHT" envDefault:"45"`
	MaxRooms    int `env:"MAX_ROOMS" envDefault:"30"`
	RoomMinSize int `env:"ROOM_MIN_SIZE" envDefault:"6"`
	RoomMaxSize int `env:"ROOM_MAX_SIZE" envDefault:"10"`
}

// Params converts the map settings to generator parameters.
func (m MapConfig) Params() world.Params {
	return world.Params{
		Width:       m.Width,
		Height:      m.Height,
		MaxRooms:    m.MaxRooms,
		RoomMinSize: m.RoomMinSize,
		RoomMaxSize: m.RoomMaxSize,
	}
}

// FOVConfig controls the player's field of view.
type FOVConfig struct {
	Radius     int  `env:"TORCH_RADIUS" envDefault:"10"`
	LightWalls bool `env:"FOV_LIGHT_WALLS" envDefault:"true"`
}

// LoadConfig reads the configuration from the environment and validates it.
func LoadConfig() (Config, error) {
	return loadConfig(env.Options{})
}

func loadConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	cfg, err := loadConfig(env.Options{Environment: map[string]string{}})
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks that a dungeon can be generated with these settings.
func (c Config) Validate() error {
	m := c.Map
	if m.Width <= 2 || m.Height <= 2 {
		return fmt.Errorf("%w: map %dx%d is too small", ErrInvalidConfig, m.Width, m.Height)
	}
	if m.MaxRooms < 0 {
		return fmt.Errorf("%w: max rooms %d is negative", ErrInvalidConfig, m.MaxRooms)
	}
	if m.RoomMinSize < 1 || m.RoomMinSize > m.RoomMaxSize {
		return fmt.Errorf("%w: room size range [%d,%d]", ErrInvalidConfig, m.RoomMinSize, m.RoomMaxSize)
	}
	if m.RoomMaxSize > min(m.Width, m.Height)-2 {
		return fmt.Errorf("%w: room max size %d does not fit a %dx%d map", ErrInvalidConfig, m.RoomMaxSize, m.Width, m.Height)
	}
	if c.FOV.Radius > max(m.Width, m.Height) {
		return fmt.Errorf("%w: torch radius %d exceeds the map, use 0 for unlimited", ErrInvalidConfig, c.FOV.Radius)
	}
	if _, err := c.Palette.Palette(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
