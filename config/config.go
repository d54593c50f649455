// Package config loads settings from an INI file with environment overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/lixenwraith/snakeio/audio"
	"github.com/lixenwraith/snakeio/constants"
	"github.com/lixenwraith/snakeio/engine"
	"github.com/lixenwraith/snakeio/storage"
	"github.com/lixenwraith/snakeio/vmath"
)

// ErrInvalidValue is wrapped by every rejected setting
var ErrInvalidValue = errors.New("invalid config value")

// Environment overrides, applied after the file
const (
	EnvSpeed  = "SNAKEIO_SPEED"
	EnvMuted  = "SNAKEIO_MUTED"
	EnvWander = "SNAKEIO_WANDER"
	EnvSeed   = "SNAKEIO_SEED"
	EnvVolume = "SNAKEIO_VOLUME"
)

// Config is the resolved runtime configuration
type Config struct {
	Speed           engine.SpeedPreset
	FoodSpeedFactor float64
	Cols, Rows      int
	Seed            uint64 // Zero seeds from the clock

	Audio *audio.AudioConfig

	ScorePath string
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Speed:           engine.SpeedMedium,
		FoodSpeedFactor: constants.FoodSpeedFactorDefault,
		Cols:            constants.DefaultCols,
		Rows:            constants.DefaultRows,
		Audio:           audio.DefaultAudioConfig(),
		ScorePath:       storage.DefaultPath(),
	}
}

// DefaultPath returns the per-user settings file location
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "snakeio", "snakeio.ini")
}

// Load reads path then applies environment overrides
// A missing file yields defaults; a malformed file or value is an error
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := ini.Load(path)
		switch {
		case err == nil:
			if err := cfg.apply(file); err != nil {
				return nil, fmt.Errorf("config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// apply copies keys present in file over the defaults
func (c *Config) apply(file *ini.File) error {
	game := file.Section("game")

	if k, err := game.GetKey("speed"); err == nil {
		if err := c.SetSpeed(k.String()); err != nil {
			return err
		}
	}
	if k, err := game.GetKey("wander_factor"); err == nil {
		v, err := k.Float64()
		if err != nil {
			return fmt.Errorf("%w: wander_factor %q", ErrInvalidValue, k.String())
		}
		c.FoodSpeedFactor = v
	}
	for name, dst := range map[string]*int{"cols": &c.Cols, "rows": &c.Rows} {
		if k, err := game.GetKey(name); err == nil {
			v, err := k.Int()
			if err != nil || v < constants.MinGridDim {
				return fmt.Errorf("%w: %s %q (minimum %d)", ErrInvalidValue, name, k.String(), constants.MinGridDim)
			}
			*dst = v
		}
	}
	if k, err := game.GetKey("seed"); err == nil {
		v, err := k.Uint64()
		if err != nil {
			return fmt.Errorf("%w: seed %q", ErrInvalidValue, k.String())
		}
		c.Seed = v
	}

	snd := file.Section("audio")
	if k, err := snd.GetKey("muted"); err == nil {
		v, err := k.Bool()
		if err != nil {
			return fmt.Errorf("%w: muted %q", ErrInvalidValue, k.String())
		}
		c.Audio.Muted = v
	}
	if k, err := snd.GetKey("volume"); err == nil {
		v, err := k.Int()
		if err != nil {
			return fmt.Errorf("%w: volume %q", ErrInvalidValue, k.String())
		}
		c.Audio.MasterVolume = float64(v) / 100.0
	}

	if k, err := file.Section("storage").GetKey("path"); err == nil && k.String() != "" {
		c.ScorePath = k.String()
	}
	return nil
}

// applyEnv applies SNAKEIO_* overrides
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSpeed); ok && v != "" {
		if err := c.SetSpeed(v); err != nil {
			return err
		}
	}
	if v, ok := lookup(EnvMuted); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvMuted, v)
		}
		c.Audio.Muted = b
	}
	if v, ok := lookup(EnvWander); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvWander, v)
		}
		c.FoodSpeedFactor = f
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		s, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvSeed, v)
		}
		c.Seed = s
	}

	// Volume is 0-100 converted to 0.0-1.0
	if v, ok := lookup(EnvVolume); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvVolume, v)
		}
		c.Audio.MasterVolume = float64(n) / 100.0
	}
	return nil
}

// SetSpeed selects a preset by name or digit
func (c *Config) SetSpeed(name string) error {
	p, ok := engine.ParseSpeed(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return fmt.Errorf("%w: speed %q (want slow, medium or fast)", ErrInvalidValue, name)
	}
	c.Speed = p
	return nil
}

// normalize clamps ranged values
func (c *Config) normalize() {
	c.FoodSpeedFactor = vmath.RoundTo(vmath.Clamp(c.FoodSpeedFactor, constants.FoodSpeedFactorMin, constants.FoodSpeedFactorMax), 2)
	c.Audio.Normalize()
}
