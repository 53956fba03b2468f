package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvSeed          = "OCEAN_SEED"
	EnvLevels        = "OCEAN_LEVELS"
	EnvHighScoreFile = "OCEAN_HIGHSCORE_FILE"
	EnvMuted         = "OCEAN_MUTED"
	EnvPreyEdge      = "OCEAN_PREY_EDGE"
	EnvPredatorEdge  = "OCEAN_PREDATOR_EDGE"
)

// Load starts from Default, merges optional dotenv files into the process
// environment and applies the OCEAN_* overrides. Missing dotenv files are
// not an error; with no arguments ".env" is tried.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
		log.Printf("loaded environment from %s", f)
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvLevels); ok {
		lv, err := LoadLevelsFile(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLevels, err)
		}
		c.Levels = lv
	}
	if v, ok := lookup(EnvHighScoreFile); ok {
		c.HighScoreFile = v
	}
	if v, ok := lookup(EnvMuted); ok {
		muted, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMuted, err)
		}
		c.Muted = muted
	}
	if v, ok := lookup(EnvPreyEdge); ok {
		c.PreyEdge = EdgePolicy(strings.ToLower(v))
	}
	if v, ok := lookup(EnvPredatorEdge); ok {
		c.PredatorEdge = EdgePolicy(strings.ToLower(v))
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
