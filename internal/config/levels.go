package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

//go:embed levels.json
var defaultLevelsJSON []byte

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// LevelConfig is one row of the spawn table.
//
// Prey and Predators are spawned when the level is entered: at reset for
// level 1, on level-up for every later level. Sizes are multiples of the
// player's size at spawn time; speeds are in units per tick.
type LevelConfig struct {
	Level         int   `json:"level"`
	Prey          int   `json:"prey"`
	Predators     int   `json:"predators"`
	PreySize      Range `json:"preySize"`
	PredatorSize  Range `json:"predatorSize"`
	PreySpeed     Range `json:"preySpeed"`
	PredatorSpeed Range `json:"predatorSpeed"`
}

// Levels is the ordered spawn table.
type Levels []LevelConfig

// DefaultLevels returns the embedded table. It panics on a broken build.
func DefaultLevels() Levels {
	lv, err := ParseLevels(defaultLevelsJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded levels.json: %v", err))
	}
	return lv
}

// ParseLevels decodes and validates a JSON spawn table.
func ParseLevels(data []byte) (Levels, error) {
	var lv Levels
	if err := json.Unmarshal(data, &lv); err != nil {
		return nil, fmt.Errorf("decode levels: %w", err)
	}
	if err := lv.Validate(); err != nil {
		return nil, err
	}
	return lv, nil
}

// ReadLevels loads a spawn table from r.
func ReadLevels(r io.Reader) (Levels, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read levels: %w", err)
	}
	return ParseLevels(data)
}

// LoadLevelsFile loads a spawn table from disk.
func LoadLevelsFile(path string) (Levels, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open levels: %w", err)
	}
	defer f.Close()
	return ReadLevels(f)
}

// Validate checks ordering and ranges.
func (lv Levels) Validate() error {
	if len(lv) == 0 {
		return fmt.Errorf("%w: empty level table", ErrInvalid)
	}
	for i, l := range lv {
		if l.Level != i+1 {
			return fmt.Errorf("%w: row %d has level %d", ErrInvalid, i, l.Level)
		}
		if l.Prey < 0 || l.Predators < 0 {
			return fmt.Errorf("%w: level %d has negative counts", ErrInvalid, l.Level)
		}
		for name, r := range map[string]Range{
			"preySize":      l.PreySize,
			"predatorSize":  l.PredatorSize,
			"preySpeed":     l.PreySpeed,
			"predatorSpeed": l.PredatorSpeed,
		} {
			if r.Min <= 0 || r.Max < r.Min {
				return fmt.Errorf("%w: level %d %s [%g,%g]", ErrInvalid, l.Level, name, r.Min, r.Max)
			}
		}
	}
	return nil
}

// For returns the row for a level. Levels past the table reuse the last row
// with one more prey for every two levels beyond it.
func (lv Levels) For(level int) LevelConfig {
	if level < 1 {
		level = 1
	}
	if level <= len(lv) {
		return lv[level-1]
	}
	last := lv[len(lv)-1]
	extra := level - len(lv)
	last.Level = level
	last.Prey += extra / 2
	return last
}
