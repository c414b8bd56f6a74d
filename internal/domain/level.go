package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownLevel = errors.New("unknown level")

const (
	LevelEasy   = "easy"
	LevelMedium = "medium"
	LevelHard   = "hard"
)

// LevelConfig is an immutable difficulty preset.
type LevelConfig struct {
	Name         string
	FoodCount    int
	TickInterval time.Duration
	Theme        string
}

var levels = []LevelConfig{
	{Name: LevelEasy, FoodCount: 2, TickInterval: 150 * time.Millisecond, Theme: LevelEasy},
	{Name: LevelMedium, FoodCount: 2, TickInterval: 100 * time.Millisecond, Theme: LevelMedium},
	{Name: LevelHard, FoodCount: 1, TickInterval: 60 * time.Millisecond, Theme: LevelHard},
}

// Levels returns the presets in menu order.
func Levels() []LevelConfig {
	out := make([]LevelConfig, len(levels))
	copy(out, levels)
	return out
}

func LevelNames() []string {
	names := make([]string, len(levels))
	for i, lvl := range levels {
		names[i] = lvl.Name
	}
	return names
}

func LookupLevel(name string) (LevelConfig, error) {
	for _, lvl := range levels {
		if lvl.Name == name {
			return lvl, nil
		}
	}
	return LevelConfig{}, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// Title is the display form of the level name.
func (l LevelConfig) Title() string {
	if l.Name == "" {
		return ""
	}
	b := []byte(l.Name)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
