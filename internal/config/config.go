// Package config holds process settings for the snake binaries. Level presets
// are fixed in the domain package and are deliberately not configurable here.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Nilesh-194/snake-game-mobile/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Window WindowConfig `toml:"window"`
	Game   GameConfig   `toml:"game"`
	Sound  SoundConfig  `toml:"sound"`
	Log    LogConfig    `toml:"log"`
}

type WindowConfig struct {
	Width    int    `toml:"width" validate:"min=320,max=7680"`
	Height   int    `toml:"height" validate:"min=240,max=4320"`
	CellSize int    `toml:"cell_size" validate:"min=4,max=48"`
	Title    string `toml:"title" validate:"required"`
}

type GameConfig struct {
	// StartLevel skips the menu when set.
	StartLevel string `toml:"start_level" validate:"omitempty,oneof=easy medium hard"`
	// Seed for food placement; 0 picks one from the clock.
	Seed uint64 `toml:"seed"`
}

type SoundConfig struct {
	Enabled bool `toml:"enabled"`
	Volume  int  `toml:"volume" validate:"min=0,max=100"`
}

type LogConfig struct {
	Level   string `toml:"level" validate:"oneof=debug info warn error"`
	File    string `toml:"file"`
	MaxSize int64  `toml:"max_size" validate:"min=0"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:    1024,
			Height:   768,
			CellSize: 15,
			Title:    "Snake",
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  60,
		},
		Log: LogConfig{
			Level:   "info",
			MaxSize: 10 * 1024 * 1024,
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML into cfg, rejecting keys that do not map to a field.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return fmt.Errorf("failed to parse: %w", err)
	}
	return nil
}

func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Flags are the command-line overrides shared by the binaries.
type Flags struct {
	ConfigPath string
	Dump       bool

	level    string
	seed     uint64
	sound    bool
	logLevel string
	logFile  string

	set map[string]bool
}

func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to a TOML config file")
	fs.BoolVar(&f.Dump, "dump-config", false, "Print the effective config and exit")
	fs.StringVar(&f.level, "level", "", "Start directly on a level: "+strings.Join(domain.LevelNames(), ", "))
	fs.Uint64Var(&f.seed, "seed", 0, "Food placement seed (0 = random)")
	fs.BoolVar(&f.sound, "sound", true, "Enable sound cues")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	return f
}

// Apply copies explicitly set flags onto cfg. Call after fs.Parse.
func (f *Flags) Apply(fs *flag.FlagSet, cfg *Config) error {
	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	if f.set["level"] {
		cfg.Game.StartLevel = f.level
	}
	if f.set["seed"] {
		cfg.Game.Seed = f.seed
	}
	if f.set["sound"] {
		cfg.Sound.Enabled = f.sound
	}
	if f.set["log-level"] {
		cfg.Log.Level = f.logLevel
	}
	if f.set["log-file"] {
		cfg.Log.File = f.logFile
	}
	return cfg.Validate()
}

// Parse is the usual sequence: register flags, parse args, load the file and
// apply overrides.
func Parse(name string, args []string) (Config, *Flags, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, flags, err
	}

	cfg, err := Load(flags.ConfigPath)
	if err != nil {
		return cfg, flags, err
	}
	if err := flags.Apply(fs, &cfg); err != nil {
		return cfg, flags, err
	}
	return cfg, flags, nil
}
