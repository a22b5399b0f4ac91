// Package config loads lexiz settings from defaults, an optional YAML file,
// LEXIZ_ environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/abhisek/lexiz/internal/vocab"
)

// EnvPrefix is the prefix of environment overrides. Nested keys use a
// double underscore: LEXIZ_STUDY__WORD_COUNT sets study.word_count.
const EnvPrefix = "LEXIZ_"

// Config is the resolved application configuration.
type Config struct {
	// DB is the SQLite path. Empty resolves to store.DefaultDBPath.
	DB string `koanf:"db"`

	Log        LogConfig        `koanf:"log"`
	Study      StudyConfig      `koanf:"study"`
	Scramble   ScrambleConfig   `koanf:"scramble"`
	Flashcards FlashcardsConfig `koanf:"flashcards"`
}

type LogConfig struct {
	Mode string `koanf:"mode" validate:"oneof=dev prod off"`
	File string `koanf:"file"`
}

type StudyConfig struct {
	WordCount      int               `koanf:"word_count" validate:"min=1,max=500"`
	Modes          []vocab.StudyMode `koanf:"modes" validate:"required,min=1,dive,oneof=multiple_choice typing true_false"`
	RandomizeModes bool              `koanf:"randomize_modes"`
}

type ScrambleConfig struct {
	SplitCount      int    `koanf:"split_count" validate:"min=1"`
	InteractionMode string `koanf:"interaction_mode" validate:"oneof=click type"`
}

type FlashcardsConfig struct {
	// Resume continues the saved queue for the same table/relation selection.
	Resume bool `koanf:"resume"`
}

// Defaults returns the built-in configuration values keyed by koanf path.
func Defaults() map[string]any {
	return map[string]any{
		"db":                        "",
		"log.mode":                  "off",
		"log.file":                  "",
		"study.word_count":          10,
		"study.modes":               []string{string(vocab.ModeMultipleChoice), string(vocab.ModeTyping), string(vocab.ModeTrueFalse)},
		"study.randomize_modes":     true,
		"scramble.split_count":      3,
		"scramble.interaction_mode": "click",
		"flashcards.resume":         true,
	}
}

// FlagKeys maps command-line flag names to config keys.
// Flags not listed here are left to the command that defines them.
var FlagKeys = map[string]string{
	"db":          "db",
	"log-mode":    "log.mode",
	"log-file":    "log.file",
	"words":       "study.word_count",
	"mode":        "study.modes",
	"randomize":   "study.randomize_modes",
	"split":       "scramble.split_count",
	"interaction": "scramble.interaction_mode",
}

// LoadOptions controls where Load looks for configuration.
type LoadOptions struct {
	// File is an explicit config path. It must exist when set.
	File string

	// Flags, when set, overrides config with flags the user changed.
	Flags *pflag.FlagSet
}

// Load resolves the configuration and validates it.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	for key, val := range Defaults() {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("set default %s: %w", key, err)
		}
	}

	path := opts.File
	if path == "" {
		path = DefaultPath()
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if opts.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(opts.Flags, ".", k, flagKey(opts.Flags)), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/lexiz/config.yaml,
// falling back to ~/.config/lexiz/config.yaml.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "lexiz", "config.yaml")
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func flagKey(fs *pflag.FlagSet) func(*pflag.Flag) (string, any) {
	return func(f *pflag.Flag) (string, any) {
		key, ok := FlagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	var errs []string
	for _, fe := range verrs {
		errs = append(errs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
}
