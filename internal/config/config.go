// Package config loads the server configuration from layered sources:
// built-in defaults, an optional YAML file, a .env file and MOVIES_*
// environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables before they are mapped to
// config keys: MOVIES_LIMITER_RPS -> limiter.rps.
const EnvPrefix = "MOVIES_"

type Config struct {
	Port    int           `koanf:"port" validate:"min=1,max=65535"`
	Env     string        `koanf:"env" validate:"oneof=development staging production"`
	Dataset string        `koanf:"dataset"`
	Log     LogConfig     `koanf:"log"`
	DB      DBConfig      `koanf:"db"`
	Limiter LimiterConfig `koanf:"limiter"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=info error fatal off"`
}

// DBConfig is only used when DSN is set; otherwise the dataset is read from
// Dataset or the embedded default.
type DBConfig struct {
	DSN          string        `koanf:"dsn"`
	MaxOpenConns int           `koanf:"max_open_conns" validate:"min=1"`
	MaxIdleConns int           `koanf:"max_idle_conns" validate:"min=0,ltefield=MaxOpenConns"`
	MaxIdleTime  time.Duration `koanf:"max_idle_time" validate:"min=0"`
}

type LimiterConfig struct {
	RPS     float64 `koanf:"rps" validate:"gt=0"`
	Burst   int     `koanf:"burst" validate:"min=1"`
	Enabled bool    `koanf:"enabled"`
}

func defaultConfig() Config {
	return Config{
		Port: 4000,
		Env:  "development",
		Log:  LogConfig{Level: "info"},
		DB: DBConfig{
			MaxOpenConns: 25,
			MaxIdleConns: 25,
			MaxIdleTime:  15 * time.Minute,
		},
		Limiter: LimiterConfig{
			RPS:     2,
			Burst:   4,
			Enabled: true,
		},
	}
}

// Load builds the configuration. path names an optional YAML file; an empty
// path skips that layer. A .env file in the working directory is read if
// present and never overrides variables already set in the environment.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envKey maps MOVIES_DB_MAX_OPEN_CONNS to db.max_open_conns. Only the first
// underscore after a section name becomes a separator.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range []string{"log", "db", "limiter"} {
		if strings.HasPrefix(key, section+"_") {
			return section + "." + strings.TrimPrefix(key, section+"_")
		}
	}
	return key
}

// Validate checks the struct tags and returns the first failure.
func (c Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid config: %s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
	}
	return fmt.Errorf("invalid config: %w", err)
}
