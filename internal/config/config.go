// Package config loads the structkit configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/structkit/config.toml
// (~/.config/structkit/config.toml when XDG_CONFIG_HOME is unset). Every key
// is optional; missing keys keep the values from [Default].
//
//	[log]
//	level = "debug"
//
//	[cache]
//	backend = "redis"
//	ttl = "24h"
//
//	[redis]
//	addr = "localhost:6379"
//
//	[flights]
//	backend = "mongo"
//
//	[mongo]
//	uri = "mongodb://localhost:27017"
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/structkit/pkg/errors"
)

const appName = "structkit"

// Backend names.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

// Config is the full configuration.
type Config struct {
	Log     Log     `toml:"log"`
	Cache   Cache   `toml:"cache"`
	Redis   Redis   `toml:"redis"`
	Flights Flights `toml:"flights"`
	Mongo   Mongo   `toml:"mongo"`
	Server  Server  `toml:"server"`
}

type Log struct {
	Level string `toml:"level"`
}

// Cache configures storage of rendered diagrams.
type Cache struct {
	// Backend is file, redis or none.
	Backend string `toml:"backend"`
	// Dir overrides the file cache directory.
	Dir string        `toml:"dir"`
	TTL time.Duration `toml:"ttl"`
}

type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Flights selects where registered flight numbers are kept: memory, redis
// or mongo.
type Flights struct {
	Backend string `toml:"backend"`
}

type Mongo struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

type Server struct {
	Addr            string        `toml:"addr"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Log:     Log{Level: "info"},
		Cache:   Cache{Backend: BackendFile, TTL: 7 * 24 * time.Hour},
		Redis:   Redis{Addr: "localhost:6379"},
		Flights: Flights{Backend: BackendMemory},
		Mongo:   Mongo{URI: "mongodb://localhost:27017", Database: appName, Collection: "flights"},
		Server:  Server{Addr: ":8080", ShutdownTimeout: 10 * time.Second},
	}
}

// Path returns the default configuration file location.
func Path() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns the file cache directory: cfg.Cache.Dir when set,
// otherwise $XDG_CACHE_HOME/structkit or ~/.cache/structkit.
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// Load reads the file at path over the defaults. An empty path selects
// [Path], and a missing default file is not an error; a missing explicit
// file is.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeResourceAccess, err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "log.level")
	}
	if !slices.Contains([]string{BackendFile, BackendRedis, BackendNone}, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend must be file, redis or none, got %q", c.Cache.Backend)
	}
	if !slices.Contains([]string{BackendMemory, BackendRedis, BackendMongo}, c.Flights.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "flights.backend must be memory, redis or mongo, got %q", c.Flights.Backend)
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	return nil
}

// LogLevel returns the parsed log level. Validate guarantees it parses.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
