// Package cli implements the structkit command-line interface.
//
// Commands:
//   - run / diff: execute operation scripts against the containers
//   - render: draw a binary search tree or a node chain with Graphviz
//   - stats: character statistics for a text file
//   - flights: register and search flight numbers
//   - funcs: list or apply the integer function map
//   - serve: start the HTTP API
//   - play: interactive stack, queue and tree playground
//   - cache: inspect and clear the diagram cache
//
// Every command accepts --verbose (-v) for debug logging and --config to
// point at a configuration file other than the default.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/matzehuels/structkit/internal/config"
	"github.com/matzehuels/structkit/pkg/buildinfo"
	"github.com/matzehuels/structkit/pkg/cache"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "structkit",
		Short:        "structkit exercises classic data structures",
		Long:         `structkit runs operation scripts against linked stacks, queues, lists and binary search trees, renders them with Graphviz, and serves a small HTTP API around them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/structkit/config.toml)")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.diffCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.flightsCommand())
	root.AddCommand(c.funcsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration, applies the log level and attaches the
// logger to the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := cfg.LogLevel()
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// newCache opens the configured cache backend, or a null cache when noCache
// is set. Failures to open fall back to no caching with a warning.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	switch c.cfg.Cache.Backend {
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, c.redisOptions(), "")
		if err != nil {
			c.Logger.Warn("redis cache unavailable, caching disabled", "addr", c.cfg.Redis.Addr, "err", err)
			return cache.NewNullCache()
		}
		return cache.Instrument(rc, "render")
	case config.BackendFile:
		dir, err := c.cfg.CacheDir()
		if err != nil {
			return cache.NewNullCache()
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			c.Logger.Warn("file cache unavailable, caching disabled", "dir", dir, "err", err)
			return cache.NewNullCache()
		}
		return cache.Instrument(fc, "render")
	}
	return cache.NewNullCache()
}

func (c *CLI) redisOptions() *redis.Options {
	return &redis.Options{
		Addr:     c.cfg.Redis.Addr,
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	}
}
