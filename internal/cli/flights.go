package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/structkit/internal/config"
	"github.com/matzehuels/structkit/pkg/errors"
	"github.com/matzehuels/structkit/pkg/flights"
)

const connectTimeout = 10 * time.Second

// flightsCommand creates the "flights" command.
func (c *CLI) flightsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flights",
		Short: "Register and search flight numbers",
		Long: `Register and search flight numbers in the store selected by flights.backend
in the config file. The memory backend lives only as long as the process, so
use redis or mongo to keep numbers between invocations.`,
	}
	cmd.AddCommand(c.flightsRegisterCommand())
	cmd.AddCommand(c.flightsSearchCommand())
	return cmd
}

func (c *CLI) flightsRegisterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register NUMBER...",
		Short: "Register flight numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, closeStore, err := c.openFlights(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			for _, n := range args {
				added, err := svc.Register(ctx, n)
				if err != nil {
					return fmt.Errorf("register %s: %w", n, err)
				}
				if added {
					printSuccess("Registered %s", n)
				} else {
					printInfo("%s already registered", n)
				}
			}
			return nil
		},
	}
}

func (c *CLI) flightsSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search [QUERY]",
		Short: "Search registered flight numbers, ignoring case",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, closeStore, err := c.openFlights(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			found, err := svc.Search(ctx, query)
			if err != nil {
				return err
			}
			if len(found) == 0 {
				printInfo("No flights match %q", query)
				return nil
			}
			for _, n := range found {
				fmt.Fprintln(stdout, StyleValue.Render(n))
			}
			return nil
		},
	}
}

// openFlights builds a flight service over the configured store. The
// returned function releases the store's connections.
func (c *CLI) openFlights(ctx context.Context) (*flights.Service, func(), error) {
	store, closeStore, err := c.openFlightStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	return flights.NewService(store, c.Logger), closeStore, nil
}

func (c *CLI) openFlightStore(ctx context.Context) (flights.Store, func(), error) {
	switch c.cfg.Flights.Backend {
	case config.BackendRedis:
		client := redis.NewClient(c.redisOptions())
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, errors.Wrap(errors.ErrCodeResourceAccess, err, "connect to redis at %s", c.cfg.Redis.Addr)
		}
		return flights.NewRedisStore(client, ""), func() { _ = client.Close() }, nil

	case config.BackendMongo:
		cctx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		client, err := mongo.Connect(cctx, options.Client().ApplyURI(c.cfg.Mongo.URI))
		if err == nil {
			err = client.Ping(cctx, nil)
		}
		if err != nil {
			if client != nil {
				_ = client.Disconnect(context.Background())
			}
			return nil, nil, errors.Wrap(errors.ErrCodeResourceAccess, err, "connect to mongo")
		}
		coll := client.Database(c.cfg.Mongo.Database).Collection(c.cfg.Mongo.Collection)
		store, err := flights.NewMongoStore(cctx, coll)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, errors.Wrap(errors.ErrCodeResourceAccess, err, "prepare mongo collection")
		}
		return store, func() { _ = client.Disconnect(context.Background()) }, nil
	}
	return flights.NewMemoryStore(), func() {}, nil
}
