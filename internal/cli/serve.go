package cli

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/structkit/internal/api"
)

// serveCommand creates the "serve" command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Serve flight search, the integer function map and tree rendering over HTTP.
The listen address defaults to server.addr from the config file. Interrupt to
shut down gracefully.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.cfg.Server.Addr
			}
			return c.serve(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

// serve runs the API until ctx is cancelled, then drains open requests
// within the configured shutdown timeout.
func (c *CLI) serve(ctx context.Context, addr string) error {
	svc, closeStore, err := c.openFlights(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	store := c.newCache(ctx, false)
	defer store.Close()

	srv := &http.Server{
		Addr: addr,
		Handler: api.New(api.Options{
			Flights:  svc,
			Cache:    store,
			CacheTTL: c.cfg.Cache.TTL,
			Logger:   c.Logger,
		}).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c.Logger.Info("listening", "addr", addr, "flights", c.cfg.Flights.Backend, "cache", c.cfg.Cache.Backend)
		if err := srv.ListenAndServe(); !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), c.cfg.Server.ShutdownTimeout)
		defer cancel()
		c.Logger.Info("shutting down")
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
