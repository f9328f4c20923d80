package cli

import (
	"context"
	"net"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathviz/internal/api"
	"github.com/matzehuels/pathviz/internal/config"
	"github.com/matzehuels/pathviz/pkg/observability"
	"github.com/matzehuels/pathviz/pkg/session"
)

// serveCommand creates the serve command, which runs the HTTP API until the
// process is interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve exposes path queries and interactive sessions over HTTP.

Sessions live in memory unless session.backend is "redis" in the config file
or PATHVIZ_SESSION_BACKEND=redis is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	store, err := c.newSessionStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	observability.SetHTTPHooks(api.NewLogHooks(logger))
	defer observability.Reset()

	srv := api.New(runner, store,
		api.WithLogger(logger),
		api.WithCanvas(c.Config.Render.Width, c.Config.Render.Height))

	printSuccess("Listening on %s", StyleHighlight.Render(addr))
	printDetail("Sessions: %s, cache: %s", c.Config.Session.Backend, c.Config.Cache.Backend)
	printNextStep("Try", "curl http://localhost"+portOf(addr)+"/healthz")

	return srv.ListenAndServe(ctx, addr,
		c.Config.Server.ReadTimeout.Duration,
		c.Config.Server.WriteTimeout.Duration)
}

// newSessionStore opens the configured session backend.
func (c *CLI) newSessionStore(ctx context.Context) (session.Store, error) {
	ttl := c.Config.Session.TTL.Duration
	if c.Config.Session.Backend == config.SessionRedis {
		return session.NewRedisStore(ctx, session.RedisConfig{
			Addr:     c.Config.Redis.Addr,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
			TTL:      ttl,
		})
	}
	return session.NewMemoryStore(ttl), nil
}

// portOf returns the ":port" suffix of a listen address.
func portOf(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return ""
	}
	return ":" + port
}
