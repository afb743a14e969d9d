package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/champagne/internal/server"
	"github.com/matzehuels/champagne/pkg/cache"
	"github.com/matzehuels/champagne/pkg/observability"
	"github.com/matzehuels/champagne/pkg/pipeline"
)

const (
	defaultAddr = ":8080"

	// redisKeyPrefix namespaces keys in a shared Redis instance.
	redisKeyPrefix = "champagne:v1:"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Serve the HTTP API.

Results are cached in Redis when --redis-url (or CHAMPAGNE_REDIS_URL) is set,
otherwise in the local cache directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if redisURL == "" {
				redisURL = os.Getenv("CHAMPAGNE_REDIS_URL")
			}
			return c.runServe(cmd.Context(), addr, redisURL, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "Redis URL for the shared cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, redisURL string, noCache bool) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newServeRunner(ctx, redisURL, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	hooks := observability.NewLogHooks(logger)
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	printSuccess("Listening on %s", StyleHighlight.Render(addr))
	printKeyValue("cache", cacheDescription(runner.Cache))
	logger.Info("serving", "addr", addr)

	return server.New(runner, logger).ListenAndServe(ctx, addr)
}

// newServeRunner picks the cache backend: Redis when a URL is given, else the
// local file cache.
func (c *CLI) newServeRunner(ctx context.Context, redisURL string, noCache bool) (*pipeline.Runner, error) {
	if noCache || redisURL == "" {
		return c.newRunner(noCache)
	}
	rc, err := cache.NewRedisCache(ctx, redisURL)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return pipeline.NewRunner(rc, cache.NewScopedKeyer(nil, redisKeyPrefix), c.Logger), nil
}

func cacheDescription(c cache.Cache) string {
	switch c := c.(type) {
	case *cache.RedisCache:
		return "redis"
	case *cache.FileCache:
		return c.Dir()
	default:
		return "disabled"
	}
}
