package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/jsteinbrecher/remote-data-hooks-go/example/features/userdirectory"
	"github.com/jsteinbrecher/remote-data-hooks-go/example/shell/config"
	"github.com/jsteinbrecher/remote-data-hooks-go/example/shell/render"
	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata/boltcache"
	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata/httpengine"
	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata/oteladapters"
	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata/postgrescache"
)

const instrumentationName = "userdirectory-demo"

var (
	endpointURL string
	modalTitle  string
)

// Execute runs the user directory demo CLI.
func Execute() error {
	root := &cobra.Command{
		Use:          "userdirectory",
		Short:        "Fetch a remote user list and render it as a directory",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&endpointURL, "endpoint", "", "user endpoint URL (overrides USERDIR_ENDPOINT_URL)")
	root.PersistentFlags().StringVar(&modalTitle, "modal", "", "wrap the output in a modal frame with this title")

	return root.Execute()
}

func runShow(ctx context.Context) error {
	cfg, err := config.ParseEnv()
	if err != nil {
		return err
	}

	if endpointURL != "" {
		cfg.EndpointURL = endpointURL
	}

	fetcherOptions := []httpengine.Option{
		httpengine.WithRequestTimeout(cfg.RequestTimeout),
		httpengine.WithUserAgent(cfg.UserAgent),
	}

	cacheOption, closeCache, err := responseCacheOption(ctx, cfg)
	if err != nil {
		return err
	}
	if closeCache != nil {
		defer closeCache()
	}
	fetcherOptions = append(fetcherOptions, cacheOption...)

	handlerOptions := []userdirectory.Option{}

	if cfg.ObservabilityEnabled {
		logger := oteladapters.NewSlogBridgeLogger(instrumentationName)
		metrics := oteladapters.NewMetricsCollector(otel.GetMeterProvider().Meter(instrumentationName))
		tracing := oteladapters.NewTracingCollector(otel.GetTracerProvider().Tracer(instrumentationName))

		fetcherOptions = append(
			fetcherOptions,
			httpengine.WithContextualLogger(logger),
			httpengine.WithMetrics(metrics),
			httpengine.WithTracing(tracing),
		)
		handlerOptions = append(
			handlerOptions,
			userdirectory.WithContextualLogging(logger),
			userdirectory.WithMetrics(metrics),
			userdirectory.WithTracing(tracing),
		)
	}

	fetcher, err := httpengine.NewFetcherFromHTTPClient(&http.Client{}, fetcherOptions...)
	if err != nil {
		return err
	}

	renderer, err := buildRenderer()
	if err != nil {
		return err
	}

	handler, err := userdirectory.NewViewHandler(fetcher, cfg.EndpointURL, renderer, handlerOptions...)
	if err != nil {
		return err
	}

	if _, err = handler.Handle(ctx); err != nil {
		return fmt.Errorf("show user directory: %w", err)
	}

	return nil
}

// responseCacheOption picks the response cache backend from the config:
// Postgres wins over Bolt, neither means no cache.
func responseCacheOption(ctx context.Context, cfg config.Config) ([]httpengine.Option, func(), error) {
	switch {
	case cfg.PostgresDSN != "":
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres cache: %w", err)
		}

		cache, err := postgrescache.NewCacheFromPGXPool(pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}

		return []httpengine.Option{httpengine.WithResponseCache(cache)}, pool.Close, nil

	case cfg.BoltPath != "":
		cache, err := boltcache.Open(cfg.BoltPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt cache: %w", err)
		}

		closeCache := func() { _ = cache.Close() }

		return []httpengine.Option{httpengine.WithResponseCache(cache)}, closeCache, nil

	default:
		return nil, nil, nil
	}
}

func buildRenderer() (userdirectory.Renderer, error) {
	listRenderer, err := render.NewListRenderer(os.Stdout)
	if err != nil {
		return nil, err
	}

	if modalTitle == "" {
		return listRenderer, nil
	}

	return render.NewModalRenderer(os.Stdout, modalTitle, listRenderer)
}
