package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"smartdomain/internal/ai"
	"smartdomain/internal/api"
	"smartdomain/internal/api/handler/v1handler"
	"smartdomain/internal/apikeys"
	"smartdomain/internal/config"
	"smartdomain/internal/domaincheck"
	"smartdomain/internal/favorites"
	"smartdomain/internal/generator"
	"smartdomain/internal/history"
	"smartdomain/internal/ratelimit"
	"smartdomain/internal/stats"
	"smartdomain/internal/worker"
	"smartdomain/pkg/cache"
	"smartdomain/pkg/llm"
	"smartdomain/pkg/llm/bedrock"
	"smartdomain/pkg/llm/gemini"
	"smartdomain/pkg/logger"
	"smartdomain/pkg/metrics"
	"smartdomain/pkg/registrar"
	"smartdomain/pkg/registrar/godaddy"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const (
	providerGemini  = "gemini"
	providerBedrock = "bedrock"
)

// getLLM creates the configured completion client. When the provider cannot
// be created the service still starts and generation reports UNAVAILABLE.
func getLLM(ctx context.Context, cfg *config.Config) (llm.Client, func()) {
	var (
		client llm.Client
		closer = func() {}
		err    error
	)

	switch cfg.LLM.Provider {
	case providerGemini:
		var c *gemini.Client
		c, err = gemini.New(ctx, cfg.LLM.APIKey, cfg.LLM.Model)
		if err == nil {
			client = c
			closer = func() {
				if err := c.Close(); err != nil {
					logger.Warn(ctx, "could not close gemini client", zap.Error(err))
				}
			}
		}
	case providerBedrock:
		client, err = bedrock.New(ctx, cfg.LLM.Region, cfg.LLM.Model)
	default:
		err = fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}

	if err != nil {
		logger.Warn(ctx, "running without a language model", zap.Error(err))

		return llm.Unconfigured{Cause: err}, closer
	}

	return client, closer
}

// getRegistrar returns nil when no registrar credentials are configured.
func getRegistrar(ctx context.Context, cfg *config.Config) registrar.Client {
	if cfg.Registrar.APIKey == "" || cfg.Registrar.APISecret == "" {
		logger.Warn(ctx, "registrar is not configured, domains will be reported as unchecked")

		return nil
	}

	return godaddy.New(&http.Client{Timeout: cfg.Registrar.Timeout}, godaddy.Options{
		APIKey:            cfg.Registrar.APIKey,
		APISecret:         cfg.Registrar.APISecret,
		BaseURL:           cfg.Registrar.BaseURL,
		RequestsPerMinute: cfg.Registrar.RequestsPerMinute,
		Burst:             1,
	})
}

// getCache connects to redis, or returns a no-op cache when it is not configured.
func getCache(ctx context.Context, cfg *config.Config) (cache.Cache, func()) {
	c, closeFn := cache.New(cache.Options{
		Addr:             cfg.Redis.Addr,
		Password:         cfg.Redis.Password,
		DB:               cfg.Redis.DB,
		DialTimeout:      cfg.Redis.DialTimeout,
		OperationTimeout: cfg.Redis.OperationTimeout,
		PoolSize:         cfg.Redis.PoolSize,
	})
	if err := c.Ping(ctx); err != nil {
		logger.Warn(ctx, "cache is not reachable, requests will run uncached", zap.Error(err))
	}

	return c, func() {
		logger.Info(ctx, "closing cache client...")
		if err := closeFn(); err != nil {
			logger.Warn(ctx, "could not close cache client", zap.Error(err))
		}
	}
}

// getInstruments exports pipeline metrics on the default prometheus registry.
func getInstruments(ctx context.Context) (*metrics.Instruments, func(ctx context.Context)) {
	mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}
	otel.SetMeterProvider(mp)

	instruments, err := metrics.New(mp)
	if err != nil {
		logger.Fatal(ctx, "could not create instruments", zap.Error(err))
	}

	return instruments, func(ctx context.Context) {
		if err := mp.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not shutdown meter provider", zap.Error(err))
		}
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps v1handler.Deps) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{Deps: deps}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			c, closeCache := getCache(ctx, cfg)
			defer closeCache()

			llmClient, closeLLM := getLLM(ctx, cfg)
			defer closeLLM()

			instruments, shutdownMetrics := getInstruments(ctx)

			aiOptions := ai.NewOptions(cfg)
			checker := domaincheck.New(getRegistrar(ctx, cfg), c, instruments, domaincheck.NewOptions(cfg))
			gen := generator.New(
				ai.NewAnalyzer(llmClient, aiOptions),
				ai.NewNamer(llmClient, aiOptions),
				checker,
				c,
				instruments,
				generator.NewOptions(cfg),
			)

			hist := history.New(pgsql, pgsql, history.NewOptions(cfg))

			// the queue outlives the signal so in-flight jobs can finish during shutdown
			riverClient, err := worker.Start(context.WithoutCancel(ctx), pgsql.Pool, hist, pgsql, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, v1handler.Deps{
				Generator: gen,
				Favorites: favorites.New(pgsql, favorites.NewOptions(cfg)),
				History:   hist,
				APIKeys:   apikeys.New(pgsql, apikeys.NewOptions(cfg)),
				Limiter:   ratelimit.New(pgsql, ratelimit.NewOptions(cfg)),
				Stats:     stats.New(pgsql, c, stats.DefaultOptions),
				Database:  pgsql,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}

			shutdownMetrics(shutdownCtx)
		},
	}

	return cmd
}
