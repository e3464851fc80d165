package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"

	"github.com/ptorres/flight-tracker/internal/app/config"
	"github.com/ptorres/flight-tracker/internal/app/dto"
	"github.com/ptorres/flight-tracker/internal/app/endpoints"
	"github.com/ptorres/flight-tracker/internal/app/service"
	"github.com/ptorres/flight-tracker/internal/app/transport"
	"github.com/ptorres/flight-tracker/internal/pkg/airline"
	"github.com/ptorres/flight-tracker/internal/pkg/amadeus"
	"github.com/ptorres/flight-tracker/internal/pkg/archive"
	"github.com/ptorres/flight-tracker/internal/pkg/logger"
	"github.com/ptorres/flight-tracker/internal/pkg/tracking"
)

// @title           Flight Tracker API
// @version         0.0.1
// @description     flight-tracker
// @host      localhost:8080
// @BasePath  /
func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup

	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// redis backs the provider rate limiter only
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	limiter := redis_rate.NewLimiter(redisClient)

	amadeusClient := amadeus.NewClient(amadeus.Config{
		BaseURL:      cfg.Amadeus.BaseURL,
		TokenURL:     cfg.Amadeus.TokenURL,
		APIKey:       cfg.Amadeus.APIKey,
		APISecret:    cfg.Amadeus.APISecret,
		Timeout:      cfg.Amadeus.Timeout,
		MaxRetries:   cfg.Amadeus.MaxRetries,
		RateLimitRPS: cfg.Amadeus.RateLimitRPS,
		Limiter:      limiter,
	})

	db, err := tracking.Open(cfg.DB.DSN,
		cfg.DB.MaxOpenConnections, cfg.DB.MaxIdleConnections,
		cfg.DB.MaxConnectionLifetime, cfg.DB.MaxConnectionIdleTime)
	if err != nil {
		slog.ErrorContext(ctx, "failed to open tracked-search database", slog.String("error", err.Error()))
		panic(err)
	}

	trackerService := service.NewTrackerService(
		amadeusClient,
		airline.NewResolver(amadeusClient),
		archive.NewWriter(cfg.Archive.Dir),
		tracking.NewStore(db),
		cfg.Normalization.Lenient,
	)

	return endpoints.Endpoints{
		TrackerEndpoint: endpoints.MakeTrackerEndpoint(trackerService),
	}
}
