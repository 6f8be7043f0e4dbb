package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/UnknownOlympus/pitstop/internal/api"
	"github.com/UnknownOlympus/pitstop/internal/config"
	"github.com/UnknownOlympus/pitstop/internal/geocoding"
	"github.com/UnknownOlympus/pitstop/internal/metrics"
	"github.com/UnknownOlympus/pitstop/internal/overpass"
	"github.com/UnknownOlympus/pitstop/internal/repository"
	"github.com/UnknownOlympus/pitstop/internal/service"
	"github.com/UnknownOlympus/pitstop/internal/vehicle"
	"github.com/UnknownOlympus/pitstop/internal/viewport"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

const shutdownTimeout = 5 * time.Second

// pinger is a dependency the health check verifies.
type pinger interface {
	Ping(ctx context.Context) error
}

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// The lookup journal is optional; without database settings lookups are not recorded.
	var (
		journal repository.Interface
		health  pinger
	)
	if cfg.Database.Enabled() {
		dsn := repository.DSN(
			cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
		)
		dtb, err := repository.NewDatabase(ctx, dsn)
		if err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}
		defer dtb.Close()

		repo := repository.NewRepository(dtb, logger)
		if err = repo.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to prepare lookup journal: %v", err)
		}
		journal, health = repo, repo
		logger.InfoContext(ctx, "Lookup journal enabled", "host", cfg.Database.Host, "db", cfg.Database.Name)
	}

	// Create geocoding provider using factory pattern based on configuration
	// This allows runtime selection between different providers (Nominatim, Google, Visicom)
	geoProvider, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:      geocoding.ProviderType(cfg.Provider.Type),
		APIKey:    cfg.Provider.APIKey,
		Country:   cfg.Country,
		RateLimit: cfg.Provider.RateLimit,
		Timeout:   cfg.Timeout,
		Logger:    logger,
	})
	if err != nil {
		log.Fatalf("Failed to create geocoding provider: %v", err)
	}

	logger.InfoContext(ctx, "Geocoding provider initialized", "type", cfg.Provider.Type, "country", cfg.Country)

	lookups := service.NewLookupService(
		logger,
		geoProvider,
		cfg.Provider.Type, // Provider name for metrics
		overpass.NewClient(cfg.OverpassURL, cfg.Timeout, logger),
		viewport.NewController(),
		journal,
		appMetrics,
	)

	if cfg.Env != envLocal {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := api.NewHandler(lookups, vehicle.NewRegistry())

	// Log that the application has started.
	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	// Start the servers in goroutines to allow main to listen for signals.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		startMonitoringServer(ctx, logger, reg, health, cfg.HealthPort)
	}()
	go func() {
		defer wg.Done()
		startAPIServer(ctx, logger, api.NewRouter(logger, handler), cfg.APIPort)
	}()

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	// Log that a shutdown signal has been received.
	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	// Wait for both servers to drain.
	wg.Wait()

	// Log graceful shutdown completion.
	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// startAPIServer serves the lookup API until ctx is canceled.
func startAPIServer(ctx context.Context, log *slog.Logger, handler http.Handler, port int) {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	log.InfoContext(ctx, "Starting API server", "port", port)
	serve(ctx, log, server, "API")
}

// startMonitoringServer starts an HTTP server that provides health check and metrics endpoints.
// It listens on the specified port and logs the server's status and any errors encountered.
//
// Parameters:
// - ctx: A context.Context for managing cancellation and timeouts.
// - log: A logger for logging server events and errors.
// - reg: A registry with Prometheus collectors.
// - dtb: The journal database to ping, or nil when the journal is disabled.
// - port: The port number on which the server will listen.
func startMonitoringServer(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	dtb pinger,
	port int,
) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", healthHandler(log, dtb))
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	log.InfoContext(ctx, "Starting monitoring server", "port", port)
	readTimeout := 5
	writeTimeout := 10
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
	}

	serve(ctx, log, server, "Monitoring")
}

func healthHandler(log *slog.Logger, dtb pinger) http.HandlerFunc {
	return func(writer http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		log.DebugContext(ctx, "Performing health checks...")
		status, body := http.StatusOK, "OK"
		if dtb != nil {
			if err := dtb.Ping(ctx); err != nil {
				status, body = http.StatusServiceUnavailable, "DB ping failed"
			}
		}
		writer.WriteHeader(status)
		_, err := writer.Write([]byte(body))
		if err != nil {
			log.ErrorContext(ctx, "failed to write reply", "error", err)
		}

		log.DebugContext(ctx, "Health checks completed", "status", status)
	}
}

// serve runs the server until it fails or ctx is canceled, then drains open connections.
func serve(ctx context.Context, log *slog.Logger, server *http.Server, name string) {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.ErrorContext(ctx, name+" server failed", "error", err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.ErrorContext(shutdownCtx, name+" server shutdown failed", "error", err)
		}
	}
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelError,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
