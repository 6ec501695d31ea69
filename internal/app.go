package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	logger_adapter "github.com/VanSingco/realstate-api/internal/adapters/logger"
	"github.com/VanSingco/realstate-api/internal/adapters/realtorfetcher"
	"github.com/VanSingco/realstate-api/internal/adapters/rest"
	"github.com/VanSingco/realstate-api/internal/configs"
	"github.com/VanSingco/realstate-api/internal/core/port"
	"github.com/VanSingco/realstate-api/internal/core/usecase"
	"github.com/VanSingco/realstate-api/pkg/fluentlogger"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// App is the application structure.
type App struct {
	server       *rest.Server
	logger       port.LoggerPort
	fluentClient *fluent.Fluent
}

// NewApp is the composition root: every dependency is created and wired here.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. Logger initialization ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// The Fluent Bit logger joins in when enabled in the configuration.
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. The base application logger with service context ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Debug("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. Outgoing adapter: the Realtor fetcher ---
	realtorAdapter, err := realtorfetcher.NewRealtorFetcherAdapter(realtorfetcher.Config{
		BaseURL:     appConfig.Realtor.BaseURL,
		Parallelism: appConfig.Realtor.Parallelism,
		RandomDelay: time.Duration(appConfig.Realtor.RandomDelayMs) * time.Millisecond,
	})
	if err != nil {
		appLogger.Error("Failed to create Realtor Fetcher Adapter", err, nil)
		return nil, fmt.Errorf("failed to initialize realtor fetcher: %w", err)
	}
	appLogger.Info("Realtor Fetcher Adapter initialized.", nil)

	// --- 4. Use cases ---
	searchPropertiesUseCase := usecase.NewSearchPropertiesUseCase(realtorAdapter)
	appLogger.Info("All use cases initialized.", nil)

	// --- 5. Incoming adapter: the REST server ---
	searchHandler := rest.NewSearchHandler(searchPropertiesUseCase)
	infoHandler := rest.NewGetInfoHandler(appConfig.AppName)
	server := rest.NewServer(
		appConfig.Server.Host,
		appConfig.Server.Port,
		appConfig.Server.CORSOrigins,
		searchHandler,
		infoHandler,
		baseLogger,
	)

	return &App{
		server:       server,
		logger:       appLogger,
		fluentClient: fluentClient,
	}, nil
}

// Run starts the application and owns its lifecycle.
func (a *App) Run() error {
	go func() {
		if err := a.server.Start(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("Failed to start REST server", err, nil)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	a.logger.Debug("Service is shutting down...", port.Fields{"signal": sig.String()})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Stop(ctx); err != nil {
		a.logger.Error("Server shutdown failed", err, nil)
		os.Exit(1)
	}

	a.logger.Info("Application shut down gracefully.", nil)
	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
