package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fploracle/fpl-analytics/external/fpl"
	"github.com/fploracle/fpl-analytics/internal/config"
	"github.com/fploracle/fpl-analytics/internal/interfaces/httpapi"
	"github.com/fploracle/fpl-analytics/internal/platform/cache"
	"github.com/fploracle/fpl-analytics/internal/platform/logging"
	"github.com/fploracle/fpl-analytics/internal/platform/resilience"
	"github.com/fploracle/fpl-analytics/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	fplClient := fpl.NewClient(fpl.ClientConfig{
		HTTPClient: &http.Client{Timeout: cfg.FPLTimeout},
		BaseURL:    cfg.FPLBaseURL,
		Timeout:    cfg.FPLTimeout,
		MaxRetries: cfg.FPLMaxRetries,
		Logger:     logging.Default(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FPLCircuitEnabled,
			FailureThreshold: cfg.FPLCircuitFailureCount,
			OpenTimeout:      cfg.FPLCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FPLCircuitHalfOpenMaxReq,
		},
	})

	snapshotStore := cache.NewStore(cfg.SnapshotCacheTTL)
	snapshotSvc := usecase.NewSnapshotService(fplClient, snapshotStore)

	handler := httpapi.NewHandler(
		usecase.NewPlayerService(snapshotSvc),
		usecase.NewTeamStatsService(snapshotSvc),
		usecase.NewFixtureService(snapshotSvc),
		usecase.NewDifficultyService(snapshotSvc),
		snapshotSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
