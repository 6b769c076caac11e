package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/fploracle/fpl-analytics/internal/usecase"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	playerService     *usecase.PlayerService
	teamStatsService  *usecase.TeamStatsService
	fixtureService    *usecase.FixtureService
	difficultyService *usecase.DifficultyService
	snapshotService   *usecase.SnapshotService
	logger            *slog.Logger
	validator         *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	teamStatsService *usecase.TeamStatsService,
	fixtureService *usecase.FixtureService,
	difficultyService *usecase.DifficultyService,
	snapshotService *usecase.SnapshotService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		playerService:     playerService,
		teamStatsService:  teamStatsService,
		fixtureService:    fixtureService,
		difficultyService: difficultyService,
		snapshotService:   snapshotService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) RefreshSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshSnapshot")
	defer span.End()

	snap, err := h.snapshotService.Refresh(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "refresh snapshot failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, refreshDTO{
		FetchedAt: snap.FetchedAt,
		Players:   len(snap.Players),
		Teams:     len(snap.Teams),
		Fixtures:  len(snap.Fixtures),
	})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// parsePlayerFilter reads the shared filter query parameters. Empty
// parameters leave the corresponding field at its zero value.
func parsePlayerFilter(r *http.Request) (usecase.PlayerFilter, error) {
	var filter usecase.PlayerFilter
	query := r.URL.Query()

	filter.Positions = splitCSV(query.Get("position"))

	for _, raw := range splitCSV(query.Get("team")) {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return usecase.PlayerFilter{}, fmt.Errorf("%w: team must be a positive integer, got %q", usecase.ErrInvalidInput, raw)
		}
		filter.Teams = append(filter.Teams, id)
	}

	var err error
	if filter.MinPrice, err = queryFloat(query.Get("min_price"), "min_price"); err != nil {
		return usecase.PlayerFilter{}, err
	}
	if filter.MaxPrice, err = queryFloat(query.Get("max_price"), "max_price"); err != nil {
		return usecase.PlayerFilter{}, err
	}
	if filter.MinOwnership, err = queryFloat(query.Get("min_ownership"), "min_ownership"); err != nil {
		return usecase.PlayerFilter{}, err
	}

	rawPoints := strings.TrimSpace(query.Get("min_points"))
	if rawPoints != "" {
		value, convErr := strconv.Atoi(rawPoints)
		if convErr != nil {
			return usecase.PlayerFilter{}, fmt.Errorf("%w: min_points must be an integer, got %q", usecase.ErrInvalidInput, rawPoints)
		}
		filter.MinPoints = value
	}

	return filter, nil
}

func queryFloat(raw, name string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}

func queryInt(raw, name string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
