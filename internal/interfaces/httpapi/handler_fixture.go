package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/fploracle/fpl-analytics/internal/usecase"
)

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	gameweek, err := queryInt(r.URL.Query().Get("gameweek"), "gameweek", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtures, err := h.fixtureService.ListFixtures(ctx, gameweek)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "gameweek", gameweek, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(fixtures))
	for _, f := range fixtures {
		items = append(items, fixtureToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CompareTeamSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompareTeamSchedules")
	defer span.End()

	rawTeams := splitCSV(r.URL.Query().Get("teams"))
	if len(rawTeams) == 0 {
		writeError(ctx, w, fmt.Errorf("%w: teams parameter is required", usecase.ErrInvalidInput))
		return
	}

	teamIDs := make([]int, 0, len(rawTeams))
	for _, raw := range rawTeams {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: teams must be positive integers, got %q", usecase.ErrInvalidInput, raw))
			return
		}
		teamIDs = append(teamIDs, id)
	}

	maxGameweek, err := queryInt(r.URL.Query().Get("max_gameweek"), "max_gameweek", 38)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.difficultyService.CompareTeams(ctx, teamIDs, maxGameweek)
	if err != nil {
		h.logger.WarnContext(ctx, "compare team schedules failed", "teams", rawTeams, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]comparisonRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, comparisonRowToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
