package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/fploracle/fpl-analytics/internal/domain/fixture"
	"github.com/fploracle/fpl-analytics/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamStatsService.ListTeams(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamStats")
	defer span.End()

	filter, err := parsePlayerFilter(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.teamStatsService.TeamStats(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "team stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamStatsDTO, 0, len(stats))
	for _, s := range stats {
		items = append(items, teamStatsToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamDifficultyTimeline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamDifficultyTimeline")
	defer span.End()

	rawTeamID := r.PathValue("teamID")
	teamID, err := strconv.Atoi(rawTeamID)
	if err != nil || teamID <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: team id must be a positive integer, got %q", usecase.ErrInvalidInput, rawTeamID))
		return
	}

	window, err := queryInt(r.URL.Query().Get("window"), "window", 5)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	source := fixture.SourceGranular
	if raw := strings.TrimSpace(r.URL.Query().Get("source")); raw != "" {
		source = fixture.DifficultySource(raw)
	}

	entries, err := h.difficultyService.Timeline(ctx, teamID, window, source)
	if err != nil {
		h.logger.WarnContext(ctx, "difficulty timeline failed", "team_id", teamID, "window", window, "source", source, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]timelineEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, timelineEntryToDTO(entry))
	}

	writeSuccess(ctx, w, http.StatusOK, timelineDTO{
		TeamID:  teamID,
		Window:  window,
		Source:  string(source),
		Entries: items,
	})
}
