package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	filter, err := parsePlayerFilter(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.ListPlayers(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type topPerformersRequest struct {
	Metric string `validate:"omitempty,oneof=total_points value_score form ownership goals price"`
	Limit  int    `validate:"omitempty,min=1,max=100"`
}

func (h *Handler) ListTopPerformers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopPerformers")
	defer span.End()

	filter, err := parsePlayerFilter(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	metric := strings.TrimSpace(r.URL.Query().Get("metric"))
	limit, err := queryInt(r.URL.Query().Get("limit"), "limit", 10)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.validateRequest(ctx, topPerformersRequest{Metric: metric, Limit: limit}); err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.TopPerformers(ctx, metric, limit, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list top performers failed", "metric", metric, "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
