package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fploracle/fpl-analytics/internal/domain/player"
)

// Metrics accepted by TopPerformers.
const (
	MetricTotalPoints = "total_points"
	MetricValueScore  = "value_score"
	MetricForm        = "form"
	MetricOwnership   = "ownership"
	MetricGoals       = "goals"
	MetricPrice       = "price"
)

var topPerformerMetrics = map[string]func(player.Player) float64{
	MetricTotalPoints: func(p player.Player) float64 { return float64(p.TotalPoints) },
	MetricValueScore:  func(p player.Player) float64 { return p.ValueScore },
	MetricForm:        func(p player.Player) float64 { return p.Form },
	MetricOwnership:   func(p player.Player) float64 { return p.Ownership },
	MetricGoals:       func(p player.Player) float64 { return float64(p.Goals) },
	MetricPrice:       func(p player.Player) float64 { return p.Price },
}

type PlayerService struct {
	snapshots SnapshotProvider
}

func NewPlayerService(snapshots SnapshotProvider) *PlayerService {
	return &PlayerService{snapshots: snapshots}
}

// ListPlayers returns the normalized, derived player set after applying
// the filter. The empty filter returns the whole snapshot.
func (s *PlayerService) ListPlayers(ctx context.Context, filter PlayerFilter) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	snap, err := s.snapshots.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	return filter.Apply(snap.Players), nil
}

// TopPerformers ranks the filtered player set descending by the named
// metric. Ties keep input order, so the ranking is deterministic.
func (s *PlayerService) TopPerformers(ctx context.Context, metric string, limit int, filter PlayerFilter) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.TopPerformers")
	defer span.End()

	metric = strings.TrimSpace(strings.ToLower(metric))
	if metric == "" {
		metric = MetricTotalPoints
	}
	extract, ok := topPerformerMetrics[metric]
	if !ok {
		return nil, fmt.Errorf("%w: unknown metric %q", ErrInvalidInput, metric)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}

	snap, err := s.snapshots.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	ranked := filter.Apply(snap.Players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return extract(ranked[i]) > extract(ranked[j])
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
