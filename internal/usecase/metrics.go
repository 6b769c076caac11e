package usecase

import (
	"github.com/fploracle/fpl-analytics/internal/domain/player"
	"github.com/sourcegraph/conc/iter"
)

// deriveMetrics fills in the computed per-player fields. Price is in
// currency units (cost arrives in tenths); a zero price is floored to 1
// for the value score so free players rank by raw points instead of
// dividing by zero. Same floor for starts.
func deriveMetrics(p player.Player) player.Player {
	p.Price = float64(p.Cost) / 10

	priceFloor := p.Price
	if priceFloor < 1 {
		priceFloor = 1
	}
	p.ValueScore = float64(p.TotalPoints) / priceFloor

	starts := p.Starts
	if starts < 1 {
		starts = 1
	}
	p.MinutesPerStart = float64(p.Minutes) / float64(starts)

	return p
}

// deriveAllMetrics computes derived fields for the whole player set.
// Each player is independent, so the mapping runs concurrently.
func deriveAllMetrics(players []player.Player) {
	iter.ForEach(players, func(p *player.Player) {
		*p = deriveMetrics(*p)
	})
}
