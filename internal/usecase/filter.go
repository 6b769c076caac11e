package usecase

import "github.com/fploracle/fpl-analytics/internal/domain/player"

// PlayerFilter is a composable predicate set over the normalized player
// collection. Zero values are no-ops, so the empty filter matches every
// player. Predicates are ANDed; applying them in any order, or twice,
// yields the same set.
type PlayerFilter struct {
	Positions    []string
	Teams        []int
	MinPrice     float64
	MaxPrice     float64
	MinPoints    int
	MinOwnership float64
}

// IsZero reports whether the filter matches everything.
func (f PlayerFilter) IsZero() bool {
	return len(f.Positions) == 0 &&
		len(f.Teams) == 0 &&
		f.MinPrice == 0 &&
		f.MaxPrice == 0 &&
		f.MinPoints == 0 &&
		f.MinOwnership == 0
}

// Matches evaluates every predicate against a single player.
func (f PlayerFilter) Matches(p player.Player) bool {
	if len(f.Positions) > 0 && !containsString(f.Positions, p.PositionName) {
		return false
	}
	if len(f.Teams) > 0 && !containsInt(f.Teams, p.TeamID) {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.MinPoints > 0 && p.TotalPoints < f.MinPoints {
		return false
	}
	if f.MinOwnership > 0 && p.Ownership < f.MinOwnership {
		return false
	}
	return true
}

// Apply returns the players matching the filter, preserving input order.
func (f PlayerFilter) Apply(players []player.Player) []player.Player {
	if f.IsZero() {
		out := make([]player.Player, len(players))
		copy(out, players)
		return out
	}

	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func containsString(haystack []string, needle string) bool {
	for _, item := range haystack {
		if item == needle {
			return true
		}
	}
	return false
}

func containsInt(haystack []int, needle int) bool {
	for _, item := range haystack {
		if item == needle {
			return true
		}
	}
	return false
}
