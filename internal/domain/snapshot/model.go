package snapshot

import (
	"time"

	"github.com/fploracle/fpl-analytics/internal/domain/fixture"
	"github.com/fploracle/fpl-analytics/internal/domain/player"
	"github.com/fploracle/fpl-analytics/internal/domain/team"
)

// Snapshot is one immutable, fully-normalized ingestion cycle. Every
// derivation is a pure function of a Snapshot value; a refresh produces a
// new Snapshot wholesale rather than patching this one.
type Snapshot struct {
	FetchedAt time.Time

	Players   []player.Player
	Teams     []team.Team
	Positions []player.Position
	Fixtures  []fixture.Fixture

	teamByID map[int]team.Team
}

// New builds a snapshot and indexes teams for FK resolution.
func New(fetchedAt time.Time, players []player.Player, teams []team.Team, positions []player.Position, fixtures []fixture.Fixture) Snapshot {
	teamByID := make(map[int]team.Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}

	return Snapshot{
		FetchedAt: fetchedAt,
		Players:   players,
		Teams:     teams,
		Positions: positions,
		Fixtures:  fixtures,
		teamByID:  teamByID,
	}
}

// TeamByID resolves a team foreign key against this snapshot.
func (s Snapshot) TeamByID(id int) (team.Team, bool) {
	t, ok := s.teamByID[id]
	return t, ok
}

// TeamName resolves a team id to its name, or "Unknown".
func (s Snapshot) TeamName(id int) string {
	if t, ok := s.teamByID[id]; ok {
		return t.Name
	}
	return player.UnknownName
}

// IsEmpty reports whether the snapshot holds no entities at all.
func (s Snapshot) IsEmpty() bool {
	return len(s.Players) == 0 && len(s.Teams) == 0 && len(s.Positions) == 0 && len(s.Fixtures) == 0
}
