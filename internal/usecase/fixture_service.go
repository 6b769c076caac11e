package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/fploracle/fpl-analytics/internal/domain/fixture"
)

// FixtureWithDifficulty pairs a normalized fixture with its two granular
// perspective scores. The two scores generally differ.
type FixtureWithDifficulty struct {
	Fixture fixture.Fixture
	Home    fixture.GranularDifficulty
	Away    fixture.GranularDifficulty
}

type FixtureService struct {
	snapshots SnapshotProvider
}

func NewFixtureService(snapshots SnapshotProvider) *FixtureService {
	return &FixtureService{snapshots: snapshots}
}

// ListFixtures returns every fixture in the snapshot with both granular
// difficulty perspectives attached, ordered by gameweek then kickoff time,
// optionally restricted to one gameweek. Gameweek 0 means all gameweeks.
func (s *FixtureService) ListFixtures(ctx context.Context, gameweek int) ([]FixtureWithDifficulty, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListFixtures")
	defer span.End()

	if gameweek < 0 {
		return nil, fmt.Errorf("%w: gameweek must not be negative", ErrInvalidInput)
	}

	snap, err := s.snapshots.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	out := make([]FixtureWithDifficulty, 0, len(snap.Fixtures))
	for _, f := range snap.Fixtures {
		if gameweek > 0 && f.Gameweek != gameweek {
			continue
		}
		out = append(out, FixtureWithDifficulty{
			Fixture: f,
			Home:    GranularDifficulty(snap, f, fixture.VenueHome),
			Away:    GranularDifficulty(snap, f, fixture.VenueAway),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Fixture.Gameweek != out[j].Fixture.Gameweek {
			return out[i].Fixture.Gameweek < out[j].Fixture.Gameweek
		}
		return out[i].Fixture.KickoffAt.Before(out[j].Fixture.KickoffAt)
	})
	return out, nil
}
