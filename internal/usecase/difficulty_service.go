package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/fploracle/fpl-analytics/internal/domain/fixture"
	"github.com/fploracle/fpl-analytics/internal/domain/snapshot"
	"github.com/fploracle/fpl-analytics/internal/domain/team"
)

// DifficultyService derives continuous fixture-difficulty scores from team
// strength ratings and builds per-team rolling timelines. This is the only
// place the strength normalization lives; every consumer goes through it.
type DifficultyService struct {
	snapshots SnapshotProvider
}

func NewDifficultyService(snapshots SnapshotProvider) *DifficultyService {
	return &DifficultyService{snapshots: snapshots}
}

// GranularDifficulty scores one perspective of a fixture. The opponent's
// strength figures are taken at the venue it occupies in this fixture:
// its away ratings when the subject plays home, its home ratings when the
// subject plays away. Unresolvable teams score neutral across the board.
func GranularDifficulty(snap snapshot.Snapshot, f fixture.Fixture, venue fixture.Venue) fixture.GranularDifficulty {
	out := fixture.GranularDifficulty{
		FixtureID: f.ID,
		Venue:     venue,
		Attack:    fixture.NeutralDifficulty,
		Defence:   fixture.NeutralDifficulty,
		Overall:   fixture.NeutralDifficulty,
	}

	opponentID := f.AwayTeamID
	if venue == fixture.VenueAway {
		opponentID = f.HomeTeamID
	}
	subjectID := f.HomeTeamID
	if venue == fixture.VenueAway {
		subjectID = f.AwayTeamID
	}

	opponent, ok := snap.TeamByID(opponentID)
	if !ok {
		return out
	}
	if _, ok := snap.TeamByID(subjectID); !ok {
		return out
	}

	opponentAttack, opponentDefence := opponentStrengths(opponent, venue)

	out.Attack = clampDifficulty(scaleStrength(opponentDefence))
	out.Defence = clampDifficulty(scaleStrength(opponentAttack))
	out.Overall = clampDifficulty((out.Attack + out.Defence) / 2)
	return out
}

// opponentStrengths picks the opponent's ratings for the side it plays:
// away ratings when the subject is at home, home ratings otherwise.
func opponentStrengths(opponent team.Team, subjectVenue fixture.Venue) (attack, defence int) {
	if subjectVenue == fixture.VenueHome {
		return opponent.StrengthAttackAway, opponent.StrengthDefenceAway
	}
	return opponent.StrengthAttackHome, opponent.StrengthDefenceHome
}

// scaleStrength maps the provider's ~900-1400 strength scale onto the
// 0-10 difficulty scale, centered so a 1000-rated opponent scores 2.5.
func scaleStrength(strength int) float64 {
	return (float64(strength)-1000)/400*5 + 2.5
}

func clampDifficulty(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 10 {
		return 10
	}
	return value
}

// Timeline builds the ordered difficulty timeline for one team: every
// fixture the team appears in, ascending by gameweek, with a trailing
// moving average over the requested window. Windows shorter than the
// available history average over what exists, so the first entries are
// always defined.
func (s *DifficultyService) Timeline(ctx context.Context, teamID, window int, source fixture.DifficultySource) ([]fixture.TimelineEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DifficultyService.Timeline")
	defer span.End()

	if window < 1 {
		return nil, fmt.Errorf("%w: window must be at least 1", ErrInvalidInput)
	}
	if source != fixture.SourceProvider && source != fixture.SourceGranular {
		return nil, fmt.Errorf("%w: unknown difficulty source %q", ErrInvalidInput, source)
	}

	snap, err := s.snapshots.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	if _, ok := snap.TeamByID(teamID); !ok {
		return nil, fmt.Errorf("%w: team=%d has no timeline", ErrNotFound, teamID)
	}

	entries := teamFixtureEntries(snap, teamID, source)
	applyRollingAverage(entries, window)
	return entries, nil
}

// CompareTeams lists each requested team's fixtures up to and including
// maxGameweek with both the provider and granular difficulty figures.
// Unresolvable team ids are skipped rather than failing the whole request.
func (s *DifficultyService) CompareTeams(ctx context.Context, teamIDs []int, maxGameweek int) ([]fixture.ComparisonRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DifficultyService.CompareTeams")
	defer span.End()

	if len(teamIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one team id is required", ErrInvalidInput)
	}
	if maxGameweek < 1 {
		return nil, fmt.Errorf("%w: gameweek horizon must be at least 1", ErrInvalidInput)
	}

	snap, err := s.snapshots.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	out := make([]fixture.ComparisonRow, 0, len(teamIDs)*maxGameweek)
	for _, teamID := range teamIDs {
		subject, ok := snap.TeamByID(teamID)
		if !ok {
			continue
		}

		for _, f := range sortedTeamFixtures(snap, teamID) {
			if f.Gameweek < 1 || f.Gameweek > maxGameweek {
				continue
			}

			venue := f.SideFor(teamID)
			provider := f.HomeDifficulty
			opponent := f.AwayTeamName
			if venue == fixture.VenueAway {
				provider = f.AwayDifficulty
				opponent = f.HomeTeamName
			}

			out = append(out, fixture.ComparisonRow{
				TeamID:             teamID,
				TeamName:           subject.Name,
				Gameweek:           f.Gameweek,
				Opponent:           opponent,
				Venue:              venue,
				ProviderDifficulty: provider,
				GranularDifficulty: GranularDifficulty(snap, f, venue).Overall,
				KickoffAt:          f.KickoffAt,
			})
		}
	}
	return out, nil
}

func sortedTeamFixtures(snap snapshot.Snapshot, teamID int) []fixture.Fixture {
	fixtures := make([]fixture.Fixture, 0, len(snap.Fixtures))
	for _, f := range snap.Fixtures {
		if f.Involves(teamID) {
			fixtures = append(fixtures, f)
		}
	}

	sort.SliceStable(fixtures, func(i, j int) bool {
		if fixtures[i].Gameweek != fixtures[j].Gameweek {
			return fixtures[i].Gameweek < fixtures[j].Gameweek
		}
		return fixtures[i].KickoffAt.Before(fixtures[j].KickoffAt)
	})
	return fixtures
}

func teamFixtureEntries(snap snapshot.Snapshot, teamID int, source fixture.DifficultySource) []fixture.TimelineEntry {
	fixtures := sortedTeamFixtures(snap, teamID)

	entries := make([]fixture.TimelineEntry, 0, len(fixtures))
	for _, f := range fixtures {
		venue := f.SideFor(teamID)

		difficulty := float64(f.HomeDifficulty)
		opponent := f.AwayTeamName
		if venue == fixture.VenueAway {
			difficulty = float64(f.AwayDifficulty)
			opponent = f.HomeTeamName
		}
		if source == fixture.SourceGranular {
			difficulty = GranularDifficulty(snap, f, venue).Overall
		}

		entries = append(entries, fixture.TimelineEntry{
			Gameweek:   f.Gameweek,
			Difficulty: difficulty,
			Venue:      venue,
			Opponent:   opponent,
			KickoffAt:  f.KickoffAt,
		})
	}
	return entries
}

// applyRollingAverage computes the trailing mean in place. Entry i averages
// positions max(0, i-window+1)..i inclusive.
func applyRollingAverage(entries []fixture.TimelineEntry, window int) {
	for i := range entries {
		start := i - window + 1
		if start < 0 {
			start = 0
		}

		sum := 0.0
		for j := start; j <= i; j++ {
			sum += entries[j].Difficulty
		}
		entries[i].RollingAverage = sum / float64(i-start+1)
	}
}
