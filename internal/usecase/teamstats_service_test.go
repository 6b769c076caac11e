package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fploracle/fpl-analytics/internal/domain/player"
	"github.com/fploracle/fpl-analytics/internal/domain/snapshot"
	"github.com/fploracle/fpl-analytics/internal/domain/team"
)

func TestTeamStats_Aggregates(t *testing.T) {
	t.Parallel()

	service := NewTeamStatsService(&stubSnapshotProvider{snap: testSnapshot()})

	stats, err := service.TeamStats(context.Background(), PlayerFilter{})
	if err != nil {
		t.Fatalf("TeamStats error: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("unexpected team count: got=%d want=2", len(stats))
	}
	if stats[0].TeamID != 1 || stats[1].TeamID != 2 {
		t.Fatalf("results must sort by team id: %d, %d", stats[0].TeamID, stats[1].TeamID)
	}

	arsenal := stats[0]
	if arsenal.PlayerCount != 3 {
		t.Fatalf("player count: got=%d want=3", arsenal.PlayerCount)
	}
	if arsenal.TotalPoints != 90+180+140 {
		t.Fatalf("total points: got=%d want=%d", arsenal.TotalPoints, 90+180+140)
	}
	if arsenal.TotalGoals != 27 {
		t.Fatalf("total goals: got=%d want=27", arsenal.TotalGoals)
	}
	if arsenal.TotalValue != 5.5+10.0+8.0 {
		t.Fatalf("total value: got=%v want=%v", arsenal.TotalValue, 5.5+10.0+8.0)
	}
	wantAvg := float64(90+180+140) / 3
	if arsenal.AvgPointsPerPlayer != wantAvg {
		t.Fatalf("avg points: got=%v want=%v", arsenal.AvgPointsPerPlayer, wantAvg)
	}
	if arsenal.TopScorer.Name != "Saka" {
		t.Fatalf("top scorer: got=%q want=Saka", arsenal.TopScorer.Name)
	}
	if arsenal.MostExpensive.Name != "Saka" {
		t.Fatalf("most expensive: got=%q want=Saka", arsenal.MostExpensive.Name)
	}
	if arsenal.StrengthAttackHome != 1100 {
		t.Fatalf("strength ratings must pass through unchanged: got=%d", arsenal.StrengthAttackHome)
	}

	mids := arsenal.Positions[player.PositionMidfielder]
	if mids.Count != 1 || mids.AvgPoints != 180 {
		t.Fatalf("midfielder breakdown: %+v", mids)
	}
}

func TestTeamStats_TieBreaksOnFirstOccurrence(t *testing.T) {
	t.Parallel()

	teams := []team.Team{{ID: 1, Name: "A"}}
	players := []player.Player{
		{ID: 1, Name: "First", TeamID: 1, PositionName: player.PositionForward, TotalPoints: 100, Price: 9.0},
		{ID: 2, Name: "Second", TeamID: 1, PositionName: player.PositionForward, TotalPoints: 100, Price: 9.0},
	}
	snap := snapshot.New(time.Now(), players, teams, nil, nil)

	service := NewTeamStatsService(&stubSnapshotProvider{snap: snap})
	stats, err := service.TeamStats(context.Background(), PlayerFilter{})
	if err != nil {
		t.Fatalf("TeamStats error: %v", err)
	}

	if stats[0].TopScorer.Name != "First" {
		t.Fatalf("top scorer tie must keep first occurrence, got=%q", stats[0].TopScorer.Name)
	}
	if stats[0].MostExpensive.Name != "First" {
		t.Fatalf("most expensive tie must keep first occurrence, got=%q", stats[0].MostExpensive.Name)
	}
}

func TestTeamStats_OmitsTeamsWithoutPlayers(t *testing.T) {
	t.Parallel()

	service := NewTeamStatsService(&stubSnapshotProvider{snap: testSnapshot()})

	// Filtering to goalkeepers leaves Brentford with no players at all.
	stats, err := service.TeamStats(context.Background(), PlayerFilter{Positions: []string{player.PositionGoalkeeper}})
	if err != nil {
		t.Fatalf("TeamStats error: %v", err)
	}

	if len(stats) != 1 {
		t.Fatalf("filtered rollup should omit empty teams: got=%d teams", len(stats))
	}
	if stats[0].TeamID != 1 || stats[0].PlayerCount != 1 {
		t.Fatalf("unexpected rollup: %+v", stats[0])
	}
}

func TestListTeams(t *testing.T) {
	t.Parallel()

	service := NewTeamStatsService(&stubSnapshotProvider{snap: testSnapshot()})

	teams, err := service.ListTeams(context.Background())
	if err != nil {
		t.Fatalf("ListTeams error: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("unexpected team count: got=%d want=2", len(teams))
	}
}
