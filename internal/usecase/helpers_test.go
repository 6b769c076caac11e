package usecase

import (
	"context"
	"time"

	"github.com/fploracle/fpl-analytics/internal/domain/fixture"
	"github.com/fploracle/fpl-analytics/internal/domain/player"
	"github.com/fploracle/fpl-analytics/internal/domain/snapshot"
	"github.com/fploracle/fpl-analytics/internal/domain/team"
)

// stubSnapshotProvider serves a fixed snapshot to services under test.
type stubSnapshotProvider struct {
	snap snapshot.Snapshot
	err  error
}

func (s *stubSnapshotProvider) Current(context.Context) (snapshot.Snapshot, error) {
	return s.snap, s.err
}

func playerFixture(cost, totalPoints int) player.Player {
	return player.Player{
		ID:          1,
		Name:        "Player",
		Cost:        cost,
		TotalPoints: totalPoints,
	}
}

// testSnapshot builds the snapshot shared by the aggregation tests: two
// resolvable teams, one dangling fixture reference, a handful of players.
func testSnapshot() snapshot.Snapshot {
	teams := []team.Team{
		{
			ID: 1, Name: "Arsenal", ShortName: "ARS",
			StrengthOverallHome: 1250, StrengthOverallAway: 1230,
			StrengthAttackHome: 1100, StrengthAttackAway: 1150,
			StrengthDefenceHome: 1200, StrengthDefenceAway: 1180,
		},
		{
			ID: 2, Name: "Brentford", ShortName: "BRE",
			StrengthOverallHome: 1120, StrengthOverallAway: 1080,
			StrengthAttackHome: 1050, StrengthAttackAway: 1300,
			StrengthDefenceHome: 1100, StrengthDefenceAway: 1000,
		},
	}

	players := []player.Player{
		{ID: 11, Name: "Raya", TeamID: 1, TeamName: "Arsenal", PositionID: 1, PositionName: player.PositionGoalkeeper,
			Cost: 55, Price: 5.5, TotalPoints: 90, Goals: 0, Assists: 1, CleanSheets: 12, Minutes: 2700, Ownership: 22.5, Form: 4.0},
		{ID: 12, Name: "Saka", TeamID: 1, TeamName: "Arsenal", PositionID: 3, PositionName: player.PositionMidfielder,
			Cost: 100, Price: 10.0, TotalPoints: 180, Goals: 14, Assists: 10, CleanSheets: 0, Minutes: 2880, Ownership: 45.0, Form: 7.5, ValueScore: 18.0},
		{ID: 13, Name: "Havertz", TeamID: 1, TeamName: "Arsenal", PositionID: 4, PositionName: player.PositionForward,
			Cost: 80, Price: 8.0, TotalPoints: 140, Goals: 13, Assists: 5, CleanSheets: 0, Minutes: 2610, Ownership: 18.0, Form: 6.1},
		{ID: 21, Name: "Mbeumo", TeamID: 2, TeamName: "Brentford", PositionID: 3, PositionName: player.PositionMidfielder,
			Cost: 72, Price: 7.2, TotalPoints: 150, Goals: 16, Assists: 4, CleanSheets: 0, Minutes: 2790, Ownership: 30.2, Form: 6.8},
	}

	kickoff := time.Date(2025, 8, 16, 14, 0, 0, 0, time.UTC)
	fixtures := []fixture.Fixture{
		{ID: 1, Gameweek: 1, HomeTeamID: 1, AwayTeamID: 2, HomeTeamName: "Arsenal", AwayTeamName: "Brentford",
			HomeDifficulty: 2, AwayDifficulty: 4, KickoffAt: kickoff},
		{ID: 2, Gameweek: 2, HomeTeamID: 2, AwayTeamID: 1, HomeTeamName: "Brentford", AwayTeamName: "Arsenal",
			HomeDifficulty: 4, AwayDifficulty: 2, KickoffAt: kickoff.AddDate(0, 0, 7)},
		{ID: 3, Gameweek: 3, HomeTeamID: 1, AwayTeamID: 99, HomeTeamName: "Arsenal", AwayTeamName: "Unknown",
			HomeDifficulty: 3, AwayDifficulty: 3, KickoffAt: kickoff.AddDate(0, 0, 14)},
	}

	positions := []player.Position{
		{ID: 1, SingularName: player.PositionGoalkeeper},
		{ID: 2, SingularName: player.PositionDefender},
		{ID: 3, SingularName: player.PositionMidfielder},
		{ID: 4, SingularName: player.PositionForward},
	}

	return snapshot.New(kickoff.Add(-time.Hour), players, teams, positions, fixtures)
}
