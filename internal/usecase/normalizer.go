package usecase

import (
	"time"

	"github.com/fploracle/fpl-analytics/internal/domain/fixture"
	"github.com/fploracle/fpl-analytics/internal/domain/player"
	"github.com/fploracle/fpl-analytics/internal/domain/rawdata"
	"github.com/fploracle/fpl-analytics/internal/domain/snapshot"
	"github.com/fploracle/fpl-analytics/internal/domain/team"
)

// NormalizeSnapshot turns the provider's loosely-typed collections into a
// canonical snapshot: foreign keys resolved to names, every numeric field
// coerced through the rawdata accessors, derived metrics computed. Missing
// or malformed collections normalize to empty slices, never an error.
func NormalizeSnapshot(raw rawdata.Snapshot, fetchedAt time.Time) snapshot.Snapshot {
	teams := normalizeTeams(raw.Teams)
	positions := normalizePositions(raw.Positions)

	teamNameByID := make(map[int]string, len(teams))
	for _, t := range teams {
		teamNameByID[t.ID] = t.Name
	}
	positionNameByID := make(map[int]string, len(positions))
	for _, p := range positions {
		positionNameByID[p.ID] = p.SingularName
	}

	players := normalizePlayers(raw.Players, teamNameByID, positionNameByID)
	deriveAllMetrics(players)

	fixtures := normalizeFixtures(raw.Fixtures, teamNameByID)

	return snapshot.New(fetchedAt, players, teams, positions, fixtures)
}

func normalizeTeams(records []rawdata.Record) []team.Team {
	out := make([]team.Team, 0, len(records))
	for _, record := range records {
		out = append(out, team.Team{
			ID:                  record.Int("id"),
			Name:                nameOrUnknown(record.String("name")),
			ShortName:           record.String("short_name"),
			StrengthOverallHome: record.Int("strength_overall_home"),
			StrengthOverallAway: record.Int("strength_overall_away"),
			StrengthAttackHome:  record.Int("strength_attack_home"),
			StrengthAttackAway:  record.Int("strength_attack_away"),
			StrengthDefenceHome: record.Int("strength_defence_home"),
			StrengthDefenceAway: record.Int("strength_defence_away"),
		})
	}
	return out
}

func normalizePositions(records []rawdata.Record) []player.Position {
	out := make([]player.Position, 0, len(records))
	for _, record := range records {
		out = append(out, player.Position{
			ID:           record.Int("id"),
			SingularName: nameOrUnknown(record.String("singular_name")),
		})
	}
	return out
}

func normalizePlayers(records []rawdata.Record, teamNameByID, positionNameByID map[int]string) []player.Player {
	out := make([]player.Player, 0, len(records))
	for _, record := range records {
		teamID := record.Int("team")
		positionID := record.Int("element_type")

		out = append(out, player.Player{
			ID:              record.Int("id"),
			Name:            nameOrUnknown(record.String("web_name")),
			TeamID:          teamID,
			TeamName:        lookupName(teamNameByID, teamID),
			PositionID:      positionID,
			PositionName:    lookupName(positionNameByID, positionID),
			Cost:            record.Int("now_cost"),
			TotalPoints:     record.Int("total_points"),
			PointsPerGame:   record.Float("points_per_game"),
			Ownership:       record.Float("selected_by_percent"),
			Form:            record.Float("form"),
			Goals:           record.Int("goals_scored"),
			Assists:         record.Int("assists"),
			CleanSheets:     record.Int("clean_sheets"),
			Bonus:           record.Int("bonus"),
			Minutes:         record.Int("minutes"),
			Starts:          record.Int("starts"),
			YellowCards:     record.Int("yellow_cards"),
			RedCards:        record.Int("red_cards"),
			ExpectedGoals:   record.Float("expected_goals"),
			ExpectedAssists: record.Float("expected_assists"),
			ICTIndex:        record.Float("ict_index"),
			Influence:       record.Float("influence"),
			Creativity:      record.Float("creativity"),
			Threat:          record.Float("threat"),
		})
	}
	return out
}

func normalizeFixtures(records []rawdata.Record, teamNameByID map[int]string) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(records))
	for _, record := range records {
		homeID := record.Int("team_h")
		awayID := record.Int("team_a")

		out = append(out, fixture.Fixture{
			ID:             record.Int("id"),
			Gameweek:       record.Int("event"),
			HomeTeamID:     homeID,
			AwayTeamID:     awayID,
			HomeTeamName:   lookupName(teamNameByID, homeID),
			AwayTeamName:   lookupName(teamNameByID, awayID),
			HomeDifficulty: record.Int("team_h_difficulty"),
			AwayDifficulty: record.Int("team_a_difficulty"),
			KickoffAt:      record.Time("kickoff_time"),
		})
	}
	return out
}

func lookupName(names map[int]string, id int) string {
	if name, ok := names[id]; ok {
		return name
	}
	return player.UnknownName
}

func nameOrUnknown(name string) string {
	if name == "" {
		return player.UnknownName
	}
	return name
}
