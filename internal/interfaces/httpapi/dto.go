package httpapi

import (
	"time"

	"github.com/fploracle/fpl-analytics/internal/domain/fixture"
	"github.com/fploracle/fpl-analytics/internal/domain/player"
	"github.com/fploracle/fpl-analytics/internal/domain/team"
	"github.com/fploracle/fpl-analytics/internal/usecase"
)

type refreshDTO struct {
	FetchedAt time.Time `json:"fetchedAt"`
	Players   int       `json:"players"`
	Teams     int       `json:"teams"`
	Fixtures  int       `json:"fixtures"`
}

type playerDTO struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Team            string  `json:"team"`
	TeamID          int     `json:"teamId"`
	Position        string  `json:"position"`
	Price           float64 `json:"price"`
	TotalPoints     int     `json:"totalPoints"`
	PointsPerGame   float64 `json:"pointsPerGame"`
	ValueScore      float64 `json:"valueScore"`
	Ownership       float64 `json:"ownership"`
	Form            float64 `json:"form"`
	Goals           int     `json:"goals"`
	Assists         int     `json:"assists"`
	CleanSheets     int     `json:"cleanSheets"`
	Bonus           int     `json:"bonus"`
	Minutes         int     `json:"minutes"`
	MinutesPerStart float64 `json:"minutesPerStart"`
	ExpectedGoals   float64 `json:"expectedGoals"`
	ExpectedAssists float64 `json:"expectedAssists"`
	ICTIndex        float64 `json:"ictIndex"`
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:              v.ID,
		Name:            v.Name,
		Team:            v.TeamName,
		TeamID:          v.TeamID,
		Position:        v.PositionName,
		Price:           v.Price,
		TotalPoints:     v.TotalPoints,
		PointsPerGame:   v.PointsPerGame,
		ValueScore:      v.ValueScore,
		Ownership:       v.Ownership,
		Form:            v.Form,
		Goals:           v.Goals,
		Assists:         v.Assists,
		CleanSheets:     v.CleanSheets,
		Bonus:           v.Bonus,
		Minutes:         v.Minutes,
		MinutesPerStart: v.MinutesPerStart,
		ExpectedGoals:   v.ExpectedGoals,
		ExpectedAssists: v.ExpectedAssists,
		ICTIndex:        v.ICTIndex,
	}
}

type teamDTO struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	ShortName           string `json:"shortName"`
	StrengthOverallHome int    `json:"strengthOverallHome"`
	StrengthOverallAway int    `json:"strengthOverallAway"`
	StrengthAttackHome  int    `json:"strengthAttackHome"`
	StrengthAttackAway  int    `json:"strengthAttackAway"`
	StrengthDefenceHome int    `json:"strengthDefenceHome"`
	StrengthDefenceAway int    `json:"strengthDefenceAway"`
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:                  v.ID,
		Name:                v.Name,
		ShortName:           v.ShortName,
		StrengthOverallHome: v.StrengthOverallHome,
		StrengthOverallAway: v.StrengthOverallAway,
		StrengthAttackHome:  v.StrengthAttackHome,
		StrengthAttackAway:  v.StrengthAttackAway,
		StrengthDefenceHome: v.StrengthDefenceHome,
		StrengthDefenceAway: v.StrengthDefenceAway,
	}
}

type positionBreakdownDTO struct {
	Count     int     `json:"count"`
	AvgPoints float64 `json:"avgPoints"`
}

type topPlayerDTO struct {
	PlayerID int     `json:"playerId"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
}

type teamStatsDTO struct {
	TeamID             int     `json:"teamId"`
	TeamName           string  `json:"teamName"`
	PlayerCount        int     `json:"playerCount"`
	TotalPoints        int     `json:"totalPoints"`
	AvgPointsPerPlayer float64 `json:"avgPointsPerPlayer"`
	TotalGoals         int     `json:"totalGoals"`
	TotalAssists       int     `json:"totalAssists"`
	TotalCleanSheets   int     `json:"totalCleanSheets"`
	TotalValue         float64 `json:"totalValue"`
	AvgOwnership       float64 `json:"avgOwnership"`
	AvgForm            float64 `json:"avgForm"`
	TotalMinutes       int     `json:"totalMinutes"`

	StrengthOverallHome int `json:"strengthOverallHome"`
	StrengthOverallAway int `json:"strengthOverallAway"`
	StrengthAttackHome  int `json:"strengthAttackHome"`
	StrengthAttackAway  int `json:"strengthAttackAway"`
	StrengthDefenceHome int `json:"strengthDefenceHome"`
	StrengthDefenceAway int `json:"strengthDefenceAway"`

	TopScorer     topPlayerDTO                    `json:"topScorer"`
	MostExpensive topPlayerDTO                    `json:"mostExpensive"`
	Positions     map[string]positionBreakdownDTO `json:"positions"`
}

func teamStatsToDTO(v team.Stats) teamStatsDTO {
	positions := make(map[string]positionBreakdownDTO, len(v.Positions))
	for name, breakdown := range v.Positions {
		positions[name] = positionBreakdownDTO{
			Count:     breakdown.Count,
			AvgPoints: breakdown.AvgPoints,
		}
	}

	return teamStatsDTO{
		TeamID:              v.TeamID,
		TeamName:            v.TeamName,
		PlayerCount:         v.PlayerCount,
		TotalPoints:         v.TotalPoints,
		AvgPointsPerPlayer:  v.AvgPointsPerPlayer,
		TotalGoals:          v.TotalGoals,
		TotalAssists:        v.TotalAssists,
		TotalCleanSheets:    v.TotalCleanSheets,
		TotalValue:          v.TotalValue,
		AvgOwnership:        v.AvgOwnership,
		AvgForm:             v.AvgForm,
		TotalMinutes:        v.TotalMinutes,
		StrengthOverallHome: v.StrengthOverallHome,
		StrengthOverallAway: v.StrengthOverallAway,
		StrengthAttackHome:  v.StrengthAttackHome,
		StrengthAttackAway:  v.StrengthAttackAway,
		StrengthDefenceHome: v.StrengthDefenceHome,
		StrengthDefenceAway: v.StrengthDefenceAway,
		TopScorer:           topPlayerDTO(v.TopScorer),
		MostExpensive:       topPlayerDTO(v.MostExpensive),
		Positions:           positions,
	}
}

type granularDifficultyDTO struct {
	Venue   string  `json:"venue"`
	Attack  float64 `json:"attack"`
	Defence float64 `json:"defence"`
	Overall float64 `json:"overall"`
}

func granularToDTO(v fixture.GranularDifficulty) granularDifficultyDTO {
	return granularDifficultyDTO{
		Venue:   string(v.Venue),
		Attack:  v.Attack,
		Defence: v.Defence,
		Overall: v.Overall,
	}
}

type fixtureDTO struct {
	ID             int                   `json:"id"`
	Gameweek       int                   `json:"gameweek"`
	HomeTeam       string                `json:"homeTeam"`
	AwayTeam       string                `json:"awayTeam"`
	HomeTeamID     int                   `json:"homeTeamId"`
	AwayTeamID     int                   `json:"awayTeamId"`
	HomeDifficulty int                   `json:"homeDifficulty"`
	AwayDifficulty int                   `json:"awayDifficulty"`
	KickoffAt      time.Time             `json:"kickoffAt"`
	HomeGranular   granularDifficultyDTO `json:"homeGranular"`
	AwayGranular   granularDifficultyDTO `json:"awayGranular"`
}

func fixtureToDTO(v usecase.FixtureWithDifficulty) fixtureDTO {
	return fixtureDTO{
		ID:             v.Fixture.ID,
		Gameweek:       v.Fixture.Gameweek,
		HomeTeam:       v.Fixture.HomeTeamName,
		AwayTeam:       v.Fixture.AwayTeamName,
		HomeTeamID:     v.Fixture.HomeTeamID,
		AwayTeamID:     v.Fixture.AwayTeamID,
		HomeDifficulty: v.Fixture.HomeDifficulty,
		AwayDifficulty: v.Fixture.AwayDifficulty,
		KickoffAt:      v.Fixture.KickoffAt,
		HomeGranular:   granularToDTO(v.Home),
		AwayGranular:   granularToDTO(v.Away),
	}
}

type timelineEntryDTO struct {
	Gameweek       int       `json:"gameweek"`
	Difficulty     float64   `json:"difficulty"`
	RollingAverage float64   `json:"rollingAverage"`
	Venue          string    `json:"venue"`
	Opponent       string    `json:"opponent"`
	KickoffAt      time.Time `json:"kickoffAt"`
}

func timelineEntryToDTO(v fixture.TimelineEntry) timelineEntryDTO {
	return timelineEntryDTO{
		Gameweek:       v.Gameweek,
		Difficulty:     v.Difficulty,
		RollingAverage: v.RollingAverage,
		Venue:          string(v.Venue),
		Opponent:       v.Opponent,
		KickoffAt:      v.KickoffAt,
	}
}

type timelineDTO struct {
	TeamID  int                `json:"teamId"`
	Window  int                `json:"window"`
	Source  string             `json:"source"`
	Entries []timelineEntryDTO `json:"entries"`
}

type comparisonRowDTO struct {
	TeamID             int       `json:"teamId"`
	TeamName           string    `json:"teamName"`
	Gameweek           int       `json:"gameweek"`
	Opponent           string    `json:"opponent"`
	Venue              string    `json:"venue"`
	ProviderDifficulty int       `json:"providerDifficulty"`
	GranularDifficulty float64   `json:"granularDifficulty"`
	KickoffAt          time.Time `json:"kickoffAt"`
}

func comparisonRowToDTO(v fixture.ComparisonRow) comparisonRowDTO {
	return comparisonRowDTO{
		TeamID:             v.TeamID,
		TeamName:           v.TeamName,
		Gameweek:           v.Gameweek,
		Opponent:           v.Opponent,
		Venue:              string(v.Venue),
		ProviderDifficulty: v.ProviderDifficulty,
		GranularDifficulty: v.GranularDifficulty,
		KickoffAt:          v.KickoffAt,
	}
}
