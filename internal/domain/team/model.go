package team

// Team is a real club with the provider's venue-split strength ratings.
// Ratings are integers on the provider scale (roughly 900-1400).
type Team struct {
	ID        int
	Name      string
	ShortName string

	StrengthOverallHome int
	StrengthOverallAway int
	StrengthAttackHome  int
	StrengthAttackAway  int
	StrengthDefenceHome int
	StrengthDefenceAway int
}

// PositionBreakdown is a per-position slice of a team rollup.
type PositionBreakdown struct {
	Count     int
	AvgPoints float64
}

// TopPlayer references the best player of a team under some metric.
type TopPlayer struct {
	PlayerID int
	Name     string
	Value    float64
}

// Stats is the aggregate rollup of one team's players. Teams with no
// players never produce a Stats record.
type Stats struct {
	TeamID   int
	TeamName string

	PlayerCount        int
	TotalPoints        int
	AvgPointsPerPlayer float64
	TotalGoals         int
	TotalAssists       int
	TotalCleanSheets   int
	TotalValue         float64
	AvgOwnership       float64
	AvgForm            float64
	TotalMinutes       int

	StrengthOverallHome int
	StrengthOverallAway int
	StrengthAttackHome  int
	StrengthAttackAway  int
	StrengthDefenceHome int
	StrengthDefenceAway int

	TopScorer     TopPlayer
	MostExpensive TopPlayer

	Positions map[string]PositionBreakdown
}
