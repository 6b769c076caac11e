package fixture

import "time"

// Venue identifies which side of a fixture a team plays.
type Venue string

const (
	VenueHome Venue = "Home"
	VenueAway Venue = "Away"
)

// DifficultySource selects which difficulty figure feeds a timeline.
type DifficultySource string

const (
	// SourceProvider uses the provider's coarse 1-5 integer rating.
	SourceProvider DifficultySource = "provider"
	// SourceGranular uses the continuous 0-10 strength-derived score.
	SourceGranular DifficultySource = "granular"
)

// NeutralDifficulty is the midpoint returned when a fixture side cannot
// be scored because a team reference does not resolve.
const NeutralDifficulty = 5.0

// Fixture is one scheduled match, normalized with resolved team names.
type Fixture struct {
	ID           int
	Gameweek     int
	HomeTeamID   int
	AwayTeamID   int
	HomeTeamName string
	AwayTeamName string

	// Provider's 1-5 integer difficulty, per side.
	HomeDifficulty int
	AwayDifficulty int

	KickoffAt time.Time
}

// Involves reports whether the team plays on either side of the fixture.
func (f Fixture) Involves(teamID int) bool {
	return f.HomeTeamID == teamID || f.AwayTeamID == teamID
}

// SideFor returns the venue the team occupies in this fixture. Callers
// must check Involves first; an uninvolved team is reported as away.
func (f Fixture) SideFor(teamID int) Venue {
	if f.HomeTeamID == teamID {
		return VenueHome
	}
	return VenueAway
}

// GranularDifficulty is the continuous strength-derived score for one
// perspective of a fixture. All three components are clamped to [0, 10].
type GranularDifficulty struct {
	FixtureID int
	Venue     Venue
	Attack    float64
	Defence   float64
	Overall   float64
}

// TimelineEntry is one point of a per-team difficulty timeline, ordered
// ascending by gameweek.
type TimelineEntry struct {
	Gameweek       int
	Difficulty     float64
	RollingAverage float64
	Venue          Venue
	Opponent       string
	KickoffAt      time.Time
}

// ComparisonRow is one fixture of a multi-team upcoming-schedule
// comparison, carrying both difficulty figures side by side.
type ComparisonRow struct {
	TeamID             int
	TeamName           string
	Gameweek           int
	Opponent           string
	Venue              Venue
	ProviderDifficulty int
	GranularDifficulty float64
	KickoffAt          time.Time
}
