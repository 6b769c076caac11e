package player

// Position is a provider position category (element type).
type Position struct {
	ID           int
	SingularName string
}

// Canonical provider position names.
const (
	PositionGoalkeeper = "Goalkeeper"
	PositionDefender   = "Defender"
	PositionMidfielder = "Midfielder"
	PositionForward    = "Forward"
)

// UnknownName is substituted when a foreign key cannot be resolved.
const UnknownName = "Unknown"

// Player is one normalized snapshot row with derived metrics merged in.
// It is immutable once built; a new ingestion replaces the whole set.
type Player struct {
	ID           int
	Name         string
	TeamID       int
	TeamName     string
	PositionID   int
	PositionName string

	// Raw snapshot figures. Cost is in tenths of the currency unit.
	Cost            int
	TotalPoints     int
	PointsPerGame   float64
	Ownership       float64
	Form            float64
	Goals           int
	Assists         int
	CleanSheets     int
	Bonus           int
	Minutes         int
	Starts          int
	YellowCards     int
	RedCards        int
	ExpectedGoals   float64
	ExpectedAssists float64
	ICTIndex        float64
	Influence       float64
	Creativity      float64
	Threat          float64

	// Derived figures, computed once per snapshot.
	Price           float64
	ValueScore      float64
	MinutesPerStart float64
}
