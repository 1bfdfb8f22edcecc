package domain

// Stat line dimension values used by the upstream feed.
const (
	// PeriodSeason marks a season-aggregate stat line; positive values are week numbers.
	PeriodSeason = 0

	// SplitSeason and SplitSeasonAlt mark season-level splits; SplitWeekly marks per-week splits.
	SplitSeason    = 0
	SplitWeekly    = 1
	SplitSeasonAlt = 2

	// SourceActual is historical data; SourceProjection is forward-looking.
	SourceActual     = 0
	SourceProjection = 1
)

// StatLine is one statistics entry attached to a player, tagged by scoring
// period, split type, and source. AppliedTotal is the provider's precomputed
// point value when present; AppliedStats holds per-category point
// contributions that must be summed otherwise. A nil AppliedTotal together
// with an empty AppliedStats means the line carries no usable total.
type StatLine struct {
	ScoringPeriodID int                `json:"scoringPeriodId"`
	StatSplitTypeID int                `json:"statSplitTypeId"`
	StatSourceID    int                `json:"statSourceId"`
	AppliedTotal    *float64           `json:"appliedTotal,omitempty"`
	AppliedStats    map[string]float64 `json:"appliedStats,omitempty"`
}

// Player is the normalized player shape produced by a provider.
type Player struct {
	ID         int        `json:"id"`
	FullName   string     `json:"fullName"`
	PositionID int        `json:"positionId"`
	TeamID     int        `json:"teamId"`
	Stats      []StatLine `json:"stats,omitempty"`
}

// Row is one flattened export record. ProjPoints is nil when no stat line
// yields a usable total; that is distinct from a legitimate 0.0.
type Row struct {
	PlayerID   int      `json:"player_id"`
	Name       string   `json:"name"`
	PositionID int      `json:"position_id"`
	TeamID     int      `json:"team_id"`
	Season     int      `json:"season"`
	ProjPoints *float64 `json:"proj_points"`
}
