package domain

// positionNames maps the feed's default position IDs to fantasy position labels.
var positionNames = map[int]string{
	1:  "QB",
	2:  "RB",
	3:  "WR",
	4:  "TE",
	5:  "K",
	16: "DST",
}

// PositionName returns the fantasy label for a position ID, or "" when the
// ID is not a rosterable fantasy position.
func PositionName(id int) string {
	return positionNames[id]
}
