package espn

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// playersEnvelope is the object form of the payload ({"players":[...]}),
// returned by the leaguedefaults and season endpoints.
type playersEnvelope struct {
	Players []playerItem `json:"players"`
}

// playerItem is one entry of the players collection. The feed nests the
// player under a "player" key on some views and inlines it on others.
type playerItem struct {
	player playerResponse
}

func (it *playerItem) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Player *playerResponse `json:"player"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Player != nil {
		it.player = *wrapped.Player
		return nil
	}
	return json.Unmarshal(data, &it.player)
}

type playerResponse struct {
	ID                int            `json:"id"`
	FullName          string         `json:"fullName"`
	DefaultPositionID flexInt        `json:"defaultPositionId"`
	ProTeamID         flexInt        `json:"proTeamId"`
	Stats             []statResponse `json:"stats"`
}

type statResponse struct {
	ScoringPeriodID flexInt        `json:"scoringPeriodId"`
	StatSplitTypeID flexInt        `json:"statSplitTypeId"`
	StatSourceID    flexInt        `json:"statSourceId"`
	AppliedTotal    *float64       `json:"appliedTotal"`
	AppliedStats    map[string]any `json:"appliedStats"`
}

// flexInt decodes JSON numbers or numeric strings; the feed is not
// consistent about id types across views.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("espn: invalid integer %s", string(data))
	}
	*f = flexInt(int(n))
	return nil
}
