package espn

import (
	"encoding/json"
	"fmt"
)

// playersFilter mirrors the x-fantasy-filter body the projections page
// sends: player-status and slot selection, sort spec, limit, and the
// stats-window selector for the target season.
type playersFilter struct {
	Players playersFilterBody `json:"players"`
}

type playersFilterBody struct {
	FilterStatsForExternalIDs         valuesFilter[int]  `json:"filterStatsForExternalIds"`
	FilterSlotIDs                     valuesFilter[int]  `json:"filterSlotIds"`
	FilterStatsForSourceIDs           valuesFilter[int]  `json:"filterStatsForSourceIds"`
	UseFullProjectionTable            boolFilter         `json:"useFullProjectionTable"`
	SortAppliedStatTotal              sortSpec           `json:"sortAppliedStatTotal"`
	SortDraftRanks                    sortSpec           `json:"sortDraftRanks"`
	SortPercOwned                     sortSpec           `json:"sortPercOwned"`
	Limit                             int                `json:"limit"`
	FilterRanksForSlotIDs             valuesFilter[int]  `json:"filterRanksForSlotIds"`
	FilterStatsForTopScoringPeriodIDs scoringPeriodsSpec `json:"filterStatsForTopScoringPeriodIds"`
}

type valuesFilter[T any] struct {
	Value []T `json:"value"`
}

type boolFilter struct {
	Value bool `json:"value"`
}

type sortSpec struct {
	SortAsc      bool   `json:"sortAsc"`
	SortPriority int    `json:"sortPriority"`
	Value        string `json:"value,omitempty"`
}

type scoringPeriodsSpec struct {
	Value           int      `json:"value"`
	AdditionalValue []string `json:"additionalValue"`
}

// newPlayersFilter builds the filter payload for one season. The stat-window
// ids encode a two-digit view prefix and the year: 00 season actuals,
// 10 season projections, 02 weekly projections.
func newPlayersFilter(season int) playersFilter {
	return playersFilter{
		Players: playersFilterBody{
			FilterStatsForExternalIDs: valuesFilter[int]{Value: []int{season - 1, season}},
			FilterSlotIDs: valuesFilter[int]{
				Value: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 23, 24},
			},
			FilterStatsForSourceIDs: valuesFilter[int]{Value: []int{0, 1}},
			UseFullProjectionTable:  boolFilter{Value: true},
			SortAppliedStatTotal: sortSpec{
				SortAsc:      false,
				SortPriority: 3,
				Value:        statWindowID("10", season),
			},
			SortDraftRanks: sortSpec{
				SortAsc:      true,
				SortPriority: 2,
				Value:        "PPR",
			},
			SortPercOwned: sortSpec{
				SortAsc:      false,
				SortPriority: 4,
			},
			Limit: 5000,
			FilterRanksForSlotIDs: valuesFilter[int]{
				Value: []int{0, 2, 4, 6, 17, 16, 8, 9, 10, 12, 13, 24, 11, 14, 15},
			},
			FilterStatsForTopScoringPeriodIDs: scoringPeriodsSpec{
				Value: 2,
				AdditionalValue: []string{
					statWindowID("00", season),
					statWindowID("10", season),
					statWindowID("00", season-1),
					statWindowID("02", season),
				},
			},
		},
	}
}

func statWindowID(prefix string, season int) string {
	return fmt.Sprintf("%s%d", prefix, season)
}

// encodeFilter renders the filter as the compact JSON the header carries.
func encodeFilter(season int) ([]byte, error) {
	return json.Marshal(newPlayersFilter(season))
}
