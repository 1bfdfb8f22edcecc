// Package projection selects the season projection figure for each player
// from the upstream stat lines. Lines are indexed once per player by their
// (scoringPeriodId, statSplitTypeId, statSourceId) tuple, and the fallback
// chain becomes direct lookups instead of repeated predicate scans.
package projection

import "ffl-projections/internal/domain"

type statKey struct {
	period int
	split  int
	source int
}

// statIndex organizes one player's stat lines for the fallback chain.
// Season-level lines are keyed by their full tuple (first occurrence wins);
// weekly lines are grouped by source for summation.
type statIndex struct {
	season       map[statKey]domain.StatLine
	weeklyProj   []domain.StatLine
	weeklyActual []domain.StatLine
}

func newStatIndex(stats []domain.StatLine) statIndex {
	ix := statIndex{season: make(map[statKey]domain.StatLine)}
	for _, s := range stats {
		if s.StatSplitTypeID == domain.SplitWeekly {
			if s.ScoringPeriodID < 1 {
				continue
			}
			switch s.StatSourceID {
			case domain.SourceProjection:
				ix.weeklyProj = append(ix.weeklyProj, s)
			case domain.SourceActual:
				ix.weeklyActual = append(ix.weeklyActual, s)
			}
			continue
		}

		key := statKey{period: s.ScoringPeriodID, split: s.StatSplitTypeID, source: s.StatSourceID}
		if _, ok := ix.season[key]; !ok {
			ix.season[key] = s
		}
	}
	return ix
}

// seasonTotal resolves the season-aggregate line for a source, preferring
// split 0 over split 2. Only the first line present is consulted; a line
// that carries no usable total yields (0, false) and the tier is skipped.
func (ix statIndex) seasonTotal(source int) (float64, bool) {
	for _, split := range []int{domain.SplitSeason, domain.SplitSeasonAlt} {
		key := statKey{period: domain.PeriodSeason, split: split, source: source}
		if line, ok := ix.season[key]; ok {
			return AppliedTotal(line)
		}
	}
	return 0, false
}

// AppliedTotal resolves the provider-computed point value of one stat line:
// the direct appliedTotal when present, otherwise the sum of the numeric
// appliedStats entries. The boolean distinguishes absence from a legitimate
// zero total.
func AppliedTotal(line domain.StatLine) (float64, bool) {
	if line.AppliedTotal != nil {
		return *line.AppliedTotal, true
	}
	if len(line.AppliedStats) == 0 {
		return 0, false
	}
	total := 0.0
	for _, v := range line.AppliedStats {
		total += v
	}
	return total, true
}

// sumApplied adds the applied totals of the given lines; lines without a
// usable total are skipped. False when no line contributed a number.
func sumApplied(lines []domain.StatLine) (float64, bool) {
	total := 0.0
	found := false
	for _, line := range lines {
		if v, ok := AppliedTotal(line); ok {
			total += v
			found = true
		}
	}
	return total, found
}

// SeasonPoints computes the projected-points figure for one player's stat
// lines via the prioritized fallback chain: season projection, summed
// weekly projections, season actual, summed weekly actuals. False when all
// four tiers are exhausted without a usable total.
func SeasonPoints(stats []domain.StatLine) (float64, bool) {
	ix := newStatIndex(stats)

	if v, ok := ix.seasonTotal(domain.SourceProjection); ok {
		return v, true
	}
	if v, ok := sumApplied(ix.weeklyProj); ok {
		return v, true
	}
	if v, ok := ix.seasonTotal(domain.SourceActual); ok {
		return v, true
	}
	if v, ok := sumApplied(ix.weeklyActual); ok {
		return v, true
	}
	return 0, false
}
