package espn

import "ffl-projections/internal/domain"

func mapPlayer(p playerResponse) domain.Player {
	out := domain.Player{
		ID:         p.ID,
		FullName:   p.FullName,
		PositionID: int(p.DefaultPositionID),
		TeamID:     int(p.ProTeamID),
	}
	if p.Stats != nil {
		out.Stats = make([]domain.StatLine, 0, len(p.Stats))
		for _, s := range p.Stats {
			out.Stats = append(out.Stats, mapStat(s))
		}
	}
	return out
}

func mapStat(s statResponse) domain.StatLine {
	return domain.StatLine{
		ScoringPeriodID: int(s.ScoringPeriodID),
		StatSplitTypeID: int(s.StatSplitTypeID),
		StatSourceID:    int(s.StatSourceID),
		AppliedTotal:    s.AppliedTotal,
		AppliedStats:    mapAppliedStats(s.AppliedStats),
	}
}

// mapAppliedStats keeps only numeric category values. A mapping with no
// numeric entries maps to nil so absence stays distinguishable from a
// legitimate zero total.
func mapAppliedStats(raw map[string]any) map[string]float64 {
	var out map[string]float64
	for k, v := range raw {
		n, ok := v.(float64)
		if !ok {
			continue
		}
		if out == nil {
			out = make(map[string]float64, len(raw))
		}
		out[k] = n
	}
	return out
}
