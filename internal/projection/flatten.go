package projection

import "ffl-projections/internal/domain"

// rowKey identifies a player for de-duplication: by id when the feed gave
// one, otherwise by name and position.
type rowKey struct {
	id   int
	name string
	pos  int
}

func keyFor(p domain.Player) rowKey {
	if p.ID != 0 {
		return rowKey{id: p.ID}
	}
	return rowKey{name: p.FullName, pos: p.PositionID}
}

// Flatten produces one output row per eligible player in feed order.
// Players without a stats collection are excluded entirely; duplicate
// entries keep their first occurrence. A player whose tiers are all
// exhausted is emitted with nil points, not dropped.
func Flatten(players []domain.Player, season int) []domain.Row {
	rows := make([]domain.Row, 0, len(players))
	seen := make(map[rowKey]struct{}, len(players))

	for _, p := range players {
		if len(p.Stats) == 0 {
			continue
		}
		key := keyFor(p)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		row := domain.Row{
			PlayerID:   p.ID,
			Name:       p.FullName,
			PositionID: p.PositionID,
			TeamID:     p.TeamID,
			Season:     season,
		}
		if v, ok := SeasonPoints(p.Stats); ok {
			row.ProjPoints = &v
		}
		rows = append(rows, row)
	}
	return rows
}
