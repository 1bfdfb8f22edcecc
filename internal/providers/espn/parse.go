package espn

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"ffl-projections/internal/domain"
	"ffl-projections/internal/providers"
)

// maxNDJSONLine bounds a single line when falling back to NDJSON parsing;
// player records with the full projection table attached can be large.
const maxNDJSONLine = 16 << 20

// ValidateBody checks the minimal shape of a downloaded payload before any
// parsing or persistence: non-empty, and starting with '[' or '{'.
func ValidateBody(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return &providers.ContentError{Provider: providerName, Err: errors.New("empty body")}
	}
	if trimmed[0] != '[' && trimmed[0] != '{' {
		return &providers.ContentError{
			Provider: providerName,
			Snippet:  providers.Snip(trimmed, snippetLen),
			Err:      errors.New("payload is not JSON-shaped"),
		}
	}
	return nil
}

// ParsePlayers decodes a players payload into domain players. It accepts a
// bare JSON array, a {"players":[...]} wrapper, items nested under a
// "player" key, and NDJSON (one player object per line).
func ParsePlayers(data []byte) ([]domain.Player, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &providers.ContentError{Provider: providerName, Err: errors.New("empty body")}
	}

	switch trimmed[0] {
	case '{':
		var env playersEnvelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			// NDJSON also starts with '{'; only fail once both forms do.
			if players, ndErr := parseNDJSON(trimmed); ndErr == nil {
				return players, nil
			}
			return nil, parseError(trimmed, err)
		}
		if env.Players == nil {
			return nil, &providers.ContentError{
				Provider: providerName,
				Snippet:  providers.Snip(trimmed, snippetLen),
				Err:      errors.New("payload has no players collection"),
			}
		}
		return mapItems(env.Players), nil
	case '[':
		var items []playerItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, parseError(trimmed, err)
		}
		return mapItems(items), nil
	default:
		return nil, &providers.ContentError{
			Provider: providerName,
			Snippet:  providers.Snip(trimmed, snippetLen),
			Err:      errors.New("payload is not JSON-shaped"),
		}
	}
}

func mapItems(items []playerItem) []domain.Player {
	players := make([]domain.Player, 0, len(items))
	for _, it := range items {
		players = append(players, mapPlayer(it.player))
	}
	return players
}

func parseNDJSON(data []byte) ([]domain.Player, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64<<10), maxNDJSONLine)

	var players []domain.Player
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var item playerItem
		if err := json.Unmarshal(line, &item); err != nil {
			return nil, parseError(line, err)
		}
		players = append(players, mapPlayer(item.player))
	}
	if err := scanner.Err(); err != nil {
		return nil, parseError(data, err)
	}
	return players, nil
}

func parseError(data []byte, err error) error {
	return &providers.ContentError{
		Provider: providerName,
		Snippet:  providers.Snip(bytes.TrimSpace(data), snippetLen),
		Err:      fmt.Errorf("decoding players payload: %w", err),
	}
}
