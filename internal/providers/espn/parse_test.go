package espn

import (
	"errors"
	"testing"

	"ffl-projections/internal/providers"
)

func TestParsePlayersBareArray(t *testing.T) {
	payload := `[
		{"id":1,"fullName":"Alpha","defaultPositionId":1,"proTeamId":10,"stats":[
			{"scoringPeriodId":0,"statSplitTypeId":0,"statSourceId":1,"appliedTotal":123.4}
		]},
		{"id":2,"fullName":"Bravo","defaultPositionId":2,"proTeamId":11}
	]`

	players, err := ParsePlayers([]byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
	if players[0].FullName != "Alpha" || players[0].PositionID != 1 || players[0].TeamID != 10 {
		t.Fatalf("unexpected player %+v", players[0])
	}
	if len(players[0].Stats) != 1 || players[0].Stats[0].AppliedTotal == nil || *players[0].Stats[0].AppliedTotal != 123.4 {
		t.Fatalf("unexpected stats %+v", players[0].Stats)
	}
	if players[1].Stats != nil {
		t.Fatalf("expected missing stats collection to stay nil, got %+v", players[1].Stats)
	}
}

func TestParsePlayersEnvelopeWithNestedPlayer(t *testing.T) {
	payload := `{"players":[
		{"player":{"id":3,"fullName":"Charlie","defaultPositionId":3,"proTeamId":12,"stats":[]},"ratings":{}},
		{"id":4,"fullName":"Delta","defaultPositionId":4,"proTeamId":13,"stats":[]}
	]}`

	players, err := ParsePlayers([]byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
	if players[0].ID != 3 || players[0].FullName != "Charlie" {
		t.Fatalf("nested player not unwrapped: %+v", players[0])
	}
	if players[1].ID != 4 || players[1].FullName != "Delta" {
		t.Fatalf("inline player not decoded: %+v", players[1])
	}
	if players[0].Stats == nil || len(players[0].Stats) != 0 {
		t.Fatalf("expected empty (non-nil) stats, got %+v", players[0].Stats)
	}
}

func TestParsePlayersNDJSON(t *testing.T) {
	payload := "{\"id\":5,\"fullName\":\"Echo\",\"stats\":[]}\n\n{\"player\":{\"id\":6,\"fullName\":\"Foxtrot\",\"stats\":[]}}\n"

	players, err := ParsePlayers([]byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) != 2 || players[0].ID != 5 || players[1].ID != 6 {
		t.Fatalf("unexpected players %+v", players)
	}
}

func TestParsePlayersStringTaggedIDs(t *testing.T) {
	payload := `[{"id":7,"fullName":"Golf","defaultPositionId":"2","proTeamId":"14","stats":[
		{"scoringPeriodId":"0","statSplitTypeId":"2","statSourceId":"1","appliedTotal":50}
	]}]`

	players, err := ParsePlayers([]byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := players[0]
	if p.PositionID != 2 || p.TeamID != 14 {
		t.Fatalf("string ids not normalized: %+v", p)
	}
	s := p.Stats[0]
	if s.ScoringPeriodID != 0 || s.StatSplitTypeID != 2 || s.StatSourceID != 1 {
		t.Fatalf("string stat dims not normalized: %+v", s)
	}
}

func TestParsePlayersFiltersNonNumericAppliedStats(t *testing.T) {
	payload := `[{"id":8,"fullName":"Hotel","stats":[
		{"scoringPeriodId":0,"statSplitTypeId":0,"statSourceId":1,
		 "appliedStats":{"pts":4,"yds":10,"note":"n/a"}}
	]}]`

	players, err := ParsePlayers([]byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := players[0].Stats[0].AppliedStats
	if len(got) != 2 || got["pts"] != 4 || got["yds"] != 10 {
		t.Fatalf("expected numeric-only applied stats, got %+v", got)
	}
}

func TestParsePlayersEmptyAppliedStatsStaysNil(t *testing.T) {
	payload := `[{"id":9,"fullName":"India","stats":[
		{"scoringPeriodId":0,"statSplitTypeId":0,"statSourceId":1,"appliedStats":{}}
	]}]`

	players, err := ParsePlayers([]byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := players[0].Stats[0]
	if s.AppliedTotal != nil || s.AppliedStats != nil {
		t.Fatalf("expected no usable total markers, got %+v", s)
	}
}

func TestParsePlayersRejectsObjectWithoutPlayers(t *testing.T) {
	_, err := ParsePlayers([]byte(`{"messages":["nope"]}`))
	var contentErr *providers.ContentError
	if !errors.As(err, &contentErr) {
		t.Fatalf("expected ContentError, got %v", err)
	}
}

func TestParsePlayersRejectsMalformedJSON(t *testing.T) {
	_, err := ParsePlayers([]byte(`[{"id":1,`))
	var contentErr *providers.ContentError
	if !errors.As(err, &contentErr) {
		t.Fatalf("expected ContentError, got %v", err)
	}
}

func TestValidateBody(t *testing.T) {
	if err := ValidateBody([]byte(`  {"players":[]} `)); err != nil {
		t.Fatalf("object payload should validate, got %v", err)
	}
	if err := ValidateBody([]byte("[]")); err != nil {
		t.Fatalf("array payload should validate, got %v", err)
	}

	var contentErr *providers.ContentError
	if err := ValidateBody(nil); !errors.As(err, &contentErr) {
		t.Fatalf("expected ContentError for empty body, got %v", err)
	}
	if err := ValidateBody([]byte("   \n")); !errors.As(err, &contentErr) {
		t.Fatalf("expected ContentError for whitespace body, got %v", err)
	}
	if err := ValidateBody([]byte("<html></html>")); !errors.As(err, &contentErr) {
		t.Fatalf("expected ContentError for HTML body, got %v", err)
	}
}
