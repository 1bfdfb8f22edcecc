package domain

import "testing"

func TestPositionNameKnownIDs(t *testing.T) {
	cases := map[int]string{
		1:  "QB",
		2:  "RB",
		3:  "WR",
		4:  "TE",
		5:  "K",
		16: "DST",
	}
	for id, want := range cases {
		if got := PositionName(id); got != want {
			t.Fatalf("PositionName(%d) = %q, want %q", id, got, want)
		}
	}
}

func TestPositionNameUnknownID(t *testing.T) {
	if got := PositionName(99); got != "" {
		t.Fatalf("expected empty label for unknown position, got %q", got)
	}
}
