package espn

import "time"

const providerName = "espn"

const (
	defaultBaseURL     = "https://lm-api-reads.fantasy.espn.com"
	defaultHTTPTimeout = 60 * time.Second

	// snippetLen bounds diagnostic excerpts of offending payloads.
	snippetLen = 512
)

// Candidate endpoint names, in fallback order. Only the primary players
// endpoint carries the x-fantasy-filter header.
const (
	endpointPlayers        = "players"
	endpointLeagueDefaults = "leaguedefaults"
	endpointSeason         = "season"
)

const (
	pathPlayers        = "/apis/v3/games/ffl/seasons/%d/segments/0/players?view=kona_player_info"
	pathLeagueDefaults = "/apis/v3/games/ffl/seasons/%d/segments/0/leaguedefaults/3?view=kona_player_info"
	pathSeason         = "/apis/v3/games/ffl/seasons/%d?view=kona_player_info"
)

// Fixed header set matching what the projections page sends.
const (
	headerFantasyFilter = "x-fantasy-filter"

	acceptValue         = "application/json"
	acceptLanguageValue = "en-US,en;q=0.9"
	userAgentValue      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	refererValue        = "https://fantasy.espn.com/football/players/projections"
	originValue         = "https://fantasy.espn.com"
	fantasySourceValue  = "kona"
	fantasyPlatformVal  = "kona-PROD"
	fantasySiteValue    = "ffl"
)

// Session cookie names scoped to the provider's domain.
const (
	cookieSWID = "SWID"
	cookieS2   = "espn_s2"
)
