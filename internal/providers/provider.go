package providers

import "context"

// RawResult is the validated-but-unparsed payload returned by a provider,
// together with where it came from.
type RawResult struct {
	Body        []byte
	Endpoint    string
	ContentType string
}

// PlayerSource fetches the raw player payload from an upstream provider.
// Implementations try their candidate endpoints in order and return the
// first acceptable response; the body is not yet parsed or persisted.
type PlayerSource interface {
	FetchPlayersRaw(ctx context.Context) (RawResult, error)
}
