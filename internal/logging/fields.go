package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldEndpoint   = "endpoint"
	FieldSeason     = "season"
	FieldStatusCode = "status_code"
	FieldPath       = "path"
	FieldDurationMS = "duration_ms"
)
