package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
	StoreTimeout       = 5 * time.Second
)

const (
	LookupCacheTTL  = 5 * time.Minute
	LookupCacheSize = 256
)

const (
	MinLevel = 1
	MaxLevel = 4
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	// Searches past this hour local time assume today's games have
	// started and look at the next slate instead.
	ScheduleCutoffHour = 22
)

const (
	SearchResultLimit  = 10
	CandidateListLimit = 5
)
