package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	// RoundFetchConcurrency bounds how many round files are fetched in
	// parallel per league load. Rounds are independent; game order is
	// re-derived from each game's order field, not fetch order.
	RoundFetchConcurrency = 4
)

const (
	DBMaxOpenConns    = 25
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	// DefaultHalfDuration is used when a league entry carries no
	// half_duration (standard handball halves).
	DefaultHalfDuration = 30
)
