package domain

import "time"

// LoadStats holds statistics about one load cycle.
type LoadStats struct {
	SourceID  string
	Fetched   int
	Committed int
	Skipped   int
	Errors    int
	Published int
	Duration  time.Duration
}
