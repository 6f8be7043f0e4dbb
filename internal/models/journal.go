package models

import "time"

// LookupRecord is one finished lookup as written to the journal.
// Center is nil when the postal code never resolved.
type LookupRecord struct {
	Query      string
	Outcome    string
	Center     *Coordinates
	PointCount int
	Duration   time.Duration
}
