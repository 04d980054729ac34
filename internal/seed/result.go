// Package seed builds league datasets (simulated seasons or CSV exports) and
// writes them to a store.
package seed

import "fmt"

// SeedResult tracks counts and errors from a seeding operation.
type SeedResult struct {
	Source            string
	TeamsLoaded       int
	FixturesLoaded    int
	PlayerStatsLoaded int
	EventsLoaded      int
	Errors            []string
}

// Add merges another SeedResult into this one.
func (r *SeedResult) Add(other SeedResult) {
	r.TeamsLoaded += other.TeamsLoaded
	r.FixturesLoaded += other.FixturesLoaded
	r.PlayerStatsLoaded += other.PlayerStatsLoaded
	r.EventsLoaded += other.EventsLoaded
	r.Errors = append(r.Errors, other.Errors...)
}

// AddError records an error message.
func (r *SeedResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// AddErrorf records a formatted error message.
func (r *SeedResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the seed operation.
func (r *SeedResult) Summary() string {
	return fmt.Sprintf(
		"source=%s teams=%d fixtures=%d player_stats=%d events=%d errors=%d",
		r.Source, r.TeamsLoaded, r.FixturesLoaded, r.PlayerStatsLoaded, r.EventsLoaded,
		len(r.Errors),
	)
}
