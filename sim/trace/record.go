// Package trace provides the record types produced by a memory simulation run.
// It has no dependencies on sim/ and stores pure data types.
package trace

import "fmt"

// Line is a single human-readable event trace entry.
type Line struct {
	Time   int64  // logical time the event was handled at
	Event  string // event label, e.g. EV_CACHE_HIT
	Detail string
}

// String renders the line in the fixed-width form used by reports.
func (l Line) String() string {
	return fmt.Sprintf("t=%3d %16s | %s", l.Time, l.Event, l.Detail)
}

// Commit captures one version landing in the global store.
type Commit struct {
	Artifact    string
	Version     int64
	Writer      string
	RequestedAt int64 // time the write request was handled
	CommittedAt int64 // time the commit was applied to the store
}

// Delay returns the version propagation delay of the commit.
func (c Commit) Delay() int64 {
	return c.CommittedAt - c.RequestedAt
}
