// Package store records check attempts so students can see their progress
// across runs. Two implementations: SqlStore (SQLite) for the CLI and
// MemStore for tests.
package store

// DefaultDBPath is where the CLI keeps attempt history.
const DefaultDBPath = ".rotor/rotor.db"

// Attempt is one checked case from one run of an exercise set.
type Attempt struct {
	ID        int64
	SetName   string
	CaseName  string
	Input     string
	Shift     int
	Got       string
	Want      string
	Verdict   string
	CreatedAt string // RFC 3339 UTC
}

// Store persists attempts.
type Store interface {
	// SaveAttempt records a and returns its ID. a.CreatedAt is assigned
	// by the store.
	SaveAttempt(a *Attempt) (int64, error)
	// ListAttempts returns attempts for a set, newest first.
	// An empty setName returns all attempts.
	ListAttempts(setName string) ([]*Attempt, error)
	Close() error
}
