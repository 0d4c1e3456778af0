package game

import "time"

// Session tracks the statistics of one play-through. Score and Moves
// only ever grow; Duration is filled in when the session reaches a
// terminal state.
type Session struct {
	Score     int
	Moves     int
	StartedAt time.Time
	Duration  time.Duration
}

// Record is the finalized session handed to a Recorder for persistence.
type Record struct {
	Score           int
	MaxTile         int
	Moves           int
	DurationSeconds float64
	Difficulty      string
	Won             bool
}

// Recorder persists finished sessions. Implemented by storage.Store;
// defined here so the game stays free of database concerns.
type Recorder interface {
	SaveSession(rec Record) error
}
