package entity

import "time"

type Vote struct {
	ID       int64
	UserID   int64
	PollID   int64
	OptionID int64
	VotedAt  time.Time
}

// PollTotal is one durable aggregate row written by the reconciliation
// worker. Last write wins; it mirrors the hot counter, not the vote rows.
type PollTotal struct {
	PollID      int64
	OptionLabel string
	TotalVotes  int64
	SyncedAt    time.Time
}
