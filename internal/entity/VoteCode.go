package entity

import "time"

// VoteCode is a single-use credential binding one checked-in attendee to
// voting eligibility for one poll. Used flips exactly once.
type VoteCode struct {
	ID        int64
	PollID    int64
	UserID    int64
	Code      string
	Used      bool
	CreatedAt time.Time
}

// IssuedCode is one row of a dispatch batch before it is persisted.
type IssuedCode struct {
	UserID int64
	Code   string
}
