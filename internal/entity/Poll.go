package entity

import "time"

type Poll struct {
	ID        int64
	Title     string
	IsActive  bool
	CreatedAt time.Time
}

type Option struct {
	ID     int64
	PollID int64
	Label  string
}

// PollDetails is the read-path view of a poll: metadata, its options and the
// current live scores. Late websocket subscribers use it to catch up, since
// broadcasts are never replayed.
type PollDetails struct {
	Poll    Poll
	Options []Option
	Scores  map[string]int64
}
