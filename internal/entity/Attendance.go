package entity

import "time"

type Attendance struct {
	UserID      int64
	PollID      int64
	Present     bool
	CheckedInAt time.Time
}
