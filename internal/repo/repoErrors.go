package repo

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrPollNotFound       = errors.New("poll not found")
	ErrNoActivePoll       = errors.New("no active poll")
	ErrOptionNotFound     = errors.New("option not found")
	ErrAlreadyCheckedIn   = errors.New("attendee already checked in")
	ErrCodesAlreadyIssued = errors.New("vote codes already issued for poll")
	ErrCodeNotFound       = errors.New("vote code not found")
	ErrCodeAlreadyUsed    = errors.New("vote code already used")
	ErrVoteExists         = errors.New("vote already exists")
)
