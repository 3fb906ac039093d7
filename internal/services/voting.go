package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ANSH5252/LivePulse/internal/entity"
	"github.com/ANSH5252/LivePulse/internal/lib/badge"
	"github.com/ANSH5252/LivePulse/internal/lib/votecode"
	"github.com/ANSH5252/LivePulse/internal/repo"
	"github.com/ANSH5252/LivePulse/utils"
)

// Operation error taxonomy. Every rejected transition maps to exactly one of
// these so clients can render an accurate message.
var (
	ErrUnauthorized       = errors.New("caller is not an admin")
	ErrInvalidBadge       = errors.New("invalid badge identifier")
	ErrMissingData        = errors.New("poll or option missing")
	ErrPollNotActive      = errors.New("poll is not active")
	ErrUserNotFound       = errors.New("user not found")
	ErrPollNotFound       = errors.New("poll not found")
	ErrOptionNotFound     = errors.New("option not found")
	ErrAlreadyCheckedIn   = errors.New("attendee already checked in")
	ErrCodesAlreadyIssued = errors.New("vote codes already dispatched for this poll")
	ErrNoAttendees        = errors.New("no checked-in attendees")
	ErrCodeNotFound       = errors.New("vote code not found")
	ErrCodeAlreadyUsed    = errors.New("vote code already used")
	ErrNotVerified        = errors.New("attendee has not verified a vote code")
	ErrDuplicateVote      = errors.New("attendee already voted")
)

//go:generate mockgen -source=voting.go -destination=mocks/mocks.go -package=mocks

type UserProvider interface {
	UserByID(ctx context.Context, id int64) (entity.User, error)
}

type PollStorage interface {
	SavePoll(ctx context.Context, title string, labels []string) (int64, error)
	ClosePoll(ctx context.Context, id int64) error
	PollByID(ctx context.Context, id int64) (entity.Poll, error)
	ActivePoll(ctx context.Context) (entity.Poll, error)
	Polls(ctx context.Context) ([]entity.Poll, error)
	OptionsByPollID(ctx context.Context, pollID int64) ([]entity.Option, error)
	OptionByID(ctx context.Context, id, pollID int64) (entity.Option, error)
}

type AttendanceStorage interface {
	SaveAttendance(ctx context.Context, userID, pollID int64) error
	PresentAttendees(ctx context.Context, pollID int64) ([]entity.User, error)
}

type CodeStorage interface {
	SaveCodeBatch(ctx context.Context, pollID int64, codes []entity.IssuedCode) error
	ConsumeCode(ctx context.Context, pollID, userID int64, code string) error
	HasUsedCode(ctx context.Context, pollID, userID int64) (bool, error)
}

type VoteStorage interface {
	SaveVote(ctx context.Context, userID, pollID, optionID int64) (int64, error)
	CountVotesByOption(ctx context.Context, pollID int64) (map[string]int64, error)
}

type ScoreCounter interface {
	IncrScore(ctx context.Context, pollID int64, label string, delta int64) (int64, error)
	Scores(ctx context.Context, pollID int64) (map[string]int64, error)
	ReplaceScores(ctx context.Context, pollID int64, scores map[string]int64) error
}

type Broadcaster interface {
	PublishScores(pollID int64, scores map[string]int64)
	NotifyScan(userID, pollID int64, pollTitle string)
	NotifyCode(userID int64, pollTitle, code string)
}

// LiveVoting drives the per-(user, poll) state machine
// NOT_CHECKED_IN → CHECKED_IN → CODE_ISSUED → VERIFIED → VOTED.
// The ledger's uniqueness constraints, not application pre-checks, enforce
// the one-shot transitions.
type LiveVoting struct {
	log        *slog.Logger
	users      UserProvider
	polls      PollStorage
	attendance AttendanceStorage
	codes      CodeStorage
	votes      VoteStorage
	counter    ScoreCounter
	broadcast  Broadcaster
	codegen    *votecode.Generator
}

func NewLiveVoting(
	log *slog.Logger,
	users UserProvider,
	polls PollStorage,
	attendance AttendanceStorage,
	codes CodeStorage,
	votes VoteStorage,
	counter ScoreCounter,
	broadcast Broadcaster,
	codegen *votecode.Generator,
) *LiveVoting {
	return &LiveVoting{
		log:        log,
		users:      users,
		polls:      polls,
		attendance: attendance,
		codes:      codes,
		votes:      votes,
		counter:    counter,
		broadcast:  broadcast,
		codegen:    codegen,
	}
}

// CheckIn records physical presence of the scanned attendee for the active
// poll. One-shot per (user, poll): a second scan is rejected, not absorbed.
func (v *LiveVoting) CheckIn(ctx context.Context, caller entity.Principal, pollID int64, scannedBadge string) error {
	const op = "LiveVoting.CheckIn"

	log := v.log.With(slog.String("op", op), slog.Int64("pollID", pollID))

	if !caller.IsAdmin() {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	userID, err := badge.ParseUserID(scannedBadge)
	if err != nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidBadge)
	}

	poll, err := v.polls.ActivePoll(ctx)
	if err != nil {
		if errors.Is(err, repo.ErrNoActivePoll) {
			return fmt.Errorf("%s: %w", op, ErrPollNotActive)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if poll.ID != pollID {
		return fmt.Errorf("%s: %w", op, ErrPollNotActive)
	}

	user, err := v.users.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := v.attendance.SaveAttendance(ctx, user.ID, poll.ID); err != nil {
		if errors.Is(err, repo.ErrAlreadyCheckedIn) {
			return fmt.Errorf("%s: %w", op, ErrAlreadyCheckedIn)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("attendee checked in", slog.Int64("userID", user.ID))

	v.broadcast.NotifyScan(user.ID, poll.ID, poll.Title)

	return nil
}

// DispatchCodes issues one vote code per checked-in attendee in a single
// irreversible batch. Once any code exists for a poll its code set is frozen;
// attendees who check in later never receive one. The only guard for that
// policy lives in the batch transaction, so revisiting it is a one-query
// change.
func (v *LiveVoting) DispatchCodes(ctx context.Context, caller entity.Principal, pollID int64) (int, error) {
	const op = "LiveVoting.DispatchCodes"

	log := v.log.With(slog.String("op", op), slog.Int64("pollID", pollID))

	if !caller.IsAdmin() {
		return 0, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	poll, err := v.polls.PollByID(ctx, pollID)
	if err != nil {
		if errors.Is(err, repo.ErrPollNotFound) {
			return 0, fmt.Errorf("%s: %w", op, ErrPollNotFound)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	attendees, err := v.attendance.PresentAttendees(ctx, poll.ID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if len(attendees) == 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrNoAttendees)
	}

	batch := make([]entity.IssuedCode, 0, len(attendees))
	for _, attendee := range attendees {
		code, err := v.codegen.Generate()
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		batch = append(batch, entity.IssuedCode{UserID: attendee.ID, Code: code})
	}

	if err := v.codes.SaveCodeBatch(ctx, poll.ID, batch); err != nil {
		if errors.Is(err, repo.ErrCodesAlreadyIssued) {
			return 0, fmt.Errorf("%s: %w", op, ErrCodesAlreadyIssued)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("vote codes dispatched", slog.Int("count", len(batch)))

	for _, code := range batch {
		v.broadcast.NotifyCode(code.UserID, poll.Title, code.Code)
	}

	return len(batch), nil
}

// VerifyCode consumes the caller's code for a poll. The flip is a single
// conditional update in the store; this method only translates its outcome.
func (v *LiveVoting) VerifyCode(ctx context.Context, caller entity.Principal, pollID int64, code string) error {
	const op = "LiveVoting.VerifyCode"

	if pollID == 0 || code == "" {
		return fmt.Errorf("%s: %w", op, ErrMissingData)
	}

	err := v.codes.ConsumeCode(ctx, pollID, caller.UserID, code)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrCodeNotFound):
			return fmt.Errorf("%s: %w", op, ErrCodeNotFound)
		case errors.Is(err, repo.ErrCodeAlreadyUsed):
			return fmt.Errorf("%s: %w", op, ErrCodeAlreadyUsed)
		default:
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	v.log.Info("vote code verified", slog.String("op", op),
		slog.Int64("pollID", pollID), slog.Int64("userID", caller.UserID))

	return nil
}

// CastVote appends the caller's vote to the ledger, bumps the hot counter
// and fans the new scoreboard out. Verification state is re-checked against
// the store here; client-asserted state is never trusted. Once the ledger
// insert commits the vote stands: counter or broadcast failures are logged
// and healed by reconciliation, never compensated.
func (v *LiveVoting) CastVote(ctx context.Context, caller entity.Principal, pollID, optionID int64) error {
	const op = "LiveVoting.CastVote"

	log := v.log.With(slog.String("op", op), slog.Int64("pollID", pollID), slog.Int64("userID", caller.UserID))

	if pollID == 0 || optionID == 0 {
		return fmt.Errorf("%s: %w", op, ErrMissingData)
	}

	verified, err := v.codes.HasUsedCode(ctx, pollID, caller.UserID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !verified {
		return fmt.Errorf("%s: %w", op, ErrNotVerified)
	}

	option, err := v.polls.OptionByID(ctx, optionID, pollID)
	if err != nil {
		if errors.Is(err, repo.ErrOptionNotFound) {
			return fmt.Errorf("%s: %w", op, ErrOptionNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := v.votes.SaveVote(ctx, caller.UserID, pollID, optionID); err != nil {
		if errors.Is(err, repo.ErrVoteExists) {
			return fmt.Errorf("%s: %w", op, ErrDuplicateVote)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("vote recorded", slog.String("option", option.Label))

	if _, err := v.counter.IncrScore(ctx, pollID, option.Label, 1); err != nil {
		log.Warn("counter increment failed, ledger is authoritative", utils.Err(err))
		return nil
	}

	scores, err := v.counter.Scores(ctx, pollID)
	if err != nil {
		log.Warn("score read failed, skipping broadcast", utils.Err(err))
		return nil
	}

	v.broadcast.PublishScores(pollID, scores)

	return nil
}

// RecordScore is the admin score injection path: it moves the hot counter
// without touching the ledger, then fans out like a vote would.
func (v *LiveVoting) RecordScore(ctx context.Context, caller entity.Principal, pollID int64, label string, delta int64) error {
	const op = "LiveVoting.RecordScore"

	if !caller.IsAdmin() {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}
	if pollID == 0 || label == "" {
		return fmt.Errorf("%s: %w", op, ErrMissingData)
	}

	if _, err := v.counter.IncrScore(ctx, pollID, label, delta); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	scores, err := v.counter.Scores(ctx, pollID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	v.broadcast.PublishScores(pollID, scores)

	return nil
}

// RebuildScores recomputes a poll's hot counters from the vote ledger and
// swaps them in. Disaster recovery for a counter store restart.
func (v *LiveVoting) RebuildScores(ctx context.Context, caller entity.Principal, pollID int64) error {
	const op = "LiveVoting.RebuildScores"

	if !caller.IsAdmin() {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	counts, err := v.votes.CountVotesByOption(ctx, pollID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := v.counter.ReplaceScores(ctx, pollID, counts); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	v.log.Info("scores rebuilt from ledger", slog.String("op", op), slog.Int64("pollID", pollID))

	v.broadcast.PublishScores(pollID, counts)

	return nil
}

// CreatePoll creates a poll with its options and makes it the single active
// poll system-wide.
func (v *LiveVoting) CreatePoll(ctx context.Context, caller entity.Principal, title string, labels []string) (int64, error) {
	const op = "LiveVoting.CreatePoll"

	if !caller.IsAdmin() {
		return 0, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}
	if title == "" || len(labels) == 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrMissingData)
	}

	pollID, err := v.polls.SavePoll(ctx, title, labels)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	v.log.Info("poll created", slog.String("op", op), slog.Int64("pollID", pollID))

	return pollID, nil
}

func (v *LiveVoting) ClosePoll(ctx context.Context, caller entity.Principal, pollID int64) error {
	const op = "LiveVoting.ClosePoll"

	if !caller.IsAdmin() {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	if err := v.polls.ClosePoll(ctx, pollID); err != nil {
		if errors.Is(err, repo.ErrPollNotFound) {
			return fmt.Errorf("%s: %w", op, ErrPollNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Poll returns a poll with its options and current live scores so late
// subscribers can catch up on initial state.
func (v *LiveVoting) Poll(ctx context.Context, pollID int64) (entity.PollDetails, error) {
	const op = "LiveVoting.Poll"

	poll, err := v.polls.PollByID(ctx, pollID)
	if err != nil {
		if errors.Is(err, repo.ErrPollNotFound) {
			return entity.PollDetails{}, fmt.Errorf("%s: %w", op, ErrPollNotFound)
		}
		return entity.PollDetails{}, fmt.Errorf("%s: %w", op, err)
	}

	options, err := v.polls.OptionsByPollID(ctx, pollID)
	if err != nil {
		return entity.PollDetails{}, fmt.Errorf("%s: %w", op, err)
	}

	scores, err := v.counter.Scores(ctx, pollID)
	if err != nil {
		// The read path stays useful through a counter outage.
		v.log.Warn("score read failed, returning poll without scores",
			slog.String("op", op), utils.Err(err))
		scores = map[string]int64{}
	}

	return entity.PollDetails{Poll: poll, Options: options, Scores: scores}, nil
}

func (v *LiveVoting) ActivePoll(ctx context.Context) (entity.PollDetails, error) {
	const op = "LiveVoting.ActivePoll"

	poll, err := v.polls.ActivePoll(ctx)
	if err != nil {
		if errors.Is(err, repo.ErrNoActivePoll) {
			return entity.PollDetails{}, fmt.Errorf("%s: %w", op, ErrPollNotActive)
		}
		return entity.PollDetails{}, fmt.Errorf("%s: %w", op, err)
	}

	return v.Poll(ctx, poll.ID)
}

func (v *LiveVoting) Polls(ctx context.Context) ([]entity.Poll, error) {
	const op = "LiveVoting.Polls"

	polls, err := v.polls.Polls(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return polls, nil
}
