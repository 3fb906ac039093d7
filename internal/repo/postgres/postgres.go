package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ANSH5252/LivePulse/internal/entity"
	"github.com/ANSH5252/LivePulse/internal/repo"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
)

type Storage struct {
	db *sql.DB
}

func New(postgresURL string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sql.Open("postgres", postgresURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (s *Storage) SaveUser(ctx context.Context, username string, role entity.Role) (int64, error) {
	const op = "storage.postgres.SaveUser"

	query := `INSERT INTO users (username, role) VALUES ($1, $2) RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query, username, role).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, repo.ErrUserAlreadyExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UserByID(ctx context.Context, id int64) (entity.User, error) {
	const op = "storage.postgres.UserByID"

	query := `SELECT id, username, role, created_at FROM users WHERE id = $1`

	var user entity.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Username, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, fmt.Errorf("%s: %w", op, repo.ErrUserNotFound)
		}
		return entity.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// SavePoll creates a poll with its options and makes it the single active
// poll: every other poll is deactivated in the same transaction.
func (s *Storage) SavePoll(ctx context.Context, title string, labels []string) (int64, error) {
	const op = "storage.postgres.SavePoll"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE polls SET is_active = false WHERE is_active`); err != nil {
		return 0, fmt.Errorf("%s: deactivate polls: %w", op, err)
	}

	var pollID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO polls (title, is_active) VALUES ($1, true) RETURNING id`, title,
	).Scan(&pollID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	for _, label := range labels {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO options (poll_id, label) VALUES ($1, $2)`, pollID, label,
		); err != nil {
			return 0, fmt.Errorf("%s: insert option: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return pollID, nil
}

func (s *Storage) ClosePoll(ctx context.Context, id int64) error {
	const op = "storage.postgres.ClosePoll"

	res, err := s.db.ExecContext(ctx, `UPDATE polls SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, repo.ErrPollNotFound)
	}

	return nil
}

func (s *Storage) PollByID(ctx context.Context, id int64) (entity.Poll, error) {
	const op = "storage.postgres.PollByID"

	query := `SELECT id, title, is_active, created_at FROM polls WHERE id = $1`

	var poll entity.Poll
	err := s.db.QueryRowContext(ctx, query, id).Scan(&poll.ID, &poll.Title, &poll.IsActive, &poll.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Poll{}, fmt.Errorf("%s: %w", op, repo.ErrPollNotFound)
		}
		return entity.Poll{}, fmt.Errorf("%s: %w", op, err)
	}

	return poll, nil
}

func (s *Storage) ActivePoll(ctx context.Context) (entity.Poll, error) {
	const op = "storage.postgres.ActivePoll"

	query := `SELECT id, title, is_active, created_at FROM polls WHERE is_active`

	var poll entity.Poll
	err := s.db.QueryRowContext(ctx, query).Scan(&poll.ID, &poll.Title, &poll.IsActive, &poll.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Poll{}, fmt.Errorf("%s: %w", op, repo.ErrNoActivePoll)
		}
		return entity.Poll{}, fmt.Errorf("%s: %w", op, err)
	}

	return poll, nil
}

func (s *Storage) Polls(ctx context.Context) ([]entity.Poll, error) {
	const op = "storage.postgres.Polls"

	query := `SELECT id, title, is_active, created_at FROM polls ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var polls []entity.Poll
	for rows.Next() {
		var poll entity.Poll
		if err := rows.Scan(&poll.ID, &poll.Title, &poll.IsActive, &poll.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		polls = append(polls, poll)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return polls, nil
}

func (s *Storage) OptionsByPollID(ctx context.Context, pollID int64) ([]entity.Option, error) {
	const op = "storage.postgres.OptionsByPollID"

	query := `SELECT id, poll_id, label FROM options WHERE poll_id = $1 ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var options []entity.Option
	for rows.Next() {
		var option entity.Option
		if err := rows.Scan(&option.ID, &option.PollID, &option.Label); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		options = append(options, option)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return options, nil
}

func (s *Storage) OptionByID(ctx context.Context, id, pollID int64) (entity.Option, error) {
	const op = "storage.postgres.OptionByID"

	query := `SELECT id, poll_id, label FROM options WHERE id = $1 AND poll_id = $2`

	var option entity.Option
	err := s.db.QueryRowContext(ctx, query, id, pollID).Scan(&option.ID, &option.PollID, &option.Label)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Option{}, fmt.Errorf("%s: %w", op, repo.ErrOptionNotFound)
		}
		return entity.Option{}, fmt.Errorf("%s: %w", op, err)
	}

	return option, nil
}

// SaveAttendance records a check-in. The upsert only fires while present is
// still false, so a repeated check-in affects zero rows and is rejected
// rather than silently absorbed.
func (s *Storage) SaveAttendance(ctx context.Context, userID, pollID int64) error {
	const op = "storage.postgres.SaveAttendance"

	query := `INSERT INTO attendance (user_id, poll_id, present) VALUES ($1, $2, true)
		ON CONFLICT (user_id, poll_id) DO UPDATE SET present = true, checked_in_at = NOW()
		WHERE attendance.present = false`

	res, err := s.db.ExecContext(ctx, query, userID, pollID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, repo.ErrAlreadyCheckedIn)
	}

	return nil
}

func (s *Storage) PresentAttendees(ctx context.Context, pollID int64) ([]entity.User, error) {
	const op = "storage.postgres.PresentAttendees"

	query := `SELECT u.id, u.username, u.role, u.created_at
		FROM attendance a JOIN users u ON u.id = a.user_id
		WHERE a.poll_id = $1 AND a.present ORDER BY u.id`

	rows, err := s.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var users []entity.User
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Role, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return users, nil
}

// SaveCodeBatch persists one dispatch batch atomically. The poll row is
// locked for the duration of the transaction, so two concurrent dispatches
// serialize on it and the second one hits the already-issued guard. Either
// every code in the batch is committed or none is.
func (s *Storage) SaveCodeBatch(ctx context.Context, pollID int64, codes []entity.IssuedCode) error {
	const op = "storage.postgres.SaveCodeBatch"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	var lockedID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM polls WHERE id = $1 FOR UPDATE`, pollID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, repo.ErrPollNotFound)
		}
		return fmt.Errorf("%s: lock poll: %w", op, err)
	}

	var issued bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM vote_codes WHERE poll_id = $1)`, pollID).Scan(&issued)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if issued {
		return fmt.Errorf("%s: %w", op, repo.ErrCodesAlreadyIssued)
	}

	for _, code := range codes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO vote_codes (poll_id, user_id, code) VALUES ($1, $2, $3)`,
			pollID, code.UserID, code.Code,
		); err != nil {
			return fmt.Errorf("%s: insert code: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ConsumeCode flips used in one conditional statement; the row's current
// used state is the sole authority, there is no read-then-write gap. A zero
// row count is classified afterwards purely to pick the right error.
func (s *Storage) ConsumeCode(ctx context.Context, pollID, userID int64, code string) error {
	const op = "storage.postgres.ConsumeCode"

	query := `UPDATE vote_codes SET used = true
		WHERE poll_id = $1 AND user_id = $2 AND code = $3 AND used = false`

	res, err := s.db.ExecContext(ctx, query, pollID, userID, code)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	var used bool
	err = s.db.QueryRowContext(ctx,
		`SELECT used FROM vote_codes WHERE poll_id = $1 AND user_id = $2 AND code = $3`,
		pollID, userID, code,
	).Scan(&used)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, repo.ErrCodeNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if used {
		return fmt.Errorf("%s: %w", op, repo.ErrCodeAlreadyUsed)
	}

	return fmt.Errorf("%s: %w", op, repo.ErrCodeNotFound)
}

func (s *Storage) HasUsedCode(ctx context.Context, pollID, userID int64) (bool, error) {
	const op = "storage.postgres.HasUsedCode"

	query := `SELECT EXISTS (SELECT 1 FROM vote_codes WHERE poll_id = $1 AND user_id = $2 AND used)`

	var verified bool
	if err := s.db.QueryRowContext(ctx, query, pollID, userID).Scan(&verified); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return verified, nil
}

// SaveVote appends the authoritative ledger row. The unique index on
// (user_id, poll_id) is the arbiter under concurrency: of two racing
// inserts Postgres admits one and the loser surfaces here as ErrVoteExists.
func (s *Storage) SaveVote(ctx context.Context, userID, pollID, optionID int64) (int64, error) {
	const op = "storage.postgres.SaveVote"

	query := `INSERT INTO votes (user_id, poll_id, option_id) VALUES ($1, $2, $3) RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query, userID, pollID, optionID).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, repo.ErrVoteExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) CountVotesByOption(ctx context.Context, pollID int64) (map[string]int64, error) {
	const op = "storage.postgres.CountVotesByOption"

	query := `SELECT o.label, COUNT(v.id)
		FROM options o LEFT JOIN votes v ON v.option_id = o.id
		WHERE o.poll_id = $1 GROUP BY o.label`

	rows, err := s.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var label string
		var count int64
		if err := rows.Scan(&label, &count); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		counts[label] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return counts, nil
}

// UpsertTotal overwrites the durable aggregate unconditionally; the
// reconciliation worker's writes are idempotent last-write-wins.
func (s *Storage) UpsertTotal(ctx context.Context, pollID int64, label string, total int64) error {
	const op = "storage.postgres.UpsertTotal"

	query := `INSERT INTO poll_totals (poll_id, option_label, total_votes, synced_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (poll_id, option_label) DO UPDATE SET total_votes = EXCLUDED.total_votes, synced_at = NOW()`

	if _, err := s.db.ExecContext(ctx, query, pollID, label, total); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) TotalsByPoll(ctx context.Context, pollID int64) ([]entity.PollTotal, error) {
	const op = "storage.postgres.TotalsByPoll"

	query := `SELECT poll_id, option_label, total_votes, synced_at FROM poll_totals WHERE poll_id = $1 ORDER BY option_label`

	rows, err := s.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var totals []entity.PollTotal
	for rows.Next() {
		var total entity.PollTotal
		if err := rows.Scan(&total.PollID, &total.OptionLabel, &total.TotalVotes, &total.SyncedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		totals = append(totals, total)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return totals, nil
}
