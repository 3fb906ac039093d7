package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter is the hot counter store: per-poll hashes of option label to vote
// count. Ephemeral and rebuildable from the vote ledger; the reconciliation
// worker mirrors it into durable totals.
type Counter struct {
	client *redis.Client
}

func New(addr string) (*Counter, error) {
	const op = "storage.redis.New"

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Counter{client: client}, nil
}

func (c *Counter) Close() error {
	return c.client.Close()
}

func scoresKey(pollID int64) string {
	return fmt.Sprintf("poll:%d:scores", pollID)
}

// IncrScore atomically adds delta to one option's count and returns the new
// value. The increment is atomic per key but not linearized with the ledger
// insert that triggered it.
func (c *Counter) IncrScore(ctx context.Context, pollID int64, label string, delta int64) (int64, error) {
	const op = "storage.redis.IncrScore"

	val, err := c.client.HIncrBy(ctx, scoresKey(pollID), label, delta).Result()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return val, nil
}

func (c *Counter) Scores(ctx context.Context, pollID int64) (map[string]int64, error) {
	const op = "storage.redis.Scores"

	fields, err := c.client.HGetAll(ctx, scoresKey(pollID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	scores := make(map[string]int64, len(fields))
	for label, raw := range fields {
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: parse %q: %w", op, raw, err)
		}
		scores[label] = count
	}

	return scores, nil
}

// ReplaceScores swaps a poll's hash wholesale. Used by the rebuild path, so
// stale fields from removed options do not survive.
func (c *Counter) ReplaceScores(ctx context.Context, pollID int64, scores map[string]int64) error {
	const op = "storage.redis.ReplaceScores"

	key := scoresKey(pollID)

	pipe := c.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(scores) > 0 {
		fields := make(map[string]interface{}, len(scores))
		for label, count := range scores {
			fields[label] = count
		}
		pipe.HSet(ctx, key, fields)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AllScores enumerates every poll hash via SCAN. The reconciliation worker
// calls it once per cycle.
func (c *Counter) AllScores(ctx context.Context) (map[int64]map[string]int64, error) {
	const op = "storage.redis.AllScores"

	all := make(map[int64]map[string]int64)

	iter := c.client.Scan(ctx, 0, "poll:*:scores", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		var pollID int64
		if _, err := fmt.Sscanf(key, "poll:%d:scores", &pollID); err != nil {
			continue
		}

		fields, err := c.client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		scores := make(map[string]int64, len(fields))
		for label, raw := range fields {
			count, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: parse %q: %w", op, raw, err)
			}
			scores[label] = count
		}
		all[pollID] = scores
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return all, nil
}
