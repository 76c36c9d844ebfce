package token

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// counterTTL keeps day counters around long enough to outlive the day
// they belong to, including clock skew across restarts.
const counterTTL = 48 * time.Hour

// RedisSequencer allocates token numbers from a per-(doctor, day) Redis
// counter. The counter is seeded from the store's current maximum before
// the first increment, so it stays correct after a Redis flush.
type RedisSequencer struct {
	client *redis.Client
	repo   Repository
	loc    *time.Location
}

func NewRedisSequencer(client *redis.Client, repo Repository, loc *time.Location) *RedisSequencer {
	return &RedisSequencer{client: client, repo: repo, loc: loc}
}

func (s *RedisSequencer) key(doctorID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("opd:seq:%s:%s", doctorID, at.In(s.loc).Format("2006-01-02"))
}

func (s *RedisSequencer) NextToken(ctx context.Context, doctorID uuid.UUID, at time.Time) (int, error) {
	start, end := DayBounds(at, s.loc)
	max, err := s.repo.MaxTokenNumber(ctx, doctorID, start, end)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSequenceUnavailable, err)
	}

	key := s.key(doctorID, at)
	if err := s.client.SetNX(ctx, key, max, counterTTL).Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSequenceUnavailable, err)
	}
	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSequenceUnavailable, err)
	}
	return int(n), nil
}
