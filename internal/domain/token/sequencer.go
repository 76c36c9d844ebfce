package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrSequenceUnavailable is returned when the next token number cannot
// be determined. Callers must surface the failure; guessing a number
// would risk issuing duplicates.
var ErrSequenceUnavailable = errors.New("token sequence unavailable")

// Sequencer computes the next token number for a doctor on a given
// clinic day. Implementations are pure reads: nothing is reserved until
// the caller persists the token fact.
type Sequencer interface {
	NextToken(ctx context.Context, doctorID uuid.UUID, at time.Time) (int, error)
}

// DayBounds returns the inclusive start and end of the clinic day
// containing t, in the given location.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// DayOf truncates t to its clinic-local calendar date, normalized to
// UTC midnight for storage in a date column.
func DayOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// StoreSequencer derives the next number from the highest token number
// already persisted for the doctor within the day.
type StoreSequencer struct {
	repo Repository
	loc  *time.Location
}

func NewStoreSequencer(repo Repository, loc *time.Location) *StoreSequencer {
	return &StoreSequencer{repo: repo, loc: loc}
}

func (s *StoreSequencer) NextToken(ctx context.Context, doctorID uuid.UUID, at time.Time) (int, error) {
	start, end := DayBounds(at, s.loc)
	max, err := s.repo.MaxTokenNumber(ctx, doctorID, start, end)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSequenceUnavailable, err)
	}
	return max + 1, nil
}
