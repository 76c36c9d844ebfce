package token

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	loc  *time.Location
}

func NewService(repo Repository, loc *time.Location) *Service {
	return &Service{repo: repo, loc: loc}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Token, error) {
	return s.repo.GetByID(ctx, id)
}

// dateOnly keeps the value's own calendar date, normalized to UTC
// midnight the way issued_on is stored. Dates parsed from query params
// must not be shifted through the clinic timezone.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ListByDoctor returns the tokens issued for a doctor on the given day,
// latest number first.
func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID, day time.Time, limit, offset int) ([]*Token, int, error) {
	return s.repo.ListByDoctor(ctx, doctorID, dateOnly(day), limit, offset)
}

func (s *Service) List(ctx context.Context, day time.Time, limit, offset int) ([]*Token, int, error) {
	return s.repo.List(ctx, dateOnly(day), limit, offset)
}

// Today returns the current clinic-local calendar date.
func (s *Service) Today() time.Time {
	return DayOf(time.Now(), s.loc)
}
