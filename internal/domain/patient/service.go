package patient

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, f, limit, offset)
}

// SearchByITS returns visit records for an ITS number, most recent
// first. Used by the front desk to prefill a returning patient's form.
func (s *Service) SearchByITS(ctx context.Context, itsNo string, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, Filter{ITSNo: itsNo}, limit, offset)
}
