package patient

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Filter narrows patient listings. Zero values mean "no constraint".
// ITSNo and Name match as substrings, the way the front-desk list
// filter box works.
type Filter struct {
	ITSNo     string
	Name      string
	VisitedOn time.Time
}

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	List(ctx context.Context, f Filter, limit, offset int) ([]*Patient, int, error)
}
