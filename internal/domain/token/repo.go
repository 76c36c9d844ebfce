package token

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, t *Token) error
	GetByID(ctx context.Context, id uuid.UUID) (*Token, error)
	GetByPatientID(ctx context.Context, patientID uuid.UUID) (*Token, error)
	// MaxTokenNumber returns the highest token number issued for the
	// doctor with issued_at inside [start, end], or 0 when none exist.
	MaxTokenNumber(ctx context.Context, doctorID uuid.UUID, start, end time.Time) (int, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, issuedOn time.Time, limit, offset int) ([]*Token, int, error)
	List(ctx context.Context, issuedOn time.Time, limit, offset int) ([]*Token, int, error)
}
