package token

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mahalshifa/opd/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const tokenCols = `id, doctor_id, patient_id, token_number, doctor_name, patient_name,
	op_id, issued_on, issued_at, created_at`

func (r *repoPG) scanToken(row pgx.Row) (*Token, error) {
	var t Token
	err := row.Scan(&t.ID, &t.DoctorID, &t.PatientID, &t.TokenNumber, &t.DoctorName, &t.PatientName,
		&t.OpID, &t.IssuedOn, &t.IssuedAt, &t.CreatedAt)
	return &t, err
}

func (r *repoPG) Create(ctx context.Context, t *Token) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO tokens (id, doctor_id, patient_id, token_number, doctor_name, patient_name,
			op_id, issued_on, issued_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		t.ID, t.DoctorID, t.PatientID, t.TokenNumber, t.DoctorName, t.PatientName,
		t.OpID, t.IssuedOn, t.IssuedAt)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Token, error) {
	return r.scanToken(r.conn(ctx).QueryRow(ctx, `SELECT `+tokenCols+` FROM tokens WHERE id = $1`, id))
}

func (r *repoPG) GetByPatientID(ctx context.Context, patientID uuid.UUID) (*Token, error) {
	return r.scanToken(r.conn(ctx).QueryRow(ctx, `SELECT `+tokenCols+` FROM tokens WHERE patient_id = $1`, patientID))
}

func (r *repoPG) MaxTokenNumber(ctx context.Context, doctorID uuid.UUID, start, end time.Time) (int, error) {
	var max int
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT COALESCE(MAX(token_number), 0) FROM tokens
		WHERE doctor_id = $1 AND issued_at >= $2 AND issued_at <= $3`,
		doctorID, start, end).Scan(&max)
	if err != nil {
		return 0, err
	}
	return max, nil
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID, issuedOn time.Time, limit, offset int) ([]*Token, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM tokens WHERE doctor_id = $1 AND issued_on = $2`,
		doctorID, issuedOn).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+tokenCols+` FROM tokens
		WHERE doctor_id = $1 AND issued_on = $2
		ORDER BY token_number DESC LIMIT $3 OFFSET $4`,
		doctorID, issuedOn, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return r.collect(rows, total)
}

func (r *repoPG) List(ctx context.Context, issuedOn time.Time, limit, offset int) ([]*Token, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM tokens WHERE issued_on = $1`, issuedOn).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+tokenCols+` FROM tokens
		WHERE issued_on = $1
		ORDER BY issued_at DESC LIMIT $2 OFFSET $3`,
		issuedOn, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return r.collect(rows, total)
}

func (r *repoPG) collect(rows pgx.Rows, total int) ([]*Token, int, error) {
	var items []*Token
	for rows.Next() {
		t, err := r.scanToken(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, t)
	}
	return items, total, rows.Err()
}
