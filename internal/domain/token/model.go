package token

import (
	"time"

	"github.com/google/uuid"
)

// Token is the immutable issuance fact for one patient visit. Token
// numbers restart at 1 for each doctor each clinic day; IssuedOn is the
// clinic-local date the number is scoped to.
type Token struct {
	ID          uuid.UUID `db:"id" json:"id"`
	DoctorID    uuid.UUID `db:"doctor_id" json:"doctor_id"`
	PatientID   uuid.UUID `db:"patient_id" json:"patient_id"`
	TokenNumber int       `db:"token_number" json:"token_number"`
	DoctorName  string    `db:"doctor_name" json:"doctor_name"`
	PatientName string    `db:"patient_name" json:"patient_name"`
	OpID        uuid.UUID `db:"op_id" json:"op_id"`
	IssuedOn    time.Time `db:"issued_on" json:"issued_on"`
	IssuedAt    time.Time `db:"issued_at" json:"issued_at"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
