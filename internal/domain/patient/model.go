package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient is one visit record. Patients are created through
// registration only; the same person returning on another day gets a
// fresh record under the same ITS number. Doctor name and token number
// are denormalized onto the record so lists and slips never need a
// join, and OpID ties the record to its token fact.
type Patient struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ITSNo       string    `db:"its_no" json:"its_no"`
	Name        string    `db:"name" json:"name"`
	Age         int       `db:"age" json:"age"`
	Gender      string    `db:"gender" json:"gender"`
	Mohallah    *string   `db:"mohallah" json:"mohallah,omitempty"`
	DoctorID    uuid.UUID `db:"doctor_id" json:"doctor_id"`
	DoctorName  string    `db:"doctor_name" json:"doctor_name"`
	TokenNumber int       `db:"token_number" json:"token_number"`
	OpID        uuid.UUID `db:"op_id" json:"op_id"`
	VisitedOn   time.Time `db:"visited_on" json:"visited_on"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
