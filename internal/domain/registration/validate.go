package registration

import (
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
)

var itsPattern = regexp.MustCompile(`^\d{8}$`)

var validGenders = map[string]bool{
	"Male": true, "Female": true, "Other": true,
}

// FieldErrors maps request fields to validation messages.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(e[f])
	}
	return b.String()
}

// Request is one front-desk registration: a patient visit bound to a
// doctor.
type Request struct {
	DoctorID uuid.UUID `json:"doctor_id"`
	ITSNo    string    `json:"its_no"`
	Name     string    `json:"name"`
	Age      int       `json:"age"`
	Gender   string    `json:"gender"`
	Mohallah string    `json:"mohallah"`
}

func (r *Request) validate() FieldErrors {
	errs := FieldErrors{}

	if r.DoctorID == uuid.Nil {
		errs["doctor_id"] = "doctor_id is required"
	}

	r.ITSNo = strings.TrimSpace(r.ITSNo)
	if r.ITSNo == "" {
		errs["its_no"] = "its_no is required"
	} else if !itsPattern.MatchString(r.ITSNo) {
		errs["its_no"] = "its_no must be exactly 8 digits"
	}

	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		errs["name"] = "name is required"
	}

	if r.Age <= 0 || r.Age > 130 {
		errs["age"] = "age must be between 1 and 130"
	}

	if !validGenders[r.Gender] {
		errs["gender"] = "gender must be Male, Female or Other"
	}

	r.Mohallah = strings.TrimSpace(r.Mohallah)

	if len(errs) == 0 {
		return nil
	}
	return errs
}
