package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mahalshifa/opd/internal/domain/doctor"
	"github.com/mahalshifa/opd/internal/domain/patient"
	"github.com/mahalshifa/opd/internal/domain/token"
	"github.com/mahalshifa/opd/internal/platform/metrics"
	"github.com/mahalshifa/opd/internal/platform/slip"
)

// TxRunner executes fn inside a storage transaction. Repositories
// called within fn pick the transaction up from the context.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// Result is a completed registration: the issued token, the visit
// record, and the rendered slip.
type Result struct {
	Token    *token.Token     `json:"token"`
	Patient  *patient.Patient `json:"patient"`
	SlipHTML string           `json:"slip_html"`
}

type Service struct {
	doctors  doctor.Repository
	patients patient.Repository
	tokens   token.Repository
	seq      token.Sequencer
	runTx    TxRunner
	renderer *slip.Renderer
	metrics  *metrics.RegistrationMetrics
	loc      *time.Location
	clinic   string
	locks    *keyedMutex
	now      func() time.Time
}

func NewService(
	doctors doctor.Repository,
	patients patient.Repository,
	tokens token.Repository,
	seq token.Sequencer,
	runTx TxRunner,
	renderer *slip.Renderer,
	m *metrics.RegistrationMetrics,
	loc *time.Location,
	clinic string,
) *Service {
	return &Service{
		doctors:  doctors,
		patients: patients,
		tokens:   tokens,
		seq:      seq,
		runTx:    runTx,
		renderer: renderer,
		metrics:  m,
		loc:      loc,
		clinic:   clinic,
		locks:    newKeyedMutex(),
		now:      time.Now,
	}
}

// Register issues the next token for the doctor and records the visit.
// The sequence read and both writes happen under a per-(doctor, day)
// lock so concurrent registrations cannot observe the same maximum.
func (s *Service) Register(ctx context.Context, req *Request) (*Result, error) {
	start := time.Now()

	if errs := req.validate(); errs != nil {
		s.metrics.ObserveFailure("validation")
		return nil, errs
	}

	doc, err := s.doctors.GetByID(ctx, req.DoctorID)
	if err != nil {
		s.metrics.ObserveFailure("doctor_not_found")
		return nil, FieldErrors{"doctor_id": "doctor not found"}
	}

	now := s.now().In(s.loc)
	key := req.DoctorID.String() + ":" + now.Format("2006-01-02")
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	n, err := s.seq.NextToken(ctx, req.DoctorID, now)
	if err != nil {
		s.metrics.ObserveFailure("sequence_unavailable")
		s.metrics.ObserveLatency("error", time.Since(start).Seconds())
		return nil, err
	}

	opID := uuid.New()
	day := token.DayOf(now, s.loc)

	p := &patient.Patient{
		ID:          uuid.New(),
		ITSNo:       req.ITSNo,
		Name:        req.Name,
		Age:         req.Age,
		Gender:      req.Gender,
		DoctorID:    doc.ID,
		DoctorName:  doc.Name,
		TokenNumber: n,
		OpID:        opID,
		VisitedOn:   day,
	}
	if m := strings.TrimSpace(req.Mohallah); m != "" {
		p.Mohallah = &m
	}

	t := &token.Token{
		ID:          uuid.New(),
		DoctorID:    doc.ID,
		PatientID:   p.ID,
		TokenNumber: n,
		DoctorName:  doc.Name,
		PatientName: p.Name,
		OpID:        opID,
		IssuedOn:    day,
		IssuedAt:    now,
	}

	// Token fact first: a visit record without its token is worse than
	// the reverse, and the unique index on (doctor_id, issued_on,
	// token_number) rejects duplicates at the storage boundary.
	err = s.runTx(ctx, func(ctx context.Context) error {
		if err := s.tokens.Create(ctx, t); err != nil {
			return err
		}
		return s.patients.Create(ctx, p)
	})
	if err != nil {
		s.metrics.ObserveFailure("store")
		s.metrics.ObserveLatency("error", time.Since(start).Seconds())
		return nil, fmt.Errorf("persisting registration: %w", err)
	}

	html, err := s.renderSlip(t, p)
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveTokenIssued(doc.ID.String())
	s.metrics.ObserveLatency("ok", time.Since(start).Seconds())

	return &Result{Token: t, Patient: p, SlipHTML: html}, nil
}

// Reprint re-renders the slip for an already registered patient from
// stored values. It never allocates a new number, and it refuses
// records whose token fact is missing (a registration that failed
// partway has no recovery path here).
func (s *Service) Reprint(ctx context.Context, patientID uuid.UUID) (string, error) {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return "", fmt.Errorf("patient %s: %w", patientID, err)
	}
	t, err := s.tokens.GetByPatientID(ctx, p.ID)
	if err != nil {
		return "", fmt.Errorf("token for patient %s: %w", patientID, err)
	}
	html, err := s.renderSlip(t, p)
	if err != nil {
		return "", err
	}
	s.metrics.ObserveReprint()
	return html, nil
}

func (s *Service) renderSlip(t *token.Token, p *patient.Patient) (string, error) {
	var b strings.Builder
	err := s.renderer.Render(&b, slip.Data{
		ClinicName:  s.clinic,
		PatientName: p.Name,
		Age:         p.Age,
		ITSNo:       p.ITSNo,
		DoctorName:  t.DoctorName,
		TokenNumber: t.TokenNumber,
		IssuedAt:    t.IssuedAt,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool {
	var fe FieldErrors
	return errors.As(err, &fe)
}
