package patient

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockPatientRepo struct {
	patients map[uuid.UUID]*Patient
	clock    time.Time
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: make(map[uuid.UUID]*Patient), clock: time.Now()}
}

func (m *mockPatientRepo) Create(_ context.Context, p *Patient) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.clock = m.clock.Add(time.Second)
	p.CreatedAt = m.clock
	m.patients[p.ID] = p
	return nil
}

func (m *mockPatientRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *mockPatientRepo) List(_ context.Context, f Filter, limit, offset int) ([]*Patient, int, error) {
	var result []*Patient
	for _, p := range m.patients {
		if f.ITSNo != "" && !strings.Contains(p.ITSNo, f.ITSNo) {
			continue
		}
		if f.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Name)) {
			continue
		}
		if !f.VisitedOn.IsZero() && !p.VisitedOn.Equal(f.VisitedOn) {
			continue
		}
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, len(result), nil
}

// -- Tests --

func TestSearchByITS(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo)
	ctx := context.Background()

	repo.Create(ctx, &Patient{ITSNo: "12345678", Name: "Fatema Husain", Age: 42, Gender: "Female"})
	repo.Create(ctx, &Patient{ITSNo: "87654321", Name: "Yusuf Ali", Age: 30, Gender: "Male"})
	repo.Create(ctx, &Patient{ITSNo: "12345678", Name: "Fatema Husain", Age: 42, Gender: "Female"})

	items, total, err := svc.SearchByITS(ctx, "12345678", 20, 0)
	if err != nil {
		t.Fatalf("SearchByITS: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	for _, p := range items {
		if p.ITSNo != "12345678" {
			t.Errorf("unexpected ITS %q in results", p.ITSNo)
		}
	}
}

func TestList_MostRecentFirst(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo)
	ctx := context.Background()

	repo.Create(ctx, &Patient{ITSNo: "11111111", Name: "First", Age: 20, Gender: "Male"})
	repo.Create(ctx, &Patient{ITSNo: "22222222", Name: "Second", Age: 25, Gender: "Female"})

	items, _, err := svc.List(ctx, Filter{}, 20, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].Name != "Second" {
		t.Errorf("expected most recent first, got %q", items[0].Name)
	}
}

func TestList_NameFilter(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo)
	ctx := context.Background()

	repo.Create(ctx, &Patient{ITSNo: "11111111", Name: "Fatema Husain", Age: 42, Gender: "Female"})
	repo.Create(ctx, &Patient{ITSNo: "22222222", Name: "Yusuf Ali", Age: 30, Gender: "Male"})

	_, total, err := svc.List(ctx, Filter{Name: "fatema"}, 20, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 {
		t.Errorf("total = %d, want 1", total)
	}
}

func TestList_ITSSubstring(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo)
	ctx := context.Background()

	repo.Create(ctx, &Patient{ITSNo: "12345678", Name: "Fatema Husain", Age: 42, Gender: "Female"})
	repo.Create(ctx, &Patient{ITSNo: "87654321", Name: "Yusuf Ali", Age: 30, Gender: "Male"})

	_, total, err := svc.List(ctx, Filter{ITSNo: "1234"}, 20, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 {
		t.Errorf("total = %d, want 1", total)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(newMockPatientRepo())
	if _, err := svc.Get(context.Background(), uuid.New()); err == nil {
		t.Error("expected not found error")
	}
}
