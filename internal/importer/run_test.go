package importer

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"animal-shelter-dashboard/internal/adapters/storage/memory"
	"animal-shelter-dashboard/internal/domain/animals"
	"animal-shelter-dashboard/internal/domain/audit"
	"animal-shelter-dashboard/internal/platform/logger"
)

// -------------------------
// Fake feed source
// -------------------------

type fakeSource struct {
	pages [][]animals.Animal
	calls int
}

func (s *fakeSource) FetchPage(ctx context.Context, limit, offset int) ([]animals.Animal, error) {
	if s.calls >= len(s.pages) {
		return []animals.Animal{}, nil
	}
	page := s.pages[s.calls]
	s.calls++
	return page, nil
}

func newTestRunner(source *fakeSource) (*Runner, *animals.Service, *audit.Service) {
	animalsSvc := animals.NewService(memory.NewAnimalsRepo())
	auditSvc := audit.NewService(memory.NewAuditRepo())
	log := logger.New(logger.Options{Out: io.Discard})
	return New(animalsSvc, auditSvc, source, log), animalsSvc, auditSvc
}

func dog(id string, weeks float64) animals.Animal {
	return animals.Animal{
		AnimalID:              id,
		AnimalType:            "Dog",
		Breed:                 "Labrador Retriever Mix",
		AgeUponOutcomeInWeeks: weeks,
	}
}

// -------------------------
// Tests
// -------------------------

func TestRunner_Run_NoSourceConfigured(t *testing.T) {
	r, _, _ := newTestRunner(&fakeSource{})

	if _, err := r.Run(context.Background(), Options{}); err == nil {
		t.Fatalf("expected error without csv path or feed flag")
	}
}

func TestRunner_Run_FromFeed_Paginates(t *testing.T) {
	source := &fakeSource{pages: [][]animals.Animal{
		{dog("A1", 30), dog("A2", 40)},
		{dog("A3", 50)}, // página corta: fin del feed
	}}
	r, animalsSvc, auditSvc := newTestRunner(source)

	res, err := r.Run(context.Background(), Options{FromAPI: true, PageSize: 2})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Received != 3 || res.Inserted != 3 {
		t.Fatalf("expected received=3 inserted=3, got %+v", res)
	}
	if source.calls != 2 {
		t.Fatalf("expected 2 page fetches, got %d", source.calls)
	}

	n, err := animalsSvc.Count(context.Background(), animals.Filter{})
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 stored records, got %d", n)
	}

	// queda una entrada de historial con el origen
	entries, err := auditSvc.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("audit List returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(entries))
	}
	if entries[0].Action != audit.ActionImported || entries[0].Detail != "api" {
		t.Fatalf("unexpected audit entry: %+v", entries[0])
	}
	if entries[0].Modified != 3 {
		t.Fatalf("expected modified=3 in audit entry, got %d", entries[0].Modified)
	}
}

func TestRunner_Run_LimitTruncates(t *testing.T) {
	source := &fakeSource{pages: [][]animals.Animal{
		{dog("A1", 30), dog("A2", 40), dog("A3", 50)},
	}}
	r, animalsSvc, _ := newTestRunner(source)

	res, err := r.Run(context.Background(), Options{FromAPI: true, Limit: 2})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Received != 2 || res.Inserted != 2 {
		t.Fatalf("expected received=2 inserted=2, got %+v", res)
	}

	n, _ := animalsSvc.Count(context.Background(), animals.Filter{})
	if n != 2 {
		t.Fatalf("expected 2 stored records, got %d", n)
	}
}

func TestRunner_Run_DryRun_WritesNothing(t *testing.T) {
	source := &fakeSource{pages: [][]animals.Animal{
		{
			dog("A1", 30),
			{AnimalID: "A2", AnimalType: "Dog"}, // sin breed ni edad: inválido
		},
	}}
	r, animalsSvc, auditSvc := newTestRunner(source)

	res, err := r.Run(context.Background(), Options{FromAPI: true, DryRun: true})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Received != 2 || res.Invalid != 1 {
		t.Fatalf("expected received=2 invalid=1, got %+v", res)
	}
	if res.Inserted != 0 {
		t.Fatalf("expected inserted=0 in dry run, got %d", res.Inserted)
	}

	n, _ := animalsSvc.Count(context.Background(), animals.Filter{})
	if n != 0 {
		t.Fatalf("dry run wrote %d records", n)
	}
	entries, _ := auditSvc.List(context.Background(), 10)
	if len(entries) != 0 {
		t.Fatalf("dry run left %d audit entries", len(entries))
	}
}

func TestRunner_Run_FromCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outcomes.csv")
	raw := strings.Join([]string{
		"animal_id,animal_type,breed,age_upon_outcome_in_weeks",
		`A1,Dog,Beagle Mix,30`,
		`A2,Dog,Newfoundland,80`,
	}, "\n")
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}

	r, _, auditSvc := newTestRunner(&fakeSource{})

	res, err := r.Run(context.Background(), Options{CSVPath: path})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Inserted != 2 {
		t.Fatalf("expected inserted=2, got %+v", res)
	}

	entries, _ := auditSvc.List(context.Background(), 10)
	if len(entries) != 1 || entries[0].Detail != "csv:outcomes.csv" {
		t.Fatalf("expected audit detail csv:outcomes.csv, got %+v", entries)
	}
}
