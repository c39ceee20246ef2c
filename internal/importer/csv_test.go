package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseCSV_ResolvesColumnsByHeader(t *testing.T) {
	// columnas desordenadas y una extra que se ignora
	raw := strings.Join([]string{
		"breed,animal_id,rec_num,name,animal_type,sex_upon_outcome,age_upon_outcome_in_weeks,outcome_type,location_lat,location_long",
		`Labrador Retriever Mix,A746874,1,Gizmo,Dog,Intact Female,52.5,Adoption,30.75,-97.48`,
		`Domestic Shorthair Mix,A664290,2,,Cat,Neutered Male,104,Transfer,30.5,-97.3`,
	}, "\n")

	got, err := parseCSV(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("parseCSV returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}

	a := got[0]
	if a.AnimalID != "A746874" || a.Name != "Gizmo" || a.AnimalType != "Dog" {
		t.Fatalf("unexpected first row: %+v", a)
	}
	if a.Breed != "Labrador Retriever Mix" || a.SexUponOutcome != "Intact Female" {
		t.Fatalf("unexpected first row: %+v", a)
	}
	if a.AgeUponOutcomeInWeeks != 52.5 {
		t.Fatalf("expected age 52.5, got %v", a.AgeUponOutcomeInWeeks)
	}
	if a.LocationLat != 30.75 || a.LocationLong != -97.48 {
		t.Fatalf("expected location parsed, got %v/%v", a.LocationLat, a.LocationLong)
	}

	if got[1].Name != "" || got[1].OutcomeType != "Transfer" {
		t.Fatalf("unexpected second row: %+v", got[1])
	}
}

func TestParseCSV_DerivesAgeFromDates(t *testing.T) {
	// sin edad precalculada: 70 días entre nacimiento y outcome = 10 semanas
	raw := strings.Join([]string{
		"animal_id,animal_type,breed,age_upon_outcome_in_weeks,date_of_birth,datetime",
		`A1,Dog,Beagle Mix,,2016-01-01,2016-03-11 00:00:00`,
	}, "\n")

	got, err := parseCSV(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("parseCSV returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	if got[0].AgeUponOutcomeInWeeks != 10 {
		t.Fatalf("expected derived age 10 weeks, got %v", got[0].AgeUponOutcomeInWeeks)
	}
	if got[0].DateOfBirth == nil || got[0].OutcomeAt == nil {
		t.Fatalf("expected both dates parsed, got %+v", got[0])
	}
}

func TestParseCSV_ShortRowsKeepMissingFieldsEmpty(t *testing.T) {
	raw := strings.Join([]string{
		"animal_id,animal_type,breed,outcome_type",
		`A1,Dog`,
	}, "\n")

	got, err := parseCSV(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("parseCSV returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	if got[0].AnimalID != "A1" || got[0].AnimalType != "Dog" {
		t.Fatalf("unexpected row: %+v", got[0])
	}
	if got[0].Breed != "" || got[0].OutcomeType != "" {
		t.Fatalf("expected missing columns empty, got %+v", got[0])
	}
}

func TestParseCSV_EmptyInput(t *testing.T) {
	if _, err := parseCSV(strings.NewReader("")); err == nil {
		t.Fatalf("expected error for input without header")
	}
}

func TestReadCSV_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outcomes.csv")
	raw := strings.Join([]string{
		"animal_id,animal_type,breed,age_upon_outcome_in_weeks",
		`A1,Dog,Beagle Mix,30`,
		`A2,Cat,Domestic Shorthair Mix,26`,
	}, "\n")
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}

	got, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}

	if _, err := ReadCSV(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
