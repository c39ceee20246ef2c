package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"animal-shelter-dashboard/internal/domain/animals"
)

// ReadCSV parsea un export de outcomes. Las columnas se resuelven por
// nombre de header, así el orden y las columnas extra no importan.
func ReadCSV(path string) ([]animals.Animal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("importer: open csv: %w", err)
	}
	defer f.Close()

	return parseCSV(f)
}

func parseCSV(r io.Reader) ([]animals.Animal, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // filas cortas no cortan el import

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("importer: read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	out := make([]animals.Animal, 0)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("importer: read row: %w", err)
		}

		a := animals.Animal{
			AnimalID:       field(row, "animal_id"),
			Name:           field(row, "name"),
			AnimalType:     field(row, "animal_type"),
			Breed:          field(row, "breed"),
			Color:          field(row, "color"),
			SexUponOutcome: field(row, "sex_upon_outcome"),
			AgeUponOutcome: field(row, "age_upon_outcome"),
			MonthYear:      field(row, "monthyear"),
			OutcomeType:    field(row, "outcome_type"),
			OutcomeSubtype: field(row, "outcome_subtype"),
		}

		a.AgeUponOutcomeInWeeks, _ = strconv.ParseFloat(field(row, "age_upon_outcome_in_weeks"), 64)
		a.LocationLat, _ = strconv.ParseFloat(field(row, "location_lat"), 64)
		a.LocationLong, _ = strconv.ParseFloat(field(row, "location_long"), 64)

		a.DateOfBirth = parseCSVTime(field(row, "date_of_birth"))
		a.OutcomeAt = parseCSVTime(field(row, "datetime"))

		// Exports viejos no traen la edad precalculada; se deriva de fechas.
		if a.AgeUponOutcomeInWeeks == 0 && a.DateOfBirth != nil && a.OutcomeAt != nil {
			weeks := a.OutcomeAt.Sub(*a.DateOfBirth).Hours() / (24 * 7)
			if weeks > 0 {
				a.AgeUponOutcomeInWeeks = weeks
			}
		}

		out = append(out, a)
	}
	return out, nil
}

var csvLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseCSVTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range csvLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
