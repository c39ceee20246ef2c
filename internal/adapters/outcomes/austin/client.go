// Package austin consume el feed Socrata de outcomes del Austin Animal
// Center (data.austintexas.gov). Implementa outcomes.Source.
package austin

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"animal-shelter-dashboard/internal/domain/animals"
	"animal-shelter-dashboard/internal/platform/httpclient"
)

// maxPageSize es el tope de $limit que acepta el feed.
const maxPageSize = 1000

type Client struct {
	http    *httpclient.Client
	feedURL string
}

func NewClient(hc *httpclient.Client, feedURL string) *Client {
	return &Client{
		http:    hc,
		feedURL: strings.TrimSpace(feedURL),
	}
}

// FetchPage trae una página del feed ordenada por animal_id para que la
// paginación por offset sea estable entre requests.
func (c *Client) FetchPage(ctx context.Context, limit, offset int) ([]animals.Animal, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	q := url.Values{}
	q.Set("$limit", strconv.Itoa(limit))
	q.Set("$offset", strconv.Itoa(offset))
	q.Set("$order", "animal_id")

	var rows []socrataRow
	if err := c.http.GetJSON(ctx, c.feedURL, q, &rows); err != nil {
		return nil, fmt.Errorf("austin: fetch page: %w", err)
	}

	out := make([]animals.Animal, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toAnimal())
	}
	return out, nil
}

// socrataRow es una fila cruda del feed: Socrata serializa todo como string.
type socrataRow struct {
	AnimalID       string `json:"animal_id"`
	Name           string `json:"name"`
	AnimalType     string `json:"animal_type"`
	Breed          string `json:"breed"`
	Color          string `json:"color"`
	SexUponOutcome string `json:"sex_upon_outcome"`
	AgeUponOutcome string `json:"age_upon_outcome"`
	AgeWeeks       string `json:"age_upon_outcome_in_weeks"`
	DateOfBirth    string `json:"date_of_birth"`
	OutcomeAt      string `json:"datetime"`
	MonthYear      string `json:"monthyear"`
	OutcomeType    string `json:"outcome_type"`
	OutcomeSubtype string `json:"outcome_subtype"`
	LocationLat    string `json:"location_lat"`
	LocationLong   string `json:"location_long"`
}

func (r socrataRow) toAnimal() animals.Animal {
	dob := parseSocrataTime(r.DateOfBirth)
	outcomeAt := parseSocrataTime(r.OutcomeAt)

	// El feed público no siempre trae la edad en semanas precalculada;
	// si falta se deriva de date_of_birth y datetime.
	ageWeeks, _ := strconv.ParseFloat(strings.TrimSpace(r.AgeWeeks), 64)
	if ageWeeks == 0 {
		ageWeeks = ageInWeeks(dob, outcomeAt)
	}

	lat, _ := strconv.ParseFloat(strings.TrimSpace(r.LocationLat), 64)
	long, _ := strconv.ParseFloat(strings.TrimSpace(r.LocationLong), 64)

	return animals.Animal{
		AnimalID:              strings.TrimSpace(r.AnimalID),
		Name:                  strings.TrimSpace(r.Name),
		AnimalType:            strings.TrimSpace(r.AnimalType),
		Breed:                 strings.TrimSpace(r.Breed),
		Color:                 strings.TrimSpace(r.Color),
		SexUponOutcome:        strings.TrimSpace(r.SexUponOutcome),
		AgeUponOutcome:        strings.TrimSpace(r.AgeUponOutcome),
		AgeUponOutcomeInWeeks: ageWeeks,
		DateOfBirth:           dob,
		OutcomeAt:             outcomeAt,
		MonthYear:             strings.TrimSpace(r.MonthYear),
		OutcomeType:           strings.TrimSpace(r.OutcomeType),
		OutcomeSubtype:        strings.TrimSpace(r.OutcomeSubtype),
		LocationLat:           lat,
		LocationLong:          long,
	}
}

// Socrata usa "floating timestamps" sin zona: 2016-02-13T17:59:00.000
var socrataLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseSocrataTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range socrataLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func ageInWeeks(dob, outcomeAt *time.Time) float64 {
	if dob == nil || outcomeAt == nil {
		return 0
	}
	weeks := outcomeAt.Sub(*dob).Hours() / (24 * 7)
	if weeks < 0 {
		return 0
	}
	return weeks
}
