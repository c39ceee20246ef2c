package animals

import (
	"context"
	"strings"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a Animal) error
	CreateBatch(ctx context.Context, items []Animal) (inserted int, err error)
	GetByAnimalID(ctx context.Context, animalID string) (Animal, error)
	Find(ctx context.Context, f Filter) ([]Animal, error)
	Count(ctx context.Context, f Filter) (int64, error)
	UpdateMatching(ctx context.Context, f Filter, ch Changes) (UpdateResult, error)
	DeleteMatching(ctx context.Context, f Filter) (DeleteResult, error)
	BreedCounts(ctx context.Context, f Filter) ([]BreedCount, error)
	Stats(ctx context.Context) (Stats, error)
}

// Filter son los criterios de búsqueda que cada adapter traduce a su query
// (bson.M en mongo, WHERE en postgres, comparación directa en memoria).
// Un Filter vacío selecciona toda la colección.
type Filter struct {
	AnimalID       string
	AnimalTypes    []string
	Breeds         []string // membership ($in)
	SexUponOutcome string
	OutcomeType    string

	// Rango de edad en semanas, inclusivo en ambos extremos.
	MinAgeWeeks *float64
	MaxAgeWeeks *float64

	// Paginación; solo aplica a Find. Limit <= 0 usa el default del adapter.
	Limit  int
	Offset int
}

// HasCriteria reporta si el filtro restringe algo (paginación no cuenta).
// Update/Delete exigen criterios no vacíos; ver reglas del servicio.
func (f Filter) HasCriteria() bool {
	return strings.TrimSpace(f.AnimalID) != "" ||
		len(f.AnimalTypes) > 0 ||
		len(f.Breeds) > 0 ||
		strings.TrimSpace(f.SexUponOutcome) != "" ||
		strings.TrimSpace(f.OutcomeType) != "" ||
		f.MinAgeWeeks != nil ||
		f.MaxAgeWeeks != nil
}

// Changes son los campos a modificar en un update. nil = no tocar.
// Semántica $set: solo los campos nombrados cambian, el resto queda igual.
type Changes struct {
	Name                  *string
	AnimalType            *string
	Breed                 *string
	Color                 *string
	SexUponOutcome        *string
	AgeUponOutcome        *string
	AgeUponOutcomeInWeeks *float64
	OutcomeType           *string
	OutcomeSubtype        *string
	OutcomeAt             *time.Time
	LocationLat           *float64
	LocationLong          *float64
}

func (c Changes) IsEmpty() bool {
	return c.Name == nil &&
		c.AnimalType == nil &&
		c.Breed == nil &&
		c.Color == nil &&
		c.SexUponOutcome == nil &&
		c.AgeUponOutcome == nil &&
		c.AgeUponOutcomeInWeeks == nil &&
		c.OutcomeType == nil &&
		c.OutcomeSubtype == nil &&
		c.OutcomeAt == nil &&
		c.LocationLat == nil &&
		c.LocationLong == nil
}

type UpdateResult struct {
	Matched  int64
	Modified int64
}

type DeleteResult struct {
	Deleted int64
}

type BreedCount struct {
	Breed string
	Count int64
}

// Stats es el resumen agregado de la colección: total, promedio de edad
// en semanas y cantidad de razas distintas.
type Stats struct {
	TotalAnimals int64
	AvgAgeWeeks  float64
	UniqueBreeds int
}
