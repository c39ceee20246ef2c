package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrDuplicateID  = errors.New("animal id already exists")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	AnimalID   string
	Name       string
	AnimalType string
	Breed      string
	Color      string

	SexUponOutcome        string
	AgeUponOutcome        string
	AgeUponOutcomeInWeeks float64

	DateOfBirth *time.Time
	OutcomeAt   *time.Time
	MonthYear   string

	OutcomeType    string
	OutcomeSubtype string

	LocationLat  float64
	LocationLong float64
}

// Create inserta un registro nuevo. Campos obligatorios: animal_type,
// breed y age_upon_outcome_in_weeks > 0.
func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	a := Animal{
		AnimalID:              strings.TrimSpace(in.AnimalID),
		Name:                  strings.TrimSpace(in.Name),
		AnimalType:            strings.TrimSpace(in.AnimalType),
		Breed:                 strings.TrimSpace(in.Breed),
		Color:                 strings.TrimSpace(in.Color),
		SexUponOutcome:        strings.TrimSpace(in.SexUponOutcome),
		AgeUponOutcome:        strings.TrimSpace(in.AgeUponOutcome),
		AgeUponOutcomeInWeeks: in.AgeUponOutcomeInWeeks,
		DateOfBirth:           in.DateOfBirth,
		OutcomeAt:             in.OutcomeAt,
		MonthYear:             strings.TrimSpace(in.MonthYear),
		OutcomeType:           strings.TrimSpace(in.OutcomeType),
		OutcomeSubtype:        strings.TrimSpace(in.OutcomeSubtype),
		LocationLat:           in.LocationLat,
		LocationLong:          in.LocationLong,
	}

	if err := validateRequired(a); err != nil {
		return Animal{}, err
	}

	if a.AnimalID == "" {
		a.AnimalID = uuid.NewString()
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByAnimalID(ctx context.Context, animalID string) (Animal, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return Animal{}, ErrInvalidInput
	}
	return s.repo.GetByAnimalID(ctx, animalID)
}

// Find devuelve los registros que cumplen el filtro. Filtro vacío = toda la
// colección (el adapter aplica su límite por default).
func (s *Service) Find(ctx context.Context, f Filter) ([]Animal, error) {
	return s.repo.Find(ctx, f)
}

func (s *Service) Count(ctx context.Context, f Filter) (int64, error) {
	return s.repo.Count(ctx, f)
}

// UpdateMatching aplica los cambios a todos los registros que cumplen el
// filtro y devuelve matched/modified. Exige criterios Y cambios no vacíos:
// un update sin filtro tocaría la colección entera.
func (s *Service) UpdateMatching(ctx context.Context, f Filter, ch Changes) (UpdateResult, error) {
	if !f.HasCriteria() {
		return UpdateResult{}, ErrInvalidInput
	}
	if ch.IsEmpty() {
		return UpdateResult{}, ErrInvalidInput
	}
	return s.repo.UpdateMatching(ctx, f, ch)
}

// UpdateByAnimalID es la variante de un solo registro sobre la misma
// semántica. Devuelve el registro ya actualizado.
func (s *Service) UpdateByAnimalID(ctx context.Context, animalID string, ch Changes) (Animal, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return Animal{}, ErrInvalidInput
	}
	if ch.IsEmpty() {
		return Animal{}, ErrInvalidInput
	}

	res, err := s.repo.UpdateMatching(ctx, Filter{AnimalID: animalID}, ch)
	if err != nil {
		return Animal{}, err
	}
	if res.Matched == 0 {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByAnimalID(ctx, animalID)
}

// DeleteMatching borra los registros que cumplen el filtro. Exige criterios
// no vacíos para que nunca se vacíe la colección por un filtro accidental.
func (s *Service) DeleteMatching(ctx context.Context, f Filter) (DeleteResult, error) {
	if !f.HasCriteria() {
		return DeleteResult{}, ErrInvalidInput
	}
	return s.repo.DeleteMatching(ctx, f)
}

func (s *Service) DeleteByAnimalID(ctx context.Context, animalID string) error {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return ErrInvalidInput
	}

	res, err := s.repo.DeleteMatching(ctx, Filter{AnimalID: animalID})
	if err != nil {
		return err
	}
	if res.Deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) BreedCounts(ctx context.Context, f Filter) ([]BreedCount, error) {
	return s.repo.BreedCounts(ctx, f)
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	return s.repo.Stats(ctx)
}

type ImportResult struct {
	Received int
	Inserted int
	Skipped  int // duplicados por animal_id
	Invalid  int // filas que no pasaron validación
}

// ValidateRecord aplica las reglas mínimas de un registro importable.
// Lo usa el importer en modo dry-run para contar inválidos sin escribir.
func ValidateRecord(a Animal) error {
	return validateRequired(a)
}

// ImportBatch valida e inserta un lote (carga del dataset). Las filas
// inválidas se cuentan y se saltan; los animal_id duplicados no cortan el
// lote, solo se reportan.
func (s *Service) ImportBatch(ctx context.Context, items []Animal) (ImportResult, error) {
	res := ImportResult{Received: len(items)}

	valid := make([]Animal, 0, len(items))
	for _, a := range items {
		a.AnimalID = strings.TrimSpace(a.AnimalID)
		if err := validateRequired(a); err != nil {
			res.Invalid++
			continue
		}
		if a.AnimalID == "" {
			a.AnimalID = uuid.NewString()
		}
		valid = append(valid, a)
	}

	if len(valid) == 0 {
		return res, nil
	}

	inserted, err := s.repo.CreateBatch(ctx, valid)
	res.Inserted = inserted
	res.Skipped = len(valid) - inserted
	if err != nil {
		return res, err
	}
	return res, nil
}

func validateRequired(a Animal) error {
	if a.AnimalType == "" {
		return ErrInvalidInput
	}
	if a.Breed == "" {
		return ErrInvalidInput
	}
	if a.AgeUponOutcomeInWeeks <= 0 {
		return ErrInvalidInput
	}
	return nil
}
