package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"animal-shelter-dashboard/internal/domain/animals"
)

type animalsRepo struct {
	mu   sync.RWMutex
	byID map[string]animals.Animal
}

func NewAnimalsRepo() animals.Repository {
	return &animalsRepo{
		byID: make(map[string]animals.Animal),
	}
}

func (r *animalsRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.AnimalID) == "" {
		return animals.ErrInvalidInput
	}
	if _, exists := r.byID[a.AnimalID]; exists {
		return animals.ErrDuplicateID
	}
	r.byID[a.AnimalID] = a
	return nil
}

func (r *animalsRepo) CreateBatch(ctx context.Context, items []animals.Animal) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inserted := 0
	for _, a := range items {
		if strings.TrimSpace(a.AnimalID) == "" {
			continue
		}
		if _, exists := r.byID[a.AnimalID]; exists {
			continue // duplicado: se salta, no corta el lote
		}
		r.byID[a.AnimalID] = a
		inserted++
	}
	return inserted, nil
}

func (r *animalsRepo) GetByAnimalID(ctx context.Context, animalID string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[animalID]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *animalsRepo) Find(ctx context.Context, f animals.Filter) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, a := range r.byID {
		if matchesFilter(a, f) {
			out = append(out, a)
		}
	}

	// Orden estable por animal_id asc (consistencia entre adapters).
	sort.Slice(out, func(i, j int) bool {
		return out[i].AnimalID < out[j].AnimalID
	})

	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(out) {
		return []animals.Animal{}, nil
	}
	out = out[offset:]

	limit := clampLimit(f.Limit)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *animalsRepo) Count(ctx context.Context, f animals.Filter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, a := range r.byID {
		if matchesFilter(a, f) {
			n++
		}
	}
	return n, nil
}

func (r *animalsRepo) UpdateMatching(ctx context.Context, f animals.Filter, ch animals.Changes) (animals.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res animals.UpdateResult
	for id, a := range r.byID {
		if !matchesFilter(a, f) {
			continue
		}
		res.Matched++

		updated, changed := applyChanges(a, ch)
		if changed {
			r.byID[id] = updated
			res.Modified++
		}
	}
	return res, nil
}

func (r *animalsRepo) DeleteMatching(ctx context.Context, f animals.Filter) (animals.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res animals.DeleteResult
	for id, a := range r.byID {
		if matchesFilter(a, f) {
			delete(r.byID, id)
			res.Deleted++
		}
	}
	return res, nil
}

func (r *animalsRepo) BreedCounts(ctx context.Context, f animals.Filter) ([]animals.BreedCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int64)
	for _, a := range r.byID {
		if matchesFilter(a, f) {
			counts[a.Breed]++
		}
	}

	out := make([]animals.BreedCount, 0, len(counts))
	for breed, n := range counts {
		out = append(out, animals.BreedCount{Breed: breed, Count: n})
	}

	// Mayor conteo primero; empate por nombre para salida determinística.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Breed < out[j].Breed
	})
	return out, nil
}

func (r *animalsRepo) Stats(ctx context.Context) (animals.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var st animals.Stats
	var sum float64
	breeds := make(map[string]struct{})

	for _, a := range r.byID {
		st.TotalAnimals++
		sum += a.AgeUponOutcomeInWeeks
		breeds[a.Breed] = struct{}{}
	}

	if st.TotalAnimals > 0 {
		st.AvgAgeWeeks = sum / float64(st.TotalAnimals)
	}
	st.UniqueBreeds = len(breeds)
	return st, nil
}

func matchesFilter(a animals.Animal, f animals.Filter) bool {
	if f.AnimalID != "" && a.AnimalID != f.AnimalID {
		return false
	}
	if len(f.AnimalTypes) > 0 && !inList(f.AnimalTypes, a.AnimalType) {
		return false
	}
	if len(f.Breeds) > 0 && !inList(f.Breeds, a.Breed) {
		return false
	}
	if f.SexUponOutcome != "" && a.SexUponOutcome != f.SexUponOutcome {
		return false
	}
	if f.OutcomeType != "" && a.OutcomeType != f.OutcomeType {
		return false
	}
	// Rango de edad inclusivo en ambos extremos ($gte/$lte).
	if f.MinAgeWeeks != nil && a.AgeUponOutcomeInWeeks < *f.MinAgeWeeks {
		return false
	}
	if f.MaxAgeWeeks != nil && a.AgeUponOutcomeInWeeks > *f.MaxAgeWeeks {
		return false
	}
	return true
}

func inList(vals []string, v string) bool {
	for _, s := range vals {
		if s == v {
			return true
		}
	}
	return false
}

// applyChanges devuelve la copia actualizada y si hubo cambio real
// (modified cuenta solo documentos que cambiaron, como en mongo).
func applyChanges(a animals.Animal, ch animals.Changes) (animals.Animal, bool) {
	changed := false

	setStr := func(dst *string, v *string) {
		if v != nil && *dst != *v {
			*dst = *v
			changed = true
		}
	}
	setFloat := func(dst *float64, v *float64) {
		if v != nil && *dst != *v {
			*dst = *v
			changed = true
		}
	}

	setStr(&a.Name, ch.Name)
	setStr(&a.AnimalType, ch.AnimalType)
	setStr(&a.Breed, ch.Breed)
	setStr(&a.Color, ch.Color)
	setStr(&a.SexUponOutcome, ch.SexUponOutcome)
	setStr(&a.AgeUponOutcome, ch.AgeUponOutcome)
	setFloat(&a.AgeUponOutcomeInWeeks, ch.AgeUponOutcomeInWeeks)
	setStr(&a.OutcomeType, ch.OutcomeType)
	setStr(&a.OutcomeSubtype, ch.OutcomeSubtype)
	setFloat(&a.LocationLat, ch.LocationLat)
	setFloat(&a.LocationLong, ch.LocationLong)

	if ch.OutcomeAt != nil {
		if a.OutcomeAt == nil || !a.OutcomeAt.Equal(*ch.OutcomeAt) {
			t := *ch.OutcomeAt
			a.OutcomeAt = &t
			changed = true
		}
	}

	return a, changed
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	if limit > 200 {
		return 200
	}
	return limit
}
