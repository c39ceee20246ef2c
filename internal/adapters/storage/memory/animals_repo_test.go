package memory

import (
	"context"
	"testing"
	"time"

	"animal-shelter-dashboard/internal/domain/animals"
)

func TestAnimalsRepo_CreateAndGet(t *testing.T) {
	repo := NewAnimalsRepo()
	ctx := context.Background()

	a := animals.Animal{
		AnimalID:              "A1",
		AnimalType:            "Dog",
		Breed:                 "Labrador Retriever Mix",
		AgeUponOutcomeInWeeks: 52,
	}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := repo.GetByAnimalID(ctx, "A1")
	if err != nil {
		t.Fatalf("GetByAnimalID returned error: %v", err)
	}
	if got.Breed != "Labrador Retriever Mix" {
		t.Fatalf("expected stored breed, got %q", got.Breed)
	}

	if err := repo.Create(ctx, a); err != animals.ErrDuplicateID {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if _, err := repo.GetByAnimalID(ctx, "A999"); err != animals.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Create(ctx, animals.Animal{AnimalID: "  "}); err != animals.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for blank id, got %v", err)
	}
}

func TestAnimalsRepo_CreateBatch_SkipsDuplicates(t *testing.T) {
	repo := NewAnimalsRepo()
	ctx := context.Background()

	_ = repo.Create(ctx, animals.Animal{AnimalID: "A1", Breed: "Beagle Mix"})

	inserted, err := repo.CreateBatch(ctx, []animals.Animal{
		{AnimalID: "A1", Breed: "Beagle Mix"}, // ya existe
		{AnimalID: "A2", Breed: "Newfoundland"},
		{AnimalID: "", Breed: "sin id"},
		{AnimalID: "A3", Breed: "Bloodhound"},
	})
	if err != nil {
		t.Fatalf("CreateBatch returned error: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("expected inserted=2, got %d", inserted)
	}

	n, err := repo.Count(ctx, animals.Filter{})
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 records total, got %d", n)
	}
}

func TestAnimalsRepo_Find_RescueCriteria(t *testing.T) {
	repo := NewAnimalsRepo()
	ctx := context.Background()

	seed := []animals.Animal{
		{AnimalID: "A1", AnimalType: "Dog", Breed: "Labrador Retriever Mix", SexUponOutcome: "Intact Female", AgeUponOutcomeInWeeks: 52},
		{AnimalID: "A2", AnimalType: "Dog", Breed: "Labrador Retriever Mix", SexUponOutcome: "Intact Male", AgeUponOutcomeInWeeks: 52},    // sexo no cumple
		{AnimalID: "A3", AnimalType: "Dog", Breed: "Newfoundland", SexUponOutcome: "Intact Female", AgeUponOutcomeInWeeks: 20},            // muy joven
		{AnimalID: "A4", AnimalType: "Dog", Breed: "Newfoundland", SexUponOutcome: "Intact Female", AgeUponOutcomeInWeeks: 156},           // borde superior, inclusive
		{AnimalID: "A5", AnimalType: "Dog", Breed: "German Shepherd", SexUponOutcome: "Intact Female", AgeUponOutcomeInWeeks: 52},         // raza no cumple
		{AnimalID: "A6", AnimalType: "Cat", Breed: "Labrador Retriever Mix", SexUponOutcome: "Intact Female", AgeUponOutcomeInWeeks: 52},  // tipo no cumple
		{AnimalID: "A7", AnimalType: "Dog", Breed: "Chesapeake Bay Retriever", SexUponOutcome: "Intact Female", AgeUponOutcomeInWeeks: 26}, // borde inferior, inclusive
	}
	if _, err := repo.CreateBatch(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	minAge, maxAge := 26.0, 156.0
	f := animals.Filter{
		AnimalTypes:    []string{"Dog"},
		Breeds:         []string{"Labrador Retriever Mix", "Chesapeake Bay Retriever", "Newfoundland"},
		SexUponOutcome: "Intact Female",
		MinAgeWeeks:    &minAge,
		MaxAgeWeeks:    &maxAge,
	}

	got, err := repo.Find(ctx, f)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}

	wantIDs := []string{"A1", "A4", "A7"}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d matches, got %d (%v)", len(wantIDs), len(got), ids(got))
	}
	for i, id := range wantIDs {
		if got[i].AnimalID != id {
			t.Fatalf("match %d: expected %s, got %s (orden por animal_id)", i, id, got[i].AnimalID)
		}
	}

	n, err := repo.Count(ctx, f)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected count=3, got %d", n)
	}
}

func TestAnimalsRepo_Find_Pagination(t *testing.T) {
	repo := NewAnimalsRepo()
	ctx := context.Background()

	for _, id := range []string{"A1", "A2", "A3", "A4", "A5"} {
		_ = repo.Create(ctx, animals.Animal{AnimalID: id, Breed: "Beagle Mix"})
	}

	got, err := repo.Find(ctx, animals.Filter{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if len(got) != 2 || got[0].AnimalID != "A2" || got[1].AnimalID != "A3" {
		t.Fatalf("expected page [A2 A3], got %v", ids(got))
	}

	// offset más allá del final devuelve vacío, no error
	got, err = repo.Find(ctx, animals.Filter{Offset: 50})
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty page, got %v", ids(got))
	}
}

func TestAnimalsRepo_UpdateMatching_CountsOnlyRealChanges(t *testing.T) {
	repo := NewAnimalsRepo()
	ctx := context.Background()

	_ = repo.Create(ctx, animals.Animal{AnimalID: "A1", Breed: "Beagle Mix", OutcomeType: "Adoption"})
	_ = repo.Create(ctx, animals.Animal{AnimalID: "A2", Breed: "Beagle Mix", OutcomeType: "Transfer"})

	outcome := "Adoption"
	res, err := repo.UpdateMatching(ctx, animals.Filter{Breeds: []string{"Beagle Mix"}}, animals.Changes{OutcomeType: &outcome})
	if err != nil {
		t.Fatalf("UpdateMatching returned error: %v", err)
	}

	// A1 ya estaba en Adoption: matched sí, modified no
	if res.Matched != 2 {
		t.Fatalf("expected matched=2, got %d", res.Matched)
	}
	if res.Modified != 1 {
		t.Fatalf("expected modified=1, got %d", res.Modified)
	}
}

func TestAnimalsRepo_UpdateMatching_SetsOutcomeAt(t *testing.T) {
	repo := NewAnimalsRepo()
	ctx := context.Background()

	_ = repo.Create(ctx, animals.Animal{AnimalID: "A1", Breed: "Beagle Mix"})

	at := time.Date(2026, 1, 15, 18, 30, 0, 0, time.UTC)
	res, err := repo.UpdateMatching(ctx, animals.Filter{AnimalID: "A1"}, animals.Changes{OutcomeAt: &at})
	if err != nil {
		t.Fatalf("UpdateMatching returned error: %v", err)
	}
	if res.Modified != 1 {
		t.Fatalf("expected modified=1, got %d", res.Modified)
	}

	got, _ := repo.GetByAnimalID(ctx, "A1")
	if got.OutcomeAt == nil || !got.OutcomeAt.Equal(at) {
		t.Fatalf("expected outcome_at set to %v, got %v", at, got.OutcomeAt)
	}

	// mismo valor otra vez: matched sin modified
	res, err = repo.UpdateMatching(ctx, animals.Filter{AnimalID: "A1"}, animals.Changes{OutcomeAt: &at})
	if err != nil {
		t.Fatalf("UpdateMatching returned error: %v", err)
	}
	if res.Matched != 1 || res.Modified != 0 {
		t.Fatalf("expected matched=1 modified=0, got %+v", res)
	}
}

func TestAnimalsRepo_DeleteMatching(t *testing.T) {
	repo := NewAnimalsRepo()
	ctx := context.Background()

	_ = repo.Create(ctx, animals.Animal{AnimalID: "A1", Breed: "Beagle Mix"})
	_ = repo.Create(ctx, animals.Animal{AnimalID: "A2", Breed: "Beagle Mix"})
	_ = repo.Create(ctx, animals.Animal{AnimalID: "A3", Breed: "Newfoundland"})

	res, err := repo.DeleteMatching(ctx, animals.Filter{Breeds: []string{"Beagle Mix"}})
	if err != nil {
		t.Fatalf("DeleteMatching returned error: %v", err)
	}
	if res.Deleted != 2 {
		t.Fatalf("expected deleted=2, got %d", res.Deleted)
	}
	if _, err := repo.GetByAnimalID(ctx, "A3"); err != nil {
		t.Fatalf("expected A3 to survive, got %v", err)
	}
}

func TestAnimalsRepo_BreedCounts_OrderedByCountThenName(t *testing.T) {
	repo := NewAnimalsRepo()
	ctx := context.Background()

	seed := []animals.Animal{
		{AnimalID: "A1", Breed: "Labrador Retriever Mix"},
		{AnimalID: "A2", Breed: "Labrador Retriever Mix"},
		{AnimalID: "A3", Breed: "Beagle Mix"},
		{AnimalID: "A4", Breed: "Newfoundland"},
		{AnimalID: "A5", Breed: "Beagle Mix"},
	}
	if _, err := repo.CreateBatch(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := repo.BreedCounts(ctx, animals.Filter{})
	if err != nil {
		t.Fatalf("BreedCounts returned error: %v", err)
	}

	want := []animals.BreedCount{
		{Breed: "Beagle Mix", Count: 2}, // empate con Labrador: desempata el nombre
		{Breed: "Labrador Retriever Mix", Count: 2},
		{Breed: "Newfoundland", Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d breeds, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("breed %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestAnimalsRepo_Stats(t *testing.T) {
	repo := NewAnimalsRepo()
	ctx := context.Background()

	st, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if st.TotalAnimals != 0 || st.AvgAgeWeeks != 0 || st.UniqueBreeds != 0 {
		t.Fatalf("expected zero stats for empty repo, got %+v", st)
	}

	_ = repo.Create(ctx, animals.Animal{AnimalID: "A1", Breed: "Beagle Mix", AgeUponOutcomeInWeeks: 40})
	_ = repo.Create(ctx, animals.Animal{AnimalID: "A2", Breed: "Beagle Mix", AgeUponOutcomeInWeeks: 60})
	_ = repo.Create(ctx, animals.Animal{AnimalID: "A3", Breed: "Newfoundland", AgeUponOutcomeInWeeks: 80})

	st, err = repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if st.TotalAnimals != 3 {
		t.Fatalf("expected total=3, got %d", st.TotalAnimals)
	}
	if st.AvgAgeWeeks != 60 {
		t.Fatalf("expected avg=60, got %v", st.AvgAgeWeeks)
	}
	if st.UniqueBreeds != 2 {
		t.Fatalf("expected 2 unique breeds, got %d", st.UniqueBreeds)
	}
}

func ids(list []animals.Animal) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.AnimalID)
	}
	return out
}
