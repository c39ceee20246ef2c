package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"animal-shelter-dashboard/internal/domain/animals"
)

const animalsCollection = "animals"

type AnimalsRepo struct {
	coll *mongo.Collection
}

func NewAnimalsRepo(db *mongo.Database) *AnimalsRepo {
	return &AnimalsRepo{coll: db.Collection(animalsCollection)}
}

// EnsureIndexes crea el índice único sobre animal_id. Idempotente,
// se llama una vez al abrir el store.
func (r *AnimalsRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "animal_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// animalDoc usa los nombres de campo del dataset original (datetime,
// monthyear) para que una colección ya importada siga siendo legible.
type animalDoc struct {
	AnimalID              string     `bson:"animal_id"`
	Name                  string     `bson:"name,omitempty"`
	AnimalType            string     `bson:"animal_type"`
	Breed                 string     `bson:"breed"`
	Color                 string     `bson:"color,omitempty"`
	SexUponOutcome        string     `bson:"sex_upon_outcome,omitempty"`
	AgeUponOutcome        string     `bson:"age_upon_outcome,omitempty"`
	AgeUponOutcomeInWeeks float64    `bson:"age_upon_outcome_in_weeks"`
	DateOfBirth           *time.Time `bson:"date_of_birth,omitempty"`
	OutcomeAt             *time.Time `bson:"datetime,omitempty"`
	MonthYear             string     `bson:"monthyear,omitempty"`
	OutcomeType           string     `bson:"outcome_type,omitempty"`
	OutcomeSubtype        string     `bson:"outcome_subtype,omitempty"`
	LocationLat           float64    `bson:"location_lat,omitempty"`
	LocationLong          float64    `bson:"location_long,omitempty"`
}

func toDoc(a animals.Animal) animalDoc {
	return animalDoc{
		AnimalID:              a.AnimalID,
		Name:                  a.Name,
		AnimalType:            a.AnimalType,
		Breed:                 a.Breed,
		Color:                 a.Color,
		SexUponOutcome:        a.SexUponOutcome,
		AgeUponOutcome:        a.AgeUponOutcome,
		AgeUponOutcomeInWeeks: a.AgeUponOutcomeInWeeks,
		DateOfBirth:           a.DateOfBirth,
		OutcomeAt:             a.OutcomeAt,
		MonthYear:             a.MonthYear,
		OutcomeType:           a.OutcomeType,
		OutcomeSubtype:        a.OutcomeSubtype,
		LocationLat:           a.LocationLat,
		LocationLong:          a.LocationLong,
	}
}

func toDomain(d animalDoc) animals.Animal {
	return animals.Animal{
		AnimalID:              d.AnimalID,
		Name:                  d.Name,
		AnimalType:            d.AnimalType,
		Breed:                 d.Breed,
		Color:                 d.Color,
		SexUponOutcome:        d.SexUponOutcome,
		AgeUponOutcome:        d.AgeUponOutcome,
		AgeUponOutcomeInWeeks: d.AgeUponOutcomeInWeeks,
		DateOfBirth:           d.DateOfBirth,
		OutcomeAt:             d.OutcomeAt,
		MonthYear:             d.MonthYear,
		OutcomeType:           d.OutcomeType,
		OutcomeSubtype:        d.OutcomeSubtype,
		LocationLat:           d.LocationLat,
		LocationLong:          d.LocationLong,
	}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.coll.InsertOne(ctx, toDoc(a))
	if mongo.IsDuplicateKeyError(err) {
		return animals.ErrDuplicateID
	}
	return err
}

func (r *AnimalsRepo) CreateBatch(ctx context.Context, items []animals.Animal) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	docs := make([]any, 0, len(items))
	for _, a := range items {
		docs = append(docs, toDoc(a))
	}

	// Ordered=false: un duplicado no corta el lote, el resto se inserta.
	res, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))

	inserted := 0
	if res != nil {
		inserted = len(res.InsertedIDs)
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return inserted, nil
		}
		return inserted, err
	}
	return inserted, nil
}

func (r *AnimalsRepo) GetByAnimalID(ctx context.Context, animalID string) (animals.Animal, error) {
	// La proyección excluye _id, el id de negocio es animal_id.
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})

	var d animalDoc
	err := r.coll.FindOne(ctx, bson.M{"animal_id": animalID}, opts).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return animals.Animal{}, animals.ErrNotFound
	}
	if err != nil {
		return animals.Animal{}, err
	}
	return toDomain(d), nil
}

func (r *AnimalsRepo) Find(ctx context.Context, f animals.Filter) ([]animals.Animal, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSort(bson.D{{Key: "animal_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, toMongoFilter(f), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []animalDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]animals.Animal, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDomain(d))
	}
	return out, nil
}

func (r *AnimalsRepo) Count(ctx context.Context, f animals.Filter) (int64, error) {
	return r.coll.CountDocuments(ctx, toMongoFilter(f))
}

func (r *AnimalsRepo) UpdateMatching(ctx context.Context, f animals.Filter, ch animals.Changes) (animals.UpdateResult, error) {
	res, err := r.coll.UpdateMany(ctx, toMongoFilter(f), bson.M{"$set": toSetDoc(ch)})
	if err != nil {
		return animals.UpdateResult{}, err
	}
	return animals.UpdateResult{
		Matched:  res.MatchedCount,
		Modified: res.ModifiedCount,
	}, nil
}

func (r *AnimalsRepo) DeleteMatching(ctx context.Context, f animals.Filter) (animals.DeleteResult, error) {
	res, err := r.coll.DeleteMany(ctx, toMongoFilter(f))
	if err != nil {
		return animals.DeleteResult{}, err
	}
	return animals.DeleteResult{Deleted: res.DeletedCount}, nil
}

func (r *AnimalsRepo) BreedCounts(ctx context.Context, f animals.Filter) ([]animals.BreedCount, error) {
	pipeline := []bson.M{
		{"$match": toMongoFilter(f)},
		{"$group": bson.M{
			"_id":   "$breed",
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.D{
			{Key: "count", Value: -1},
			{Key: "_id", Value: 1},
		}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Breed string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	out := make([]animals.BreedCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, animals.BreedCount{Breed: row.Breed, Count: row.Count})
	}
	return out, nil
}

func (r *AnimalsRepo) Stats(ctx context.Context) (animals.Stats, error) {
	var st animals.Stats

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return animals.Stats{}, err
	}
	st.TotalAnimals = total

	if total > 0 {
		pipeline := []bson.M{
			{"$group": bson.M{
				"_id": nil,
				"avg": bson.M{"$avg": "$age_upon_outcome_in_weeks"},
			}},
		}
		cur, err := r.coll.Aggregate(ctx, pipeline)
		if err != nil {
			return animals.Stats{}, err
		}
		defer cur.Close(ctx)

		var rows []struct {
			Avg float64 `bson:"avg"`
		}
		if err := cur.All(ctx, &rows); err != nil {
			return animals.Stats{}, err
		}
		if len(rows) > 0 {
			st.AvgAgeWeeks = rows[0].Avg
		}
	}

	breeds, err := r.coll.Distinct(ctx, "breed", bson.M{})
	if err != nil {
		return animals.Stats{}, err
	}
	st.UniqueBreeds = len(breeds)

	return st, nil
}

func toMongoFilter(f animals.Filter) bson.M {
	m := bson.M{}

	if f.AnimalID != "" {
		m["animal_id"] = f.AnimalID
	}
	if len(f.AnimalTypes) == 1 {
		m["animal_type"] = f.AnimalTypes[0]
	} else if len(f.AnimalTypes) > 1 {
		m["animal_type"] = bson.M{"$in": f.AnimalTypes}
	}
	if len(f.Breeds) > 0 {
		m["breed"] = bson.M{"$in": f.Breeds}
	}
	if f.SexUponOutcome != "" {
		m["sex_upon_outcome"] = f.SexUponOutcome
	}
	if f.OutcomeType != "" {
		m["outcome_type"] = f.OutcomeType
	}

	if f.MinAgeWeeks != nil || f.MaxAgeWeeks != nil {
		age := bson.M{}
		if f.MinAgeWeeks != nil {
			age["$gte"] = *f.MinAgeWeeks
		}
		if f.MaxAgeWeeks != nil {
			age["$lte"] = *f.MaxAgeWeeks
		}
		m["age_upon_outcome_in_weeks"] = age
	}

	return m
}

func toSetDoc(ch animals.Changes) bson.M {
	set := bson.M{}

	if ch.Name != nil {
		set["name"] = *ch.Name
	}
	if ch.AnimalType != nil {
		set["animal_type"] = *ch.AnimalType
	}
	if ch.Breed != nil {
		set["breed"] = *ch.Breed
	}
	if ch.Color != nil {
		set["color"] = *ch.Color
	}
	if ch.SexUponOutcome != nil {
		set["sex_upon_outcome"] = *ch.SexUponOutcome
	}
	if ch.AgeUponOutcome != nil {
		set["age_upon_outcome"] = *ch.AgeUponOutcome
	}
	if ch.AgeUponOutcomeInWeeks != nil {
		set["age_upon_outcome_in_weeks"] = *ch.AgeUponOutcomeInWeeks
	}
	if ch.OutcomeAt != nil {
		set["datetime"] = *ch.OutcomeAt
	}
	if ch.OutcomeType != nil {
		set["outcome_type"] = *ch.OutcomeType
	}
	if ch.OutcomeSubtype != nil {
		set["outcome_subtype"] = *ch.OutcomeSubtype
	}
	if ch.LocationLat != nil {
		set["location_lat"] = *ch.LocationLat
	}
	if ch.LocationLong != nil {
		set["location_long"] = *ch.LocationLong
	}

	return set
}
