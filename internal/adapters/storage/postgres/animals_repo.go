package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"animal-shelter-dashboard/internal/domain/animals"
)

const animalColumns = `
	animal_id, name, animal_type, breed, color,
	sex_upon_outcome, age_upon_outcome, age_upon_outcome_in_weeks,
	date_of_birth, outcome_at, monthyear,
	outcome_type, outcome_subtype,
	location_lat, location_long
`

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		a.AnimalID,
		a.Name,
		a.AnimalType,
		a.Breed,
		a.Color,
		a.SexUponOutcome,
		a.AgeUponOutcome,
		a.AgeUponOutcomeInWeeks,
		toNullTime(a.DateOfBirth),
		toNullTime(a.OutcomeAt),
		a.MonthYear,
		a.OutcomeType,
		a.OutcomeSubtype,
		a.LocationLat,
		a.LocationLong,
	)
	if isUniqueViolation(err) {
		return animals.ErrDuplicateID
	}
	return err
}

func (r *AnimalsRepo) CreateBatch(ctx context.Context, items []animals.Animal) (int, error) {
	inserted := 0
	for _, a := range items {
		// ON CONFLICT DO NOTHING: un duplicado no corta el lote.
		res, err := r.db.ExecContext(ctx, `
			INSERT INTO animals (`+animalColumns+`)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
			ON CONFLICT (animal_id) DO NOTHING
		`,
			a.AnimalID,
			a.Name,
			a.AnimalType,
			a.Breed,
			a.Color,
			a.SexUponOutcome,
			a.AgeUponOutcome,
			a.AgeUponOutcomeInWeeks,
			toNullTime(a.DateOfBirth),
			toNullTime(a.OutcomeAt),
			a.MonthYear,
			a.OutcomeType,
			a.OutcomeSubtype,
			a.LocationLat,
			a.LocationLong,
		)
		if err != nil {
			return inserted, err
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}
	return inserted, nil
}

func (r *AnimalsRepo) GetByAnimalID(ctx context.Context, animalID string) (animals.Animal, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE animal_id = $1
	`, animalID)

	a, err := scanAnimal(row)
	if err == sql.ErrNoRows {
		return animals.Animal{}, animals.ErrNotFound
	}
	if err != nil {
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) Find(ctx context.Context, f animals.Filter) ([]animals.Animal, error) {
	where, args, argN := buildWhere(f)

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

	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + animalColumns + ` FROM animals`)
	sb.WriteString(where)
	sb.WriteString(" ORDER BY animal_id ASC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argN, argN+1))
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) Count(ctx context.Context, f animals.Filter) (int64, error) {
	where, args, _ := buildWhere(f)

	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM animals`+where, args...).Scan(&n)
	return n, err
}

func (r *AnimalsRepo) UpdateMatching(ctx context.Context, f animals.Filter, ch animals.Changes) (animals.UpdateResult, error) {
	sets := make([]string, 0)
	args := make([]any, 0)
	argN := 1

	addSet := func(col string, v any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, argN))
		args = append(args, v)
		argN++
	}

	if ch.Name != nil {
		addSet("name", *ch.Name)
	}
	if ch.AnimalType != nil {
		addSet("animal_type", *ch.AnimalType)
	}
	if ch.Breed != nil {
		addSet("breed", *ch.Breed)
	}
	if ch.Color != nil {
		addSet("color", *ch.Color)
	}
	if ch.SexUponOutcome != nil {
		addSet("sex_upon_outcome", *ch.SexUponOutcome)
	}
	if ch.AgeUponOutcome != nil {
		addSet("age_upon_outcome", *ch.AgeUponOutcome)
	}
	if ch.AgeUponOutcomeInWeeks != nil {
		addSet("age_upon_outcome_in_weeks", *ch.AgeUponOutcomeInWeeks)
	}
	if ch.OutcomeAt != nil {
		addSet("outcome_at", *ch.OutcomeAt)
	}
	if ch.OutcomeType != nil {
		addSet("outcome_type", *ch.OutcomeType)
	}
	if ch.OutcomeSubtype != nil {
		addSet("outcome_subtype", *ch.OutcomeSubtype)
	}
	if ch.LocationLat != nil {
		addSet("location_lat", *ch.LocationLat)
	}
	if ch.LocationLong != nil {
		addSet("location_long", *ch.LocationLong)
	}

	if len(sets) == 0 {
		return animals.UpdateResult{}, nil
	}

	where, whereArgs, _ := buildWhereFrom(f, argN)
	args = append(args, whereArgs...)

	res, err := r.db.ExecContext(ctx,
		"UPDATE animals SET "+strings.Join(sets, ", ")+where,
		args...,
	)
	if err != nil {
		return animals.UpdateResult{}, err
	}

	// Postgres reporta como afectadas todas las filas que matchean el WHERE,
	// cambie o no el valor; matched y modified quedan iguales acá.
	n, _ := res.RowsAffected()
	return animals.UpdateResult{Matched: n, Modified: n}, nil
}

func (r *AnimalsRepo) DeleteMatching(ctx context.Context, f animals.Filter) (animals.DeleteResult, error) {
	where, args, _ := buildWhere(f)

	res, err := r.db.ExecContext(ctx, `DELETE FROM animals`+where, args...)
	if err != nil {
		return animals.DeleteResult{}, err
	}
	n, _ := res.RowsAffected()
	return animals.DeleteResult{Deleted: n}, nil
}

func (r *AnimalsRepo) BreedCounts(ctx context.Context, f animals.Filter) ([]animals.BreedCount, error) {
	where, args, _ := buildWhere(f)

	rows, err := r.db.QueryContext(ctx, `
		SELECT breed, COUNT(*) AS n
		FROM animals`+where+`
		GROUP BY breed
		ORDER BY n DESC, breed ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.BreedCount, 0)
	for rows.Next() {
		var bc animals.BreedCount
		if err := rows.Scan(&bc.Breed, &bc.Count); err != nil {
			return nil, err
		}
		out = append(out, bc)
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) Stats(ctx context.Context) (animals.Stats, error) {
	var st animals.Stats
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(AVG(age_upon_outcome_in_weeks), 0),
			COUNT(DISTINCT breed)
		FROM animals
	`).Scan(&st.TotalAnimals, &st.AvgAgeWeeks, &st.UniqueBreeds)
	return st, err
}

// buildWhere arma la cláusula WHERE dinámica con placeholders $n.
// Devuelve el siguiente número de placeholder libre para LIMIT/OFFSET.
func buildWhere(f animals.Filter) (string, []any, int) {
	return buildWhereFrom(f, 1)
}

func buildWhereFrom(f animals.Filter, startN int) (string, []any, int) {
	conds := make([]string, 0)
	args := make([]any, 0)
	argN := startN

	if f.AnimalID != "" {
		conds = append(conds, fmt.Sprintf("animal_id = $%d", argN))
		args = append(args, f.AnimalID)
		argN++
	}
	if len(f.AnimalTypes) > 0 {
		placeholders := make([]string, 0, len(f.AnimalTypes))
		for _, t := range f.AnimalTypes {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, t)
			argN++
		}
		conds = append(conds, "animal_type IN ("+strings.Join(placeholders, ",")+")")
	}
	if len(f.Breeds) > 0 {
		placeholders := make([]string, 0, len(f.Breeds))
		for _, b := range f.Breeds {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, b)
			argN++
		}
		conds = append(conds, "breed IN ("+strings.Join(placeholders, ",")+")")
	}
	if f.SexUponOutcome != "" {
		conds = append(conds, fmt.Sprintf("sex_upon_outcome = $%d", argN))
		args = append(args, f.SexUponOutcome)
		argN++
	}
	if f.OutcomeType != "" {
		conds = append(conds, fmt.Sprintf("outcome_type = $%d", argN))
		args = append(args, f.OutcomeType)
		argN++
	}
	if f.MinAgeWeeks != nil {
		conds = append(conds, fmt.Sprintf("age_upon_outcome_in_weeks >= $%d", argN))
		args = append(args, *f.MinAgeWeeks)
		argN++
	}
	if f.MaxAgeWeeks != nil {
		conds = append(conds, fmt.Sprintf("age_upon_outcome_in_weeks <= $%d", argN))
		args = append(args, *f.MaxAgeWeeks)
		argN++
	}

	if len(conds) == 0 {
		return "", args, argN
	}
	return " WHERE " + strings.Join(conds, " AND "), args, argN
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row rowScanner) (animals.Animal, error) {
	var a animals.Animal
	var dob, outcomeAt sql.NullTime

	if err := row.Scan(
		&a.AnimalID,
		&a.Name,
		&a.AnimalType,
		&a.Breed,
		&a.Color,
		&a.SexUponOutcome,
		&a.AgeUponOutcome,
		&a.AgeUponOutcomeInWeeks,
		&dob,
		&outcomeAt,
		&a.MonthYear,
		&a.OutcomeType,
		&a.OutcomeSubtype,
		&a.LocationLat,
		&a.LocationLong,
	); err != nil {
		return animals.Animal{}, err
	}

	if dob.Valid {
		t := dob.Time
		a.DateOfBirth = &t
	}
	if outcomeAt.Valid {
		t := outcomeAt.Time
		a.OutcomeAt = &t
	}
	return a, nil
}

// date_of_birth es DATE, lo pasamos como NullTime para simplificar
func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
