package postgres

import (
	"context"
	"database/sql"

	"animal-shelter-dashboard/internal/domain/audit"
)

type AuditRepo struct {
	db *sql.DB
}

func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{db: db}
}

func (r *AuditRepo) Record(ctx context.Context, e audit.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO audit_log (
			entry_id, at, action,
			animal_id, detail,
			matched, modified, deleted
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		e.ID,
		e.At,
		string(e.Action),
		e.AnimalID,
		e.Detail,
		e.Matched,
		e.Modified,
		e.Deleted,
	)
	return err
}

func (r *AuditRepo) List(ctx context.Context, limit int) ([]audit.Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			entry_id, at, action,
			animal_id, detail,
			matched, modified, deleted
		FROM audit_log
		ORDER BY at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]audit.Entry, 0)
	for rows.Next() {
		var e audit.Entry
		var action string
		if err := rows.Scan(
			&e.ID,
			&e.At,
			&action,
			&e.AnimalID,
			&e.Detail,
			&e.Matched,
			&e.Modified,
			&e.Deleted,
		); err != nil {
			return nil, err
		}
		e.Action = audit.Action(action)
		out = append(out, e)
	}
	return out, rows.Err()
}
