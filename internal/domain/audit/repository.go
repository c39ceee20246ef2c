package audit

import "context"

type Repository interface {
	Record(ctx context.Context, e Entry) error
	// List devuelve las entradas más recientes primero.
	List(ctx context.Context, limit int) ([]Entry, error)
}
