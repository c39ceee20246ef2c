package outcomes

import (
	"context"

	"animal-shelter-dashboard/internal/domain/animals"
)

// Source entrega páginas del feed público de outcomes del refugio.
// El importer lo consume página por página hasta agotar el feed.
type Source interface {
	FetchPage(ctx context.Context, limit, offset int) ([]animals.Animal, error)
}
