package audit

import "time"

type Action string

const (
	ActionCreated  Action = "created"
	ActionUpdated  Action = "updated"
	ActionDeleted  Action = "deleted"
	ActionImported Action = "imported"
)

// Entry es una anotación del historial de actividad: qué mutación se hizo
// sobre la colección y con qué resultado. No guarda el documento completo,
// solo lo necesario para reconstruir qué pasó y cuándo.
type Entry struct {
	ID     string
	At     time.Time
	Action Action

	// AnimalID identifica el registro afectado; vacío en acciones de lote.
	AnimalID string
	Detail   string

	// Contadores según la acción (matched/modified para update,
	// deleted para delete, modified = insertados para import).
	Matched  int64
	Modified int64
	Deleted  int64
}
