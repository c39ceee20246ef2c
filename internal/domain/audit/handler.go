package audit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/audit", listAuditHandler(svc))
}

type entryResponse struct {
	ID       string    `json:"id"`
	At       time.Time `json:"at"`
	Action   Action    `json:"action"`
	AnimalID string    `json:"animal_id,omitempty"`
	Detail   string    `json:"detail,omitempty"`
	Matched  int64     `json:"matched,omitempty"`
	Modified int64     `json:"modified,omitempty"`
	Deleted  int64     `json:"deleted,omitempty"`
}

// listAuditHandler godoc
// @Summary Historial de actividad
// @Description Últimas mutaciones sobre la colección (create/update/delete/import), más recientes primero.
// @Tags audit
// @Produce json
// @Param limit query int false "Máximo de entradas (1-200). Por defecto 50"
// @Success 200 {array} entryResponse
// @Failure 500 {string} string "internal error"
// @Router /audit [get]
func listAuditHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		items, err := svc.List(r.Context(), limit)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]entryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, entryResponse{
				ID:       e.ID,
				At:       e.At,
				Action:   e.Action,
				AnimalID: e.AnimalID,
				Detail:   e.Detail,
				Matched:  e.Matched,
				Modified: e.Modified,
				Deleted:  e.Deleted,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (animals/audit) para evitar crear paquetes/helpers compartidos demasiado
// pronto. Si se repite en más módulos, recién conviene extraerlo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
