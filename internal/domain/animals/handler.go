package animals

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"animal-shelter-dashboard/internal/domain/audit"
	"animal-shelter-dashboard/internal/domain/rescue"
)

func RegisterRoutes(r chi.Router, svc *Service, auditSvc *audit.Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc, auditSvc))
		ar.Get("/", listAnimalsHandler(svc))

		// Agregados para el dashboard (pie chart y tarjetas de resumen)
		ar.Get("/breeds", breedCountsHandler(svc))
		ar.Get("/stats", statsHandler(svc))
		ar.Get("/rescue-types", rescueTypesHandler())

		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Patch("/{animalID}", updateAnimalHandler(svc, auditSvc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc, auditSvc))
	})
}

// createAnimalRequest es el cuerpo para registrar un outcome nuevo.
// animal_id es opcional; si falta se genera un UUID.
type createAnimalRequest struct {
	AnimalID              string  `json:"animal_id"`
	Name                  string  `json:"name"`
	AnimalType            string  `json:"animal_type"`
	Breed                 string  `json:"breed"`
	Color                 string  `json:"color"`
	SexUponOutcome        string  `json:"sex_upon_outcome"`
	AgeUponOutcome        string  `json:"age_upon_outcome"`
	AgeUponOutcomeInWeeks float64 `json:"age_upon_outcome_in_weeks"`
	DateOfBirth           string  `json:"date_of_birth"` // YYYY-MM-DD opcional
	OutcomeAt             string  `json:"datetime"`      // RFC3339 opcional
	MonthYear             string  `json:"monthyear"`
	OutcomeType           string  `json:"outcome_type"`
	OutcomeSubtype        string  `json:"outcome_subtype"`
	LocationLat           float64 `json:"location_lat"`
	LocationLong          float64 `json:"location_long"`
}

// animalResponse usa los mismos nombres de campo que el dataset para que
// tabla y mapa del dashboard los consuman sin traducción.
type animalResponse struct {
	AnimalID              string     `json:"animal_id"`
	Name                  string     `json:"name"`
	AnimalType            string     `json:"animal_type"`
	Breed                 string     `json:"breed"`
	Color                 string     `json:"color"`
	SexUponOutcome        string     `json:"sex_upon_outcome"`
	AgeUponOutcome        string     `json:"age_upon_outcome"`
	AgeUponOutcomeInWeeks float64    `json:"age_upon_outcome_in_weeks"`
	DateOfBirth           *time.Time `json:"date_of_birth,omitempty"`
	OutcomeAt             *time.Time `json:"datetime,omitempty"`
	MonthYear             string     `json:"monthyear"`
	OutcomeType           string     `json:"outcome_type"`
	OutcomeSubtype        string     `json:"outcome_subtype"`
	LocationLat           float64    `json:"location_lat"`
	LocationLong          float64    `json:"location_long"`
}

// updateAnimalRequest es el cuerpo de un PATCH. Punteros: nil = no tocar.
type updateAnimalRequest struct {
	Name                  *string  `json:"name"`
	AnimalType            *string  `json:"animal_type"`
	Breed                 *string  `json:"breed"`
	Color                 *string  `json:"color"`
	SexUponOutcome        *string  `json:"sex_upon_outcome"`
	AgeUponOutcome        *string  `json:"age_upon_outcome"`
	AgeUponOutcomeInWeeks *float64 `json:"age_upon_outcome_in_weeks"`
	OutcomeAt             *string  `json:"datetime"` // RFC3339
	OutcomeType           *string  `json:"outcome_type"`
	OutcomeSubtype        *string  `json:"outcome_subtype"`
	LocationLat           *float64 `json:"location_lat"`
	LocationLong          *float64 `json:"location_long"`
}

type listAnimalsResponse struct {
	Items  []animalResponse `json:"items"`
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

type breedCountResponse struct {
	Breed string `json:"breed"`
	Count int64  `json:"count"`
}

type statsResponse struct {
	TotalAnimals int64   `json:"total_animals"`
	AvgAgeWeeks  float64 `json:"avg_age_weeks"`
	UniqueBreeds int     `json:"unique_breeds"`
}

type rescueTypeResponse struct {
	Value       string   `json:"value"`
	Label       string   `json:"label"`
	Breeds      []string `json:"breeds"`
	Sex         string   `json:"sex"`
	MinAgeWeeks float64  `json:"min_age_weeks"`
	MaxAgeWeeks float64  `json:"max_age_weeks"`
}

type deleteAnimalResponse struct {
	Deleted int64 `json:"deleted"`
}

// createAnimalHandler godoc
// @Summary Registrar un animal
// @Description Registra un outcome nuevo en la colección. animal_type, breed y age_upon_outcome_in_weeks > 0 son obligatorios. Si animal_id falta se genera un UUID; si ya existe responde 409.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Datos del animal; date_of_birth YYYY-MM-DD, datetime RFC3339"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json / campos obligatorios"
// @Failure 409 {string} string "animal id already exists"
// @Failure 500 {string} string "internal error"
// @Router /animals [post]
func createAnimalHandler(svc *Service, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var dob *time.Time
		if strings.TrimSpace(req.DateOfBirth) != "" {
			t, err := time.Parse("2006-01-02", req.DateOfBirth)
			if err != nil {
				http.Error(w, "date_of_birth must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			dob = &t
		}

		var outcomeAt *time.Time
		if strings.TrimSpace(req.OutcomeAt) != "" {
			t, err := time.Parse(time.RFC3339, req.OutcomeAt)
			if err != nil {
				http.Error(w, "datetime must be RFC3339", http.StatusBadRequest)
				return
			}
			outcomeAt = &t
		}

		a, err := svc.Create(r.Context(), CreateInput{
			AnimalID:              req.AnimalID,
			Name:                  req.Name,
			AnimalType:            req.AnimalType,
			Breed:                 req.Breed,
			Color:                 req.Color,
			SexUponOutcome:        req.SexUponOutcome,
			AgeUponOutcome:        req.AgeUponOutcome,
			AgeUponOutcomeInWeeks: req.AgeUponOutcomeInWeeks,
			DateOfBirth:           dob,
			OutcomeAt:             outcomeAt,
			MonthYear:             req.MonthYear,
			OutcomeType:           req.OutcomeType,
			OutcomeSubtype:        req.OutcomeSubtype,
			LocationLat:           req.LocationLat,
			LocationLong:          req.LocationLong,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, "animal_type, breed and age_upon_outcome_in_weeks are required", http.StatusBadRequest)
			case ErrDuplicateID:
				http.Error(w, "animal id already exists", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		// Best effort: la mutación ya está hecha, el historial no la frena.
		_, _ = auditSvc.Record(r.Context(), audit.RecordInput{
			Action:   audit.ActionCreated,
			AnimalID: a.AnimalID,
			Modified: 1,
		})

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Lista animales con filtros combinables. rescue_type aplica el perfil de rescate completo (tipos, razas, sexo y rango de edad) y pisa esos criterios si también vinieron sueltos. Sin filtros devuelve toda la colección paginada.
// @Tags animals
// @Produce json
// @Param animal_type query string false "Lista CSV de tipos (ej: Dog,Cat)"
// @Param breed query string false "Lista CSV de razas exactas"
// @Param sex query string false "sex_upon_outcome exacto (ej: Intact Female)"
// @Param outcome_type query string false "outcome_type exacto (ej: Adoption)"
// @Param min_age_weeks query number false "Edad mínima en semanas (inclusive)"
// @Param max_age_weeks query number false "Edad máxima en semanas (inclusive)"
// @Param rescue_type query string false "Perfil de rescate: water | mountain | disaster"
// @Param limit query int false "Máximo de filas (1-200). Por defecto 50"
// @Param offset query int false "Filas a saltar para paginación"
// @Success 200 {object} listAnimalsResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 500 {string} string "internal error"
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := parseFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.Find(r.Context(), f)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		total, err := svc.Count(r.Context(), f)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}

		writeJSON(w, http.StatusOK, listAnimalsResponse{
			Items:  out,
			Total:  total,
			Limit:  f.Limit,
			Offset: f.Offset,
		})
	}
}

// breedCountsHandler godoc
// @Summary Conteo por raza
// @Description Agrupa los animales que cumplen el filtro por raza, ordenado por cantidad descendente. Acepta los mismos filtros que GET /animals (la paginación no aplica). Alimenta el pie chart del dashboard.
// @Tags animals
// @Produce json
// @Param animal_type query string false "Lista CSV de tipos"
// @Param breed query string false "Lista CSV de razas exactas"
// @Param sex query string false "sex_upon_outcome exacto"
// @Param outcome_type query string false "outcome_type exacto"
// @Param min_age_weeks query number false "Edad mínima en semanas (inclusive)"
// @Param max_age_weeks query number false "Edad máxima en semanas (inclusive)"
// @Param rescue_type query string false "Perfil de rescate: water | mountain | disaster"
// @Success 200 {array} breedCountResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 500 {string} string "internal error"
// @Router /animals/breeds [get]
func breedCountsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := parseFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		counts, err := svc.BreedCounts(r.Context(), f)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]breedCountResponse, 0, len(counts))
		for _, bc := range counts {
			out = append(out, breedCountResponse{Breed: bc.Breed, Count: bc.Count})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// statsHandler godoc
// @Summary Resumen de la colección
// @Description Total de animales, edad promedio en semanas y cantidad de razas distintas sobre la colección completa.
// @Tags animals
// @Produce json
// @Success 200 {object} statsResponse
// @Failure 500 {string} string "internal error"
// @Router /animals/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Stats(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, statsResponse{
			TotalAnimals: st.TotalAnimals,
			AvgAgeWeeks:  st.AvgAgeWeeks,
			UniqueBreeds: st.UniqueBreeds,
		})
	}
}

// rescueTypesHandler godoc
// @Summary Perfiles de rescate disponibles
// @Description Devuelve las categorías de rescate con sus criterios (razas, sexo, rango de edad). El dashboard arma los radio buttons con esto.
// @Tags animals
// @Produce json
// @Success 200 {array} rescueTypeResponse
// @Router /animals/rescue-types [get]
func rescueTypesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]rescueTypeResponse, 0)
		for _, t := range rescue.Types() {
			c, err := rescue.CriteriaFor(t)
			if err != nil {
				continue
			}
			out = append(out, rescueTypeResponse{
				Value:       string(t),
				Label:       t.Label(),
				Breeds:      c.Breeds,
				Sex:         c.SexUponOutcome,
				MinAgeWeeks: c.MinAgeWeeks,
				MaxAgeWeeks: c.MaxAgeWeeks,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Obtener un animal
// @Tags animals
// @Produce json
// @Param animalID path string true "animal_id del registro"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByAnimalID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			switch err {
			case ErrNotFound, ErrInvalidInput:
				http.Error(w, "animal not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Actualizar un animal
// @Description PATCH parcial: solo los campos presentes cambian, el resto queda igual. Devuelve el registro ya actualizado.
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "animal_id del registro"
// @Param payload body updateAnimalRequest true "Campos a cambiar; datetime en RFC3339"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "invalid json / sin cambios"
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID} [patch]
func updateAnimalHandler(svc *Service, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		animalID := chi.URLParam(r, "animalID")

		var req updateAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ch := Changes{
			Name:                  req.Name,
			AnimalType:            req.AnimalType,
			Breed:                 req.Breed,
			Color:                 req.Color,
			SexUponOutcome:        req.SexUponOutcome,
			AgeUponOutcome:        req.AgeUponOutcome,
			AgeUponOutcomeInWeeks: req.AgeUponOutcomeInWeeks,
			OutcomeType:           req.OutcomeType,
			OutcomeSubtype:        req.OutcomeSubtype,
			LocationLat:           req.LocationLat,
			LocationLong:          req.LocationLong,
		}
		if req.OutcomeAt != nil {
			t, err := time.Parse(time.RFC3339, *req.OutcomeAt)
			if err != nil {
				http.Error(w, "datetime must be RFC3339", http.StatusBadRequest)
				return
			}
			ch.OutcomeAt = &t
		}

		updated, err := svc.UpdateByAnimalID(r.Context(), animalID, ch)
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, "no fields to update", http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "animal not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		_, _ = auditSvc.Record(r.Context(), audit.RecordInput{
			Action:   audit.ActionUpdated,
			AnimalID: updated.AnimalID,
			Matched:  1,
			Modified: 1,
		})

		writeJSON(w, http.StatusOK, toAnimalResponse(updated))
	}
}

// deleteAnimalHandler godoc
// @Summary Borrar un animal
// @Tags animals
// @Produce json
// @Param animalID path string true "animal_id del registro"
// @Success 200 {object} deleteAnimalResponse
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID} [delete]
func deleteAnimalHandler(svc *Service, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		animalID := chi.URLParam(r, "animalID")

		err := svc.DeleteByAnimalID(r.Context(), animalID)
		if err != nil {
			switch err {
			case ErrNotFound, ErrInvalidInput:
				http.Error(w, "animal not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		_, _ = auditSvc.Record(r.Context(), audit.RecordInput{
			Action:   audit.ActionDeleted,
			AnimalID: animalID,
			Deleted:  1,
		})

		writeJSON(w, http.StatusOK, deleteAnimalResponse{Deleted: 1})
	}
}

// parseFilter arma el Filter desde querystring. rescue_type aplica el perfil
// completo (tipos, razas, sexo, edad) por encima de esos criterios sueltos.
func parseFilter(r *http.Request) (Filter, error) {
	q := r.URL.Query()
	var f Filter

	if v := strings.TrimSpace(q.Get("rescue_type")); v != "" {
		t, err := rescue.ParseType(v)
		if err != nil {
			return Filter{}, fmt.Errorf("unknown rescue_type %q", v)
		}
		c, err := rescue.CriteriaFor(t)
		if err != nil {
			return Filter{}, err
		}
		minAge := c.MinAgeWeeks
		maxAge := c.MaxAgeWeeks
		f.AnimalTypes = c.AnimalTypes
		f.Breeds = c.Breeds
		f.SexUponOutcome = c.SexUponOutcome
		f.MinAgeWeeks = &minAge
		f.MaxAgeWeeks = &maxAge
	} else {
		f.AnimalTypes = splitCSV(q.Get("animal_type"))
		f.Breeds = splitCSV(q.Get("breed"))
		f.SexUponOutcome = strings.TrimSpace(q.Get("sex"))

		if v := strings.TrimSpace(q.Get("min_age_weeks")); v != "" {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil || n < 0 {
				return Filter{}, fmt.Errorf("min_age_weeks must be a non-negative number")
			}
			f.MinAgeWeeks = &n
		}
		if v := strings.TrimSpace(q.Get("max_age_weeks")); v != "" {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil || n < 0 {
				return Filter{}, fmt.Errorf("max_age_weeks must be a non-negative number")
			}
			f.MaxAgeWeeks = &n
		}
	}

	f.OutcomeType = strings.TrimSpace(q.Get("outcome_type"))

	f.Limit = 50
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			f.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			f.Offset = n
		}
	}

	return f, nil
}

func splitCSV(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
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

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (animals/audit) para evitar crear paquetes/helpers compartidos demasiado
// pronto. Si se repite en más módulos, recién conviene extraerlo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
