package audit

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RecordInput struct {
	Action   Action
	AnimalID string
	Detail   string
	Matched  int64
	Modified int64
	Deleted  int64
}

// Record agrega una entrada al historial. El ID y el timestamp los pone el
// servicio; el caller solo describe la acción.
func (s *Service) Record(ctx context.Context, in RecordInput) (Entry, error) {
	if in.Action == "" {
		return Entry{}, ErrInvalidInput
	}

	e := Entry{
		ID:       uuid.NewString(),
		At:       s.now().UTC(),
		Action:   in.Action,
		AnimalID: strings.TrimSpace(in.AnimalID),
		Detail:   strings.TrimSpace(in.Detail),
		Matched:  in.Matched,
		Modified: in.Modified,
		Deleted:  in.Deleted,
	}

	if err := s.repo.Record(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// List devuelve las entradas más recientes. limit fuera de rango usa el
// default (50, tope 200).
func (s *Service) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	return s.repo.List(ctx, limit)
}
