// Package record implements the CRUD services shared by every record family.
// Each service composes coerced column values from caller input and hands
// them to its repository; the repository owns all SQL.
package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/healthtrack-backend/internal/coerce"
	"github.com/heartmarshall/healthtrack-backend/internal/compose"
	"github.com/heartmarshall/healthtrack-backend/internal/domain"
	"github.com/heartmarshall/healthtrack-backend/internal/schema"
)

// Record is a stored row with a surrogate key.
type Record interface {
	RecordID() int64
}

// Repository persists one entity. Mutating calls return the stored row.
type Repository[T Record] interface {
	List(ctx context.Context) ([]T, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, values compose.Values) (*T, error)
	Update(ctx context.Context, id int64, values compose.Values) (*T, error)
	Delete(ctx context.Context, id int64) error
}

var errNoOwner = errors.New("entity has no owner column")

// Service provides the record operations for one entity.
type Service[T Record] struct {
	entity *schema.Entity
	engine *coerce.Engine
	repo   Repository[T]
	log    *slog.Logger
	now    func() time.Time

	// prepare adds generated columns to a validated insert mapping.
	prepare func(compose.Values)
}

// NewService creates a Service for entity backed by repo.
func NewService[T Record](
	log *slog.Logger,
	entity *schema.Entity,
	engine *coerce.Engine,
	repo Repository[T],
) *Service[T] {
	return &Service[T]{
		entity: entity,
		engine: engine,
		repo:   repo,
		log:    log.With("service", entity.Name),
		now:    time.Now,
	}
}

// Entity returns the schema the service validates against.
func (s *Service[T]) Entity() *schema.Entity {
	return s.entity
}

// List returns every record in storage order.
func (s *Service[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.entity.Name, err)
	}
	return items, nil
}

// ListByOwner returns the records owned by ownerID, newest first.
func (s *Service[T]) ListByOwner(ctx context.Context, ownerID int64) ([]T, error) {
	if !s.entity.HasOwner() {
		return nil, fmt.Errorf("list %s by owner: %w", s.entity.Name, errNoOwner)
	}
	if err := validateID(s.entity.OwnerColumn, ownerID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list %s by owner: %w", s.entity.Name, err)
	}
	return items, nil
}

// GetByID returns one record, including its display join where defined.
func (s *Service[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.entity.Name, err)
	}
	return item, nil
}

// Create validates in and inserts a new record. Nothing is written when
// validation fails.
func (s *Service[T]) Create(ctx context.Context, in coerce.Input) (*T, error) {
	values, err := compose.Create(s.engine, s.entity, in)
	if err != nil {
		return nil, err
	}
	if s.prepare != nil {
		s.prepare(values)
	}

	created, err := s.repo.Create(ctx, values)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", s.entity.Name, err)
	}

	s.log.InfoContext(ctx, s.entity.Name+" created",
		slog.Int64("id", (*created).RecordID()),
	)

	return created, nil
}

// Update applies a partial update to record id. Only the fields present in
// in are touched.
func (s *Service[T]) Update(ctx context.Context, id int64, in coerce.Input) (*T, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}

	values, err := compose.Update(s.engine, s.entity, in, s.now())
	if err != nil {
		return nil, err
	}

	// Nothing to write: report the current row so a missing id is still NotFound.
	if len(values) == 0 {
		item, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("update %s: %w", s.entity.Name, err)
		}
		return item, nil
	}

	updated, err := s.repo.Update(ctx, id, values)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", s.entity.Name, err)
	}

	s.log.InfoContext(ctx, s.entity.Name+" updated",
		slog.Int64("id", id),
		slog.Int("fields", len(values)),
	)

	return updated, nil
}

// Delete removes record id unconditionally. Rows referring to it are left
// in place.
func (s *Service[T]) Delete(ctx context.Context, id int64) error {
	if err := validateID("id", id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", s.entity.Name, err)
	}

	s.log.InfoContext(ctx, s.entity.Name+" deleted",
		slog.Int64("id", id),
	)

	return nil
}

func validateID(field string, id int64) error {
	if id <= 0 {
		return domain.NewValidationError(field, "must be a positive integer")
	}
	return nil
}
