// Package nutrition implements the NutritionLog repository using PostgreSQL.
// Single-log reads carry a summary of the owner's profile.
package nutrition

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/healthtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/healthtrack-backend/internal/compose"
	"github.com/heartmarshall/healthtrack-backend/internal/domain"
)

const (
	table        = "user_nutrition_log"
	profileTable = "user_detail"
)

var columns = []string{
	"id", "user_id", "nutrition_id", "date_consumed", "meal_time",
	"serving_amount", "total_calories", "notes", "created_at",
}

// Repo provides nutrition log persistence backed by PostgreSQL.
type Repo struct {
	t *postgres.Table[domain.NutritionLog]
}

// New creates a new nutrition log repository.
func New(q postgres.Querier) *Repo {
	return &Repo{t: postgres.NewTable[domain.NutritionLog](q, "nutrition log", table, columns)}
}

// List returns every nutrition log ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.NutritionLog, error) {
	return r.t.List(ctx)
}

// ListByOwner returns the nutrition logs of account userID, most recent date_consumed first.
func (r *Repo) ListByOwner(ctx context.Context, userID int64) ([]domain.NutritionLog, error) {
	return r.t.ListBy(ctx, "user_id", userID, "date_consumed")
}

// GetByID returns a nutrition log with the name and dietary settings from the owner's
// profile. A log whose owner has no profile is returned without it.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.NutritionLog, error) {
	l, err := r.t.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	query := postgres.Builder.
		Select("name", "dietary_preferences", "dietary_restrictions").
		From(profileTable).
		Where(squirrel.Eq{"user_id": l.UserID})

	var summary domain.NutritionProfile
	found, err := r.t.Lookup(ctx, &summary, query)
	if err != nil {
		return nil, fmt.Errorf("nutrition log %d: profile: %w", id, err)
	}
	if found {
		l.Profile = &summary
	}
	return l, nil
}

// Create inserts a nutrition log.
func (r *Repo) Create(ctx context.Context, values compose.Values) (*domain.NutritionLog, error) {
	return r.t.Insert(ctx, values)
}

// Update sets the given columns on nutrition log id.
func (r *Repo) Update(ctx context.Context, id int64, values compose.Values) (*domain.NutritionLog, error) {
	return r.t.Update(ctx, id, values)
}

// Delete removes nutrition log id.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.t.Delete(ctx, id)
}
