// Package health implements the HealthActivityLog repository using PostgreSQL.
// Single-log reads carry a summary of the owner's profile.
package health

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/healthtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/healthtrack-backend/internal/compose"
	"github.com/heartmarshall/healthtrack-backend/internal/domain"
)

const (
	table        = "user_health_log"
	profileTable = "user_detail"
)

var columns = []string{
	"id", "user_id", "health_activity_id", "date_performed", "start_time",
	"duration_minutes", "completion_status", "stress_level_before",
	"stress_level_after", "mood_before", "mood_after", "effectiveness_rating",
	"notes", "created_at",
}

// Repo provides health log persistence backed by PostgreSQL.
type Repo struct {
	t *postgres.Table[domain.HealthActivityLog]
}

// New creates a new health log repository.
func New(q postgres.Querier) *Repo {
	return &Repo{t: postgres.NewTable[domain.HealthActivityLog](q, "health log", table, columns)}
}

// List returns every health log ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.HealthActivityLog, error) {
	return r.t.List(ctx)
}

// ListByOwner returns the health logs of account userID, most recent date_performed first.
func (r *Repo) ListByOwner(ctx context.Context, userID int64) ([]domain.HealthActivityLog, error) {
	return r.t.ListBy(ctx, "user_id", userID, "date_performed")
}

// GetByID returns a health log with the name and primary health goal from the owner's
// profile. A log whose owner has no profile is returned without it.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.HealthActivityLog, error) {
	l, err := r.t.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	query := postgres.Builder.
		Select("name", "primary_health_goal").
		From(profileTable).
		Where(squirrel.Eq{"user_id": l.UserID})

	var summary domain.HealthProfile
	found, err := r.t.Lookup(ctx, &summary, query)
	if err != nil {
		return nil, fmt.Errorf("health log %d: profile: %w", id, err)
	}
	if found {
		l.Profile = &summary
	}
	return l, nil
}

// Create inserts a health log.
func (r *Repo) Create(ctx context.Context, values compose.Values) (*domain.HealthActivityLog, error) {
	return r.t.Insert(ctx, values)
}

// Update sets the given columns on health log id.
func (r *Repo) Update(ctx context.Context, id int64, values compose.Values) (*domain.HealthActivityLog, error) {
	return r.t.Update(ctx, id, values)
}

// Delete removes health log id.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.t.Delete(ctx, id)
}
