// Package profile implements the Profile repository using PostgreSQL.
// Single-profile reads carry a summary of the owning account.
package profile

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/healthtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/healthtrack-backend/internal/compose"
	"github.com/heartmarshall/healthtrack-backend/internal/domain"
)

const (
	table        = "user_detail"
	accountTable = "user_authentication"
)

var columns = []string{
	"id", "user_id", "name", "date_of_birth", "gender", "primary_health_goal",
	"specific_fitness_goals", "fitness_level", "exercise_status", "phone",
	"allergies", "preferred_workout_time", "available_equipment",
	"dietary_preferences", "dietary_restrictions", "current_stat_id",
	"preferred_nutrition_plan_id", "preferred_health_activity_id",
	"preferred_exercise_routine_id", "profile_picture_url", "timezone",
	"language_preference", "notification_preferences", "privacy_settings",
	"subscription_type", "created_at", "updated_at",
}

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	t *postgres.Table[domain.Profile]
}

// New creates a new profile repository.
func New(q postgres.Querier) *Repo {
	return &Repo{t: postgres.NewTable[domain.Profile](q, "profile", table, columns)}
}

// List returns every profile ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.Profile, error) {
	return r.t.List(ctx)
}

// ListByOwner returns the profiles of account userID, newest first.
func (r *Repo) ListByOwner(ctx context.Context, userID int64) ([]domain.Profile, error) {
	return r.t.ListBy(ctx, "user_id", userID, "created_at")
}

// GetByID returns a profile with its account summary. A profile whose
// account no longer exists is returned without one.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	p, err := r.t.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	query := postgres.Builder.
		Select("email", "created_at", "last_login").
		From(accountTable).
		Where(squirrel.Eq{"id": p.UserID})

	var summary domain.AccountSummary
	found, err := r.t.Lookup(ctx, &summary, query)
	if err != nil {
		return nil, fmt.Errorf("profile %d: account: %w", id, err)
	}
	if found {
		p.Account = &summary
	}
	return p, nil
}

// Create inserts a profile. A second profile for the same account is
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, values compose.Values) (*domain.Profile, error) {
	return r.t.Insert(ctx, values)
}

// Update sets the given columns on profile id.
func (r *Repo) Update(ctx context.Context, id int64, values compose.Values) (*domain.Profile, error) {
	return r.t.Update(ctx, id, values)
}

// Delete removes profile id.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.t.Delete(ctx, id)
}
