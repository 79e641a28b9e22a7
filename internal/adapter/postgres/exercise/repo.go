// Package exercise implements the ExerciseLog repository using PostgreSQL.
// Single-log reads carry a summary of the owner's profile.
package exercise

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/healthtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/healthtrack-backend/internal/compose"
	"github.com/heartmarshall/healthtrack-backend/internal/domain"
)

const (
	table        = "user_exercise_log"
	profileTable = "user_detail"
)

var columns = []string{
	"id", "user_id", "exercise_id", "date_performed", "duration_minutes",
	"sets_completed", "reps_completed", "weight_used_kg", "calories_burned",
	"difficulty_rating", "notes", "created_at",
}

// Repo provides exercise log persistence backed by PostgreSQL.
type Repo struct {
	t *postgres.Table[domain.ExerciseLog]
}

// New creates a new exercise log repository.
func New(q postgres.Querier) *Repo {
	return &Repo{t: postgres.NewTable[domain.ExerciseLog](q, "exercise log", table, columns)}
}

// List returns every exercise log ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.ExerciseLog, error) {
	return r.t.List(ctx)
}

// ListByOwner returns the exercise logs of account userID, most recent date_performed first.
func (r *Repo) ListByOwner(ctx context.Context, userID int64) ([]domain.ExerciseLog, error) {
	return r.t.ListBy(ctx, "user_id", userID, "date_performed")
}

// GetByID returns a exercise log with the name and fitness level from the owner's
// profile. A log whose owner has no profile is returned without it.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.ExerciseLog, error) {
	l, err := r.t.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	query := postgres.Builder.
		Select("name", "fitness_level").
		From(profileTable).
		Where(squirrel.Eq{"user_id": l.UserID})

	var summary domain.ExerciseProfile
	found, err := r.t.Lookup(ctx, &summary, query)
	if err != nil {
		return nil, fmt.Errorf("exercise log %d: profile: %w", id, err)
	}
	if found {
		l.Profile = &summary
	}
	return l, nil
}

// Create inserts a exercise log.
func (r *Repo) Create(ctx context.Context, values compose.Values) (*domain.ExerciseLog, error) {
	return r.t.Insert(ctx, values)
}

// Update sets the given columns on exercise log id.
func (r *Repo) Update(ctx context.Context, id int64, values compose.Values) (*domain.ExerciseLog, error) {
	return r.t.Update(ctx, id, values)
}

// Delete removes exercise log id.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.t.Delete(ctx, id)
}
