package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/healthtrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount inserts an account with a unique email and returns it.
func SeedAccount(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	var a domain.Account
	err := pool.QueryRow(ctx,
		`INSERT INTO user_authentication (email, password_hash, user_auth_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, email, password_hash, user_auth_id, created_at, last_login`,
		"seed-"+suffix+"@example.com", "$2a$04$seedseedseedseedseedseOQbJ2b8kNZ9yQ3cQ9nH8yB3zvKf2Jt2", "user_seed_"+suffix,
	).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.UserAuthID, &a.CreatedAt, &a.LastLogin)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}

	return a
}

// SeedProfile inserts a profile for userID with the required columns set.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, userID int64, name string) domain.Profile {
	t.Helper()
	ctx := context.Background()

	p := domain.Profile{
		UserID:            userID,
		Name:              name,
		DateOfBirth:       time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Gender:            "female",
		PrimaryHealthGoal: "stress_reduction",
		FitnessLevel:      "intermediate",
		ExerciseStatus:    "active",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO user_detail (user_id, name, date_of_birth, gender, primary_health_goal, fitness_level, exercise_status, dietary_preferences)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, '["vegetarian"]')
		 RETURNING id, created_at, updated_at`,
		p.UserID, p.Name, p.DateOfBirth, p.Gender, p.PrimaryHealthGoal, p.FitnessLevel, p.ExerciseStatus,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}

	return p
}
