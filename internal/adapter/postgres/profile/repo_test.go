package profile_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/healthtrack-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/healthtrack-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/healthtrack-backend/internal/coerce"
	"github.com/heartmarshall/healthtrack-backend/internal/compose"
	"github.com/heartmarshall/healthtrack-backend/internal/domain"
	"github.com/heartmarshall/healthtrack-backend/internal/schema"
)

func newRepo(t *testing.T) (*profile.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return profile.New(pool), pool
}

func createValues(t *testing.T, body map[string]any) compose.Values {
	t.Helper()
	in, err := coerce.InputFrom(body)
	require.NoError(t, err)
	values, err := compose.Create(coerce.NewEngine(), schema.Profile, in)
	require.NoError(t, err)
	return values
}

func baseBody(userID int64) map[string]any {
	return map[string]any{
		"user_id":             userID,
		"name":                "Dana",
		"date_of_birth":       "1988-11-03",
		"gender":              "nonbinary",
		"primary_health_goal": "sleep",
		"fitness_level":       "beginner",
		"exercise_status":     "inactive",
	}
}

func TestRepo_Create_StructuredRoundTrip(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedAccount(t, pool)
	body := baseBody(owner.ID)
	body["allergies"] = []any{"peanuts", map[string]any{"name": "pollen", "severity": 2}}
	body["current_stat_id"] = "15"

	got, err := repo.Create(ctx, createValues(t, body))
	require.NoError(t, err)

	assert.Equal(t, owner.ID, got.UserID)
	assert.True(t, got.DateOfBirth.Equal(time.Date(1988, 11, 3, 0, 0, 0, 0, time.UTC)), "dob = %v", got.DateOfBirth)
	assert.JSONEq(t, `["peanuts",{"name":"pollen","severity":2}]`, string(got.Allergies))
	require.NotNil(t, got.CurrentStatID)
	assert.Equal(t, int64(15), *got.CurrentStatID)
	assert.Nil(t, got.Phone)
	assert.Nil(t, got.DietaryRestrictions)
}

func TestRepo_Create_SecondProfileForAccount(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedAccount(t, pool)
	_, err := repo.Create(ctx, createValues(t, baseBody(owner.ID)))
	require.NoError(t, err)

	_, err = repo.Create(ctx, createValues(t, baseBody(owner.ID)))
	assert.True(t, errors.Is(err, domain.ErrAlreadyExists), "got %v", err)
}

func TestRepo_GetByID_AccountJoin(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedAccount(t, pool)
	seeded := testhelper.SeedProfile(t, pool, owner.ID, "Joined")

	got, err := repo.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Account)
	assert.Equal(t, owner.Email, got.Account.Email)
	assert.Nil(t, got.Account.LastLogin)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"user_authentication":{"email":"`+owner.Email+`"`)
}

func TestRepo_GetByID_MissingAccount(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedAccount(t, pool)
	seeded := testhelper.SeedProfile(t, pool, owner.ID, "Alone")
	_, err := pool.Exec(ctx, `DELETE FROM user_authentication WHERE id = $1`, owner.ID)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Account)
}

func TestRepo_Update_PartialWithUpdatedAt(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedAccount(t, pool)
	seeded := testhelper.SeedProfile(t, pool, owner.ID, "Before")

	in, err := coerce.InputFrom(map[string]any{"name": "After", "dietary_preferences": nil})
	require.NoError(t, err)
	now := time.Now().UTC().Add(time.Hour).Truncate(time.Microsecond)
	values, err := compose.Update(coerce.NewEngine(), schema.Profile, in, now)
	require.NoError(t, err)

	got, err := repo.Update(ctx, seeded.ID, values)
	require.NoError(t, err)

	assert.Equal(t, "After", got.Name)
	assert.Nil(t, got.DietaryPreferences)
	assert.Equal(t, seeded.FitnessLevel, got.FitnessLevel)
	assert.True(t, got.UpdatedAt.Equal(now), "updated_at = %v, want %v", got.UpdatedAt, now)
}

func TestRepo_ListByOwner(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedAccount(t, pool)
	seeded := testhelper.SeedProfile(t, pool, owner.ID, "Owned")

	got, err := repo.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, seeded.ID, got[0].ID)

	none, err := repo.ListByOwner(ctx, owner.ID+1_000_000)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
