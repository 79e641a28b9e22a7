// Package account implements the Account repository using PostgreSQL.
package account

import (
	"context"
	"errors"
	"fmt"

	postgres "github.com/heartmarshall/healthtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/healthtrack-backend/internal/compose"
	"github.com/heartmarshall/healthtrack-backend/internal/domain"
)

const table = "user_authentication"

var columns = []string{"id", "email", "password_hash", "user_auth_id", "created_at", "last_login"}

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	t *postgres.Table[domain.Account]
}

// New creates a new account repository.
func New(q postgres.Querier) *Repo {
	return &Repo{t: postgres.NewTable[domain.Account](q, "account", table, columns)}
}

// List returns every account ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.Account, error) {
	return r.t.List(ctx)
}

// ListByOwner is not supported: accounts are the owners. It completes
// record.Repository; the account service has no owner column and never
// calls it.
func (r *Repo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Account, error) {
	return nil, fmt.Errorf("account: list by owner: %w", errors.ErrUnsupported)
}

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return r.t.Get(ctx, id)
}

// Create inserts an account. A duplicate email is domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, values compose.Values) (*domain.Account, error) {
	return r.t.Insert(ctx, values)
}

// Update sets the given columns on account id.
func (r *Repo) Update(ctx context.Context, id int64, values compose.Values) (*domain.Account, error) {
	return r.t.Update(ctx, id, values)
}

// Delete removes account id. Profiles and logs that refer to it are kept.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.t.Delete(ctx, id)
}
