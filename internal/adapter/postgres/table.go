package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

// Builder is the squirrel statement builder for PostgreSQL ($n placeholders).
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// IDColumn is the surrogate primary key shared by every table.
const IDColumn = "id"

// Table runs single-table statements for rows of type T. Column values come
// in as a column → value map; rows come back scanned by db tags.
type Table[T any] struct {
	q       Querier
	entity  string
	name    string
	columns []string
}

// NewTable creates a Table for entity stored in name, selecting columns.
func NewTable[T any](q Querier, entity, name string, columns []string) *Table[T] {
	return &Table[T]{q: q, entity: entity, name: name, columns: columns}
}

// Q returns the underlying querier.
func (t *Table[T]) Q() Querier {
	return t.q
}

// SelectBuilder returns SELECT <columns> FROM <table>.
func (t *Table[T]) SelectBuilder() squirrel.SelectBuilder {
	return Builder.Select(t.columns...).From(t.name)
}

// List returns every row ordered by id.
func (t *Table[T]) List(ctx context.Context) ([]T, error) {
	return t.Select(ctx, t.SelectBuilder().OrderBy(IDColumn+" ASC"))
}

// ListBy returns the rows where column equals value, newest orderColumn
// first with id descending as the tie-breaker.
func (t *Table[T]) ListBy(ctx context.Context, column string, value any, orderColumn string) ([]T, error) {
	query := t.SelectBuilder().
		Where(squirrel.Eq{column: value}).
		OrderBy(orderColumn+" DESC", IDColumn+" DESC")
	return t.Select(ctx, query)
}

// Select runs query and scans every row. An empty result is an empty slice.
func (t *Table[T]) Select(ctx context.Context, query squirrel.SelectBuilder) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", t.entity, err)
	}

	items := make([]T, 0)
	if err := pgxscan.Select(ctx, t.q, &items, sql, args...); err != nil {
		return nil, mapError(err, t.entity, 0)
	}
	return items, nil
}

// Get returns the row with the given id.
func (t *Table[T]) Get(ctx context.Context, id int64) (*T, error) {
	query := t.SelectBuilder().Where(squirrel.Eq{IDColumn: id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", t.entity, err)
	}

	var item T
	if err := pgxscan.Get(ctx, t.q, &item, sql, args...); err != nil {
		return nil, mapError(err, t.entity, id)
	}
	return &item, nil
}

// Insert writes one row and returns it as stored.
func (t *Table[T]) Insert(ctx context.Context, values map[string]any) (*T, error) {
	query := Builder.Insert(t.name).
		SetMap(values).
		Suffix(t.returning())

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s insert: %w", t.entity, err)
	}

	var item T
	if err := pgxscan.Get(ctx, t.q, &item, sql, args...); err != nil {
		return nil, mapError(err, t.entity, 0)
	}
	return &item, nil
}

// Update sets only the given columns on row id and returns the row as stored.
// With no values it reads the row instead.
func (t *Table[T]) Update(ctx context.Context, id int64, values map[string]any) (*T, error) {
	if len(values) == 0 {
		return t.Get(ctx, id)
	}

	query := Builder.Update(t.name).
		SetMap(values).
		Where(squirrel.Eq{IDColumn: id}).
		Suffix(t.returning())

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s update: %w", t.entity, err)
	}

	var item T
	if err := pgxscan.Get(ctx, t.q, &item, sql, args...); err != nil {
		return nil, mapError(err, t.entity, id)
	}
	return &item, nil
}

// Delete removes row id. A missing row is domain.ErrNotFound.
func (t *Table[T]) Delete(ctx context.Context, id int64) error {
	sql, args, err := Builder.Delete(t.name).Where(squirrel.Eq{IDColumn: id}).ToSql()
	if err != nil {
		return fmt.Errorf("build %s delete: %w", t.entity, err)
	}

	tag, err := t.q.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, t.entity, id)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, t.entity, id)
	}
	return nil
}

// Lookup scans the single row produced by query into dst. A query with no
// result reports found == false rather than an error.
func (t *Table[T]) Lookup(ctx context.Context, dst any, query squirrel.SelectBuilder) (bool, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("build %s lookup: %w", t.entity, err)
	}

	if err := pgxscan.Get(ctx, t.q, dst, sql, args...); err != nil {
		if pgxscan.NotFound(err) || errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, mapError(err, t.entity, 0)
	}
	return true, nil
}

func (t *Table[T]) returning() string {
	return "RETURNING " + strings.Join(t.columns, ", ")
}
