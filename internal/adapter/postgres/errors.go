package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/healthtrack-backend/internal/domain"
)

// PostgreSQL error codes mapped to domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	codeInvalidText         = "22P02"
	codeNumericOutOfRange   = "22003"
	codeInvalidDatetime     = "22007"
	codeDatetimeOverflow    = "22008"
)

// mapError converts pgx/pgconn/scany errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
// A zero id means the statement did not target one row (insert, list).
func mapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}

	subject := entity
	if id != 0 {
		subject = fmt.Sprintf("%s %d", entity, id)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", subject, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %s: %w", subject, pgErr.ConstraintName, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
		case codeCheckViolation, codeNotNullViolation, codeInvalidText,
			codeNumericOutOfRange, codeInvalidDatetime, codeDatetimeOverflow:
			return fmt.Errorf("%s: %s: %w", subject, pgErr.Message, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s: %w: %w", subject, domain.ErrPersistence, err)
}
