package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"forum/internal/domain"
)

// SQLSTATE codes the forum schema can raise
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// Row identifies what a statement was reading or writing, for error mapping.
type Row struct {
	Type string
	ID   string
	// Conflict replaces the default message for unique violations
	Conflict string
}

// TranslateError maps a pgx error onto the forum's domain errors. Missing
// rows become NotFoundError, unique violations ConflictError, a featured
// entry pointing at a deleted topic NotFoundError for the topic, and a
// carousel position outside the check constraint ValidationError. Anything
// else is wrapped with op.
func TranslateError(err error, op string, row Row) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.NotFoundError{ResourceType: row.Type, ResourceID: row.ID}
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		msg := row.Conflict
		if msg == "" {
			msg = fmt.Sprintf("%s '%s' already exists", row.Type, row.ID)
		}
		return &domain.ConflictError{Message: msg, ResourceType: row.Type, ResourceID: row.ID}
	case codeForeignKeyViolation:
		return &domain.NotFoundError{ResourceType: "topic", ResourceID: row.ID}
	case codeCheckViolation:
		return domain.NewValidationError(fmt.Sprintf("%s '%s' violates %s", row.Type, row.ID, pgErr.ConstraintName))
	}
	return fmt.Errorf("%s: %w", op, err)
}
