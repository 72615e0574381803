package repository

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/zebee/manager-api/internal/domain"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// translateError converte erros do driver para os erros de domínio
func translateError(err error, msg string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return errors.Wrap(domain.ErrConflict, pqErr.Constraint)
		case foreignKeyViolation:
			return errors.Wrap(domain.ErrInvalidReference, pqErr.Constraint)
		}
	}

	return errors.Wrap(err, msg)
}
