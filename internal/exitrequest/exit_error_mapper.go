package exitrequest

import (
	"errors"
	"strings"

	exiterrors "go-offboarding/internal/exitrequest/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return exiterrors.ErrExitRequestNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == "uq_exit_active_employee" {
		return exiterrors.ErrDuplicateActiveRequest
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_exit_active_employee") {
		return exiterrors.ErrDuplicateActiveRequest
	}

	return err
}
