package absence

import (
	"errors"
	"strings"

	absenceerrors "go-people/internal/absence/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return absenceerrors.ErrAbsenceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23P01 exclusion_violation: the overlap constraint caught a write
		// that raced past the in-transaction check.
		if pgErr.Code == "23P01" && pgErr.ConstraintName == "excl_absence_requests_no_overlap" {
			return absenceerrors.ErrAbsenceOverlap
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "excl_absence_requests_no_overlap") {
		return absenceerrors.ErrAbsenceOverlap
	}

	return err
}
