package timerecord

import (
	"errors"
	"strings"

	timerecorderrors "github.com/pedrodese/Check-Time/internal/timerecord/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError covers the race the service-level duplicate check
// cannot: two punches for the same (user, type, day) arriving together
// both pass the read, and the unique index rejects the second insert.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_time_record_daily_type" {
			return timerecorderrors.ErrDuplicatePunch
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_time_record_daily_type") {
		return timerecorderrors.ErrDuplicatePunch
	}

	return err
}
