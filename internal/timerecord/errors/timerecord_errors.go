package timerecorderrors

import (
	"net/http"

	"github.com/pedrodese/Check-Time/internal/shared/apperror"
)

var (
	ErrDuplicatePunch = apperror.New(
		apperror.CodeConflict,
		"A record of this type already exists for today",
		http.StatusConflict,
	)

	ErrOutsideWindow = apperror.New(
		apperror.CodeInvalidInput,
		"Punch is outside the allowed time window",
		http.StatusBadRequest,
	)

	ErrInvalidRecordType = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid record type",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
)
