package reporterrors

import (
	"net/http"

	"github.com/pedrodese/Check-Time/internal/shared/apperror"
)

var (
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date range, expected startDate and endDate as YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid report format, expected csv or xlsx",
		http.StatusBadRequest,
	)

	ErrExportFailed = apperror.New(
		apperror.CodeExportFailed,
		"Failed to generate the report file",
		http.StatusInternalServerError,
	)
)
