package usererrors

import (
	"net/http"

	"github.com/pedrodese/Check-Time/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrRegistrationTaken = apperror.New(
		apperror.CodeConflict,
		"Registration number already in use",
		http.StatusConflict,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrAdminAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An administrator account already exists",
		http.StatusConflict,
	)

	ErrInvalidShiftTime = apperror.New(
		apperror.CodeInvalidInput,
		"Shift times must be in HH:MM format",
		http.StatusBadRequest,
	)
)
