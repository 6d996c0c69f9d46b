package holidayerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrHolidayDateAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A holiday already exists on this date",
		http.StatusConflict,
	)
)
