package employeeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrPayProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"No pay profile found for this employee",
		http.StatusNotFound,
	)

	ErrUnknownEmployeeType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown employee type",
		http.StatusBadRequest,
	)

	ErrEmployeeNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Employee name is required",
		http.StatusBadRequest,
	)
)
