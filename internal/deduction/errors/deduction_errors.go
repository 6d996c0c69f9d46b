package deductionerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrScheduleEndsBeforeStart = apperror.New(
		apperror.CodeInvalidInput,
		"Loan schedule end period is before its start period",
		http.StatusBadRequest,
	)
)
