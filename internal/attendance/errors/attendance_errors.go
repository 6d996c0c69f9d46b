package attendanceerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrNoAttendanceRecords = apperror.New(
		apperror.CodeNotFound,
		"No attendance records for this employee and period",
		http.StatusNotFound,
	)

	ErrEmptyImport = apperror.New(
		apperror.CodeInvalidInput,
		"Import file contains no attendance rows",
		http.StatusBadRequest,
	)
)
