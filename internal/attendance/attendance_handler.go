package attendance

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func periodFromQuery(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "year must be an integer")
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "month must be between 1 and 12")
		return 0, 0, false
	}
	return year, month, true
}

// Import accepts a multipart "file" field and dispatches on the extension.
func (h *Handler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "multipart field 'file' is required")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}
	defer f.Close()

	var summary ImportSummary
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".xlsx":
		summary, err = h.service.ImportXLSX(c.Request.Context(), f)
	case ".csv":
		summary, err = h.service.ImportCSV(c.Request.Context(), f)
	default:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "only .csv and .xlsx files are supported")
		return
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, summary, nil)
}

func (h *Handler) GetStatement(c *gin.Context) {
	year, month, ok := periodFromQuery(c)
	if !ok {
		return
	}

	resp, err := h.service.MonthlyStatement(c.Request.Context(), c.Param("name"), year, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportStatement(c *gin.Context) {
	year, month, ok := periodFromQuery(c)
	if !ok {
		return
	}

	data, filename, err := h.service.ExportMonthlyStatementXLSX(c.Request.Context(), c.Param("name"), year, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *Handler) ListEmployees(c *gin.Context) {
	names, err := h.service.ListEmployees(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, names, nil)
}
