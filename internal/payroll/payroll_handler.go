package payroll

import (
	"net/http"
	"strconv"

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

func (h *Handler) GetForEmployee(c *gin.Context) {
	year, month, ok := periodFromQuery(c)
	if !ok {
		return
	}

	resp, err := h.service.ComputeForEmployee(c.Request.Context(), c.Param("name"), year, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetBulk(c *gin.Context) {
	year, month, ok := periodFromQuery(c)
	if !ok {
		return
	}

	resp, err := h.service.ComputeBulk(c.Request.Context(), year, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetSummary(c *gin.Context) {
	year, month, ok := periodFromQuery(c)
	if !ok {
		return
	}

	resp, err := h.service.GroupSummary(c.Request.Context(), year, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetPayslip(c *gin.Context) {
	year, month, ok := periodFromQuery(c)
	if !ok {
		return
	}

	data, filename, err := h.service.Payslip(c.Request.Context(), c.Param("name"), year, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
