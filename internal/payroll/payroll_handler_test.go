package payroll_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-payroll/internal/attendance"
	attendanceerrors "go-payroll/internal/attendance/errors"
	"go-payroll/internal/payroll"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakePayrollService struct {
	computeForEmployeeFn func(ctx context.Context, name string, year, month int) (payroll.PayrollResponse, error)
	computeBulkFn        func(ctx context.Context, year, month int) (payroll.BulkPayrollResponse, error)
	groupSummaryFn       func(ctx context.Context, year, month int) (payroll.GroupSummaryResponse, error)
	payslipFn            func(ctx context.Context, name string, year, month int) ([]byte, string, error)
}

func (f *fakePayrollService) ComputeForEmployee(ctx context.Context, name string, year, month int) (payroll.PayrollResponse, error) {
	return f.computeForEmployeeFn(ctx, name, year, month)
}
func (f *fakePayrollService) ComputeBulk(ctx context.Context, year, month int) (payroll.BulkPayrollResponse, error) {
	return f.computeBulkFn(ctx, year, month)
}
func (f *fakePayrollService) GroupSummary(ctx context.Context, year, month int) (payroll.GroupSummaryResponse, error) {
	return f.groupSummaryFn(ctx, year, month)
}
func (f *fakePayrollService) Payslip(ctx context.Context, name string, year, month int) ([]byte, string, error) {
	return f.payslipFn(ctx, name, year, month)
}

func TestHandler_GetForEmployee(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePayrollService{
		computeForEmployeeFn: func(ctx context.Context, name string, year, month int) (payroll.PayrollResponse, error) {
			assert.Equal(t, "Kasun Perera", name)
			assert.Equal(t, 2024, year)
			assert.Equal(t, 4, month)
			return payroll.PayrollResponse{
				EmployeeName: name,
				Year:         year,
				Month:        month,
				Totals:       attendance.MonthlyTotals{WeekdayFullDays: 20},
				Figures:      payroll.CalcResult{Gross: 21500, Net: 19340},
			}, nil
		},
	}
	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "name", Value: "Kasun Perera"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/Kasun%20Perera?year=2024&month=4", nil)
	h.GetForEmployee(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "19340")

	// missing period params are a validation error, not a panic
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/payrolls/Kasun%20Perera", nil)
	h.GetForEmployee(c2)

	assert.Equal(t, http.StatusBadRequest, w2.Code)
	assert.Contains(t, w2.Body.String(), "VALIDATION_ERROR")
}

func TestHandler_GetForEmployee_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePayrollService{
		computeForEmployeeFn: func(ctx context.Context, name string, year, month int) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{}, attendanceerrors.ErrNoAttendanceRecords
		},
	}
	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "name", Value: "Unknown"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/Unknown?year=2024&month=4", nil)
	h.GetForEmployee(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetPayslip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePayrollService{
		payslipFn: func(ctx context.Context, name string, year, month int) ([]byte, string, error) {
			return []byte("%PDF-1.4"), "payslip_Kasun_Perera_2024_04.pdf", nil
		},
	}
	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "name", Value: "Kasun Perera"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/Kasun%20Perera/payslip?year=2024&month=4", nil)
	h.GetPayslip(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "payslip_Kasun_Perera_2024_04.pdf")
}
