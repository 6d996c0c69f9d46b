package payroll

import (
	"go-payroll/internal/attendance"
)

type PayrollResponse struct {
	EmployeeName string                   `json:"employee_name"`
	EmployeeType string                   `json:"employee_type"`
	Department   string                   `json:"department"`
	Year         int                      `json:"year"`
	Month        int                      `json:"month"`
	Totals       attendance.MonthlyTotals `json:"totals"`
	Figures      CalcResult               `json:"figures"`
}

type BulkPayrollResponse struct {
	Year    int               `json:"year"`
	Month   int               `json:"month"`
	Results []PayrollResponse `json:"results"`
	Skipped []string          `json:"skipped"`
}

// GroupTotals is one department's (or employee type's) roll-up line. Gross
// here is the static monthly figure basic+BRA+allowances+bonus, matching the
// summary sheet the accounts office reconciles against.
type GroupTotals struct {
	Group       string  `json:"group"`
	Employees   int     `json:"employees"`
	Gross       float64 `json:"gross"`
	Advance     float64 `json:"advance"`
	Loan        float64 `json:"loan"`
	EPFEmployee float64 `json:"epf_employee"`
	ETFEmployer float64 `json:"etf_employer"`
}

type GroupSummaryResponse struct {
	Year       int           `json:"year"`
	Month      int           `json:"month"`
	Groups     []GroupTotals `json:"groups"`
	GrandTotal GroupTotals   `json:"grand_total"`
}
