package deduction

type UpsertDeductionRequest struct {
	EmployeeName string   `json:"employee_name" binding:"required"`
	Year         int      `json:"year" binding:"required,min=2000,max=2100"`
	Month        int      `json:"month" binding:"required,min=1,max=12"`
	Advance      *float64 `json:"advance" binding:"omitempty,gte=0"`
	Loan         *float64 `json:"loan" binding:"omitempty,gte=0"`
}

// LoanScheduleRequest carries the monthly installment, not a total: the
// same amount is written to every month in the range.
type LoanScheduleRequest struct {
	EmployeeName string  `json:"employee_name" binding:"required"`
	StartYear    int     `json:"start_year" binding:"required,min=2000,max=2100"`
	StartMonth   int     `json:"start_month" binding:"required,min=1,max=12"`
	EndYear      int     `json:"end_year" binding:"required,min=2000,max=2100"`
	EndMonth     int     `json:"end_month" binding:"required,min=1,max=12"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
}

type DeductionResponse struct {
	ID           string  `json:"id"`
	EmployeeName string  `json:"employee_name"`
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	Advance      float64 `json:"advance"`
	Loan         float64 `json:"loan"`
}

type LoanScheduleResponse struct {
	EmployeeName string              `json:"employee_name"`
	Months       int                 `json:"months"`
	Amount       float64             `json:"amount"`
	Entries      []DeductionResponse `json:"entries"`
}
