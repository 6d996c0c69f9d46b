package employee

// UpsertPayProfileRequest carries the editable profile fields. Rate and
// salary fields left nil fall back to the employee-type preset.
type UpsertPayProfileRequest struct {
	EmployeeType    string   `json:"employee_type" binding:"required"`
	Department      string   `json:"department"`
	EPFNo           string   `json:"epf_no"`
	BasicSalary     *float64 `json:"basic_salary"`
	BRA             *float64 `json:"bra"`
	DailyRate       *float64 `json:"daily_rate"`
	SundayRate      *float64 `json:"sunday_rate"`
	AttendanceBonus *float64 `json:"attendance_bonus"`
	OtherAllowances float64  `json:"other_allowances"`
	MealAllowance   float64  `json:"meal_allowance"`
}

type PayProfileResponse struct {
	ID                 string  `json:"id"`
	EmployeeName       string  `json:"employee_name"`
	EmployeeType       string  `json:"employee_type"`
	Department         string  `json:"department,omitempty"`
	IsSalaried         bool    `json:"is_salaried"`
	EPFNo              string  `json:"epf_no,omitempty"`
	BasicSalary        float64 `json:"basic_salary"`
	BRA                float64 `json:"bra"`
	SalaryForEPF       float64 `json:"salary_for_epf"`
	DailyRate          float64 `json:"daily_rate"`
	HourlyRate         float64 `json:"hourly_rate"`
	OvertimeHourlyRate float64 `json:"overtime_hourly_rate"`
	SundayRate         float64 `json:"sunday_rate"`
	AttendanceBonus    float64 `json:"attendance_bonus"`
	OtherAllowances    float64 `json:"other_allowances"`
	MealAllowance      float64 `json:"meal_allowance"`
	EPFEmployee        float64 `json:"epf_employee"`
	EPFEmployer        float64 `json:"epf_employer"`
	ETFEmployer        float64 `json:"etf_employer"`
}
