package attendance

type ImportSummary struct {
	RowsImported int      `json:"rows_imported"`
	Employees    []string `json:"employees"`
}

// DayRecordResponse is one attendance row with every derived figure the
// payroll calculator reads off it.
type DayRecordResponse struct {
	Date          string  `json:"date"`
	DayOfWeek     string  `json:"day_of_week"`
	WorkTime      string  `json:"work_time"`
	ClockIn       string  `json:"clock_in"`
	ClockOut      string  `json:"clock_out"`
	Absent        bool    `json:"absent"`
	AttendedHours float64 `json:"attended_hours"`
	RoundedHours  int     `json:"rounded_hours"`
	DayUnit       float64 `json:"day_unit"`
	OvertimeHours int     `json:"overtime_hours"`
	LateHours     float64 `json:"late_hours"`
	EarlyHours    float64 `json:"early_hours"`
	IsSunday      bool    `json:"is_sunday"`
	IsHoliday     bool    `json:"is_holiday"`
}

// MonthlyTotals buckets a month of day records the way pay is computed:
// full and half days split by weekday versus Sunday, overtime counted on
// weekdays only. WorkedDays is the count of days with any credited unit.
type MonthlyTotals struct {
	WeekdayFullDays   int     `json:"weekday_full_days"`
	WeekdayHalfDays   int     `json:"weekday_half_days"`
	SundayFullDays    int     `json:"sunday_full_days"`
	SundayHalfDays    int     `json:"sunday_half_days"`
	WorkedDays        int     `json:"worked_days"`
	OvertimeHours     int     `json:"overtime_hours"`
	TotalRoundedHours int     `json:"total_rounded_hours"`
	AbsentDays        int     `json:"absent_days"`
	LateHours         float64 `json:"late_hours"`
	EarlyHours        float64 `json:"early_hours"`
}

type MonthlyStatementResponse struct {
	EmployeeName string              `json:"employee_name"`
	Year         int                 `json:"year"`
	Month        int                 `json:"month"`
	Days         []DayRecordResponse `json:"days"`
	Totals       MonthlyTotals       `json:"totals"`
}
