package holiday

type CreateHolidayRequest struct {
	HolidayDate string `json:"holiday_date" binding:"required"`
	HolidayName string `json:"holiday_name" binding:"required"`
}

type UpdateHolidayRequest struct {
	HolidayDate string `json:"holiday_date" binding:"required"`
	HolidayName string `json:"holiday_name" binding:"required"`
}

type HolidayResponse struct {
	ID          string `json:"id"`
	HolidayDate string `json:"holiday_date"`
	HolidayName string `json:"holiday_name"`
	DayOfWeek   string `json:"day_of_week"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
}

// MonthStats is the calendar arithmetic the payroll calculator consumes:
// how the month splits into weekdays and Sundays, and how many holidays
// fall on each side.
type MonthStats struct {
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	TotalDays       int             `json:"total_days"`
	TotalSundays    int             `json:"total_sundays"`
	TotalWeekdays   int             `json:"total_weekdays"`
	WeekdayHolidays int             `json:"weekday_holidays"`
	WeekendHolidays int             `json:"weekend_holidays"`
	Dates           map[string]bool `json:"-"`
}

// IsHoliday reports membership for an ISO date string (2006-01-02).
func (s MonthStats) IsHoliday(date string) bool {
	return s.Dates[date]
}
