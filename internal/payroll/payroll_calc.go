package payroll

import (
	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	"go-payroll/internal/holiday"
	"go-payroll/internal/timeclock"
)

// bonusGraceDays is the fixed allowance subtracted from the attendance
// bonus threshold: an employee may miss up to two weekdays beyond the
// month's weekday holidays and still keep the bonus.
const bonusGraceDays = 2

type CalcInput struct {
	Profile employee.PayProfileResponse
	Totals  attendance.MonthlyTotals
	Stats   holiday.MonthStats
	Advance float64
	Loan    float64
}

type CalcResult struct {
	BaseSalary     float64 `json:"base_salary"`
	SundayPay      float64 `json:"sunday_pay"`
	OvertimePay    float64 `json:"overtime_pay"`
	BonusThreshold int     `json:"bonus_threshold"`
	Bonus          float64 `json:"bonus"`
	Gross          float64 `json:"gross"`
	EPFEmployee    float64 `json:"epf_employee"`
	EPFEmployer    float64 `json:"epf_employer"`
	ETFEmployer    float64 `json:"etf_employer"`
	Advance        float64 `json:"advance"`
	Loan           float64 `json:"loan"`
	Net            float64 `json:"net"`
}

// Calculate turns one employee-month of attendance totals, the pay profile,
// and the period's deductions into final payroll figures. It is a pure
// function; every monetary value is rounded to cents where it is computed.
//
// Salaried profiles skip the attendance-derived pay entirely: base pay is
// the EPF-eligible salary, Sunday and overtime pay are zero, and the bonus
// is granted without thresholding.
func Calculate(in CalcInput) CalcResult {
	p := in.Profile
	t := in.Totals

	res := CalcResult{
		BonusThreshold: in.Stats.TotalWeekdays - in.Stats.WeekdayHolidays - bonusGraceDays,
		Advance:        in.Advance,
		Loan:           in.Loan,
	}

	if p.IsSalaried {
		res.BaseSalary = timeclock.Round2(p.SalaryForEPF)
		res.Bonus = timeclock.Round2(p.AttendanceBonus)
	} else {
		res.BaseSalary = timeclock.Round2(
			float64(t.WeekdayFullDays)*p.DailyRate + float64(t.WeekdayHalfDays)*p.DailyRate/2,
		)
		res.SundayPay = timeclock.Round2(
			float64(t.SundayFullDays)*p.SundayRate + float64(t.SundayHalfDays)*p.SundayRate/2,
		)
		res.OvertimePay = timeclock.Round2(float64(t.OvertimeHours) * p.OvertimeHourlyRate)
		if t.WeekdayFullDays >= res.BonusThreshold {
			res.Bonus = timeclock.Round2(p.AttendanceBonus)
		}
	}

	res.Gross = timeclock.Round2(
		res.BaseSalary + res.OvertimePay + res.SundayPay + res.Bonus +
			p.OtherAllowances + p.MealAllowance,
	)

	// Contributions always come off basic+BRA, never off gross. Only the
	// employee's own EPF share is withheld from pay.
	res.EPFEmployee = timeclock.Round2(p.SalaryForEPF * epfEmployeeRate)
	res.EPFEmployer = timeclock.Round2(p.SalaryForEPF * epfEmployerRate)
	res.ETFEmployer = timeclock.Round2(p.SalaryForEPF * etfEmployerRate)

	res.Net = timeclock.Round2(res.Gross - res.Advance - res.Loan - res.EPFEmployee)
	return res
}

const (
	epfEmployeeRate = 0.08
	epfEmployerRate = 0.12
	etfEmployerRate = 0.03
)
