package employee

import (
	"time"

	"github.com/google/uuid"
)

// PayProfile is the static pay configuration for one employee. Attendance
// exports carry no employee ids, so the name is the natural key and saves
// replace the prior row.
//
// SalaryForEPF, HourlyRate, OvertimeHourlyRate and the contribution amounts
// are derived columns: the service recomputes them on every save and they
// are never written independently.
type PayProfile struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeName string    `gorm:"column:employee_name;type:varchar(120);not null;uniqueIndex:uq_pay_profile_employee"`
	EmployeeType string    `gorm:"column:employee_type;type:varchar(60);not null"`
	Department   string    `gorm:"column:department;type:varchar(60)"`

	// Salaried staff are paid the EPF-eligible salary regardless of
	// attendance; the flag drives the payroll override.
	IsSalaried bool `gorm:"column:is_salaried;not null;default:false"`

	EPFNo string `gorm:"column:epf_no;type:varchar(30)"`

	BasicSalary  float64 `gorm:"column:basic_salary;not null;default:0"`
	BRA          float64 `gorm:"column:bra;not null;default:0"`
	SalaryForEPF float64 `gorm:"column:salary_for_epf;not null;default:0"`

	DailyRate          float64 `gorm:"column:daily_rate;not null;default:0"`
	HourlyRate         float64 `gorm:"column:hourly_rate;not null;default:0"`
	OvertimeHourlyRate float64 `gorm:"column:overtime_hourly_rate;not null;default:0"`
	SundayRate         float64 `gorm:"column:sunday_rate;not null;default:0"`

	AttendanceBonus float64 `gorm:"column:attendance_bonus;not null;default:0"`
	OtherAllowances float64 `gorm:"column:other_allowances;not null;default:0"`
	MealAllowance   float64 `gorm:"column:meal_allowance;not null;default:0"`

	EPFEmployee float64 `gorm:"column:epf_employee;not null;default:0"`
	EPFEmployer float64 `gorm:"column:epf_employer;not null;default:0"`
	ETFEmployer float64 `gorm:"column:etf_employer;not null;default:0"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (PayProfile) TableName() string {
	return "pay_profiles"
}
