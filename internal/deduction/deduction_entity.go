package deduction

import (
	"time"

	"github.com/google/uuid"
)

// DeductionEntry holds the advance and loan amounts withheld from one
// employee's pay in one period. One row per (employee, year, month).
type DeductionEntry struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeName string    `gorm:"not null;uniqueIndex:idx_deduction_period,priority:1"`
	Year         int       `gorm:"not null;uniqueIndex:idx_deduction_period,priority:2"`
	Month        int       `gorm:"not null;uniqueIndex:idx_deduction_period,priority:3"`
	Advance      float64   `gorm:"not null;default:0"`
	Loan         float64   `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (DeductionEntry) TableName() string {
	return "deduction_entries"
}
