package attendance

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecord is one employee-day as imported from the fingerprint
// machine export. Clock values are stored already normalized, so downstream
// consumers never see blank or placeholder times.
type AttendanceRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeName string    `gorm:"not null;uniqueIndex:idx_attendance_day,priority:1"`
	WorkDate     time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_day,priority:2"`
	WorkTime     string    `gorm:"not null;default:''"`
	ClockIn      string    `gorm:"not null"`
	ClockOut     string    `gorm:"not null"`
	Absent       bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
