package holiday

import (
	"time"

	"github.com/google/uuid"
)

// Holiday is one calendar entry. Year and Month are denormalized from
// HolidayDate and rewritten on every save so date filters stay cheap.
type Holiday struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	HolidayDate time.Time `gorm:"column:holiday_date;type:date;not null;uniqueIndex:uq_holiday_date"`
	HolidayName string    `gorm:"column:holiday_name;type:varchar(120);not null"`
	Year        int       `gorm:"column:year;not null;index:idx_holiday_period"`
	Month       int       `gorm:"column:month;not null;index:idx_holiday_period"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Holiday) TableName() string {
	return "holidays"
}
