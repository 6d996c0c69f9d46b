package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	UpsertBatch(ctx context.Context, rows []AttendanceRecord) error
	FindByEmployeeAndPeriod(ctx context.Context, employeeName string, from, to time.Time) ([]AttendanceRecord, error)
	DistinctEmployeeNames(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn routes statements through the bound transaction when one is set,
// riding its connection the same way gorm's own Begin does.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db = db.Session(&gorm.Session{NewDB: true})
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) UpsertBatch(ctx context.Context, rows []AttendanceRecord) error {
	if len(rows) == 0 {
		return nil
	}
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_name"}, {Name: "work_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"work_time", "clock_in", "clock_out", "absent", "updated_at"}),
		}).
		CreateInBatches(rows, 500).Error
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeName string, from, to time.Time) ([]AttendanceRecord, error) {
	var rows []AttendanceRecord
	err := r.conn(ctx).
		Where("employee_name = ?", employeeName).
		Where("work_date >= ? AND work_date < ?", from, to).
		Order("work_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) DistinctEmployeeNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.conn(ctx).
		Model(&AttendanceRecord{}).
		Distinct("employee_name").
		Order("employee_name ASC").
		Pluck("employee_name", &names).Error
	return names, err
}
