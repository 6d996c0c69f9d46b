package deduction

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=deduction_repo.go -destination=mock/deduction_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, e *DeductionEntry) error
	FindByKey(ctx context.Context, employeeName string, year, month int) (*DeductionEntry, error)
	FindAllByPeriod(ctx context.Context, year, month int) ([]DeductionEntry, error)
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

func (r *repository) Upsert(ctx context.Context, e *DeductionEntry) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_name"}, {Name: "year"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"advance", "loan", "updated_at"}),
		}).
		Create(e).Error
}

func (r *repository) FindByKey(ctx context.Context, employeeName string, year, month int) (*DeductionEntry, error) {
	var e DeductionEntry
	err := r.conn(ctx).
		Where("employee_name = ?", employeeName).
		Where("year = ?", year).
		Where("month = ?", month).
		First(&e).Error
	return &e, err
}

func (r *repository) FindAllByPeriod(ctx context.Context, year, month int) ([]DeductionEntry, error) {
	var rows []DeductionEntry
	err := r.conn(ctx).
		Where("year = ?", year).
		Where("month = ?", month).
		Order("employee_name ASC").
		Find(&rows).Error
	return rows, err
}
