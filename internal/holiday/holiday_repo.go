package holiday

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, h *Holiday) error
	FindAll(ctx context.Context) ([]Holiday, error)
	FindByPeriod(ctx context.Context, year, month int) ([]Holiday, error)
	FindByID(ctx context.Context, id string) (*Holiday, error)
	Update(ctx context.Context, h *Holiday) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, h *Holiday) error {
	return r.conn(ctx).Create(h).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Holiday, error) {
	var rows []Holiday
	err := r.conn(ctx).
		Order("holiday_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByPeriod(ctx context.Context, year, month int) ([]Holiday, error) {
	var rows []Holiday
	err := r.conn(ctx).
		Where("year = ?", year).
		Where("month = ?", month).
		Order("holiday_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Holiday, error) {
	var h Holiday
	err := r.conn(ctx).First(&h, "id = ?", id).Error
	return &h, err
}

func (r *repository) Update(ctx context.Context, h *Holiday) error {
	return r.conn(ctx).Save(h).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).Delete(&Holiday{}, "id = ?", id).Error
}
