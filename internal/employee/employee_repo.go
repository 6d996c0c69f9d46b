package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, p *PayProfile) error
	FindAll(ctx context.Context) ([]PayProfile, error)
	FindByName(ctx context.Context, employeeName string) (*PayProfile, error)
	Delete(ctx context.Context, employeeName string) error
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

// Upsert replaces the whole row on name conflict; a profile save is always
// a full snapshot of the form.
func (r *repository) Upsert(ctx context.Context, p *PayProfile) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_name"}},
			UpdateAll: true,
		}).
		Create(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]PayProfile, error) {
	var rows []PayProfile
	err := r.conn(ctx).
		Order("employee_name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByName(ctx context.Context, employeeName string) (*PayProfile, error) {
	var p PayProfile
	err := r.conn(ctx).
		First(&p, "employee_name = ?", employeeName).Error
	return &p, err
}

func (r *repository) Delete(ctx context.Context, employeeName string) error {
	return r.conn(ctx).
		Delete(&PayProfile{}, "employee_name = ?", employeeName).Error
}
