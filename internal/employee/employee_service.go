package employee

import (
	"context"
	"database/sql"
	"errors"
	"math"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/timeclock"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	epfEmployeeRate = 0.08
	epfEmployerRate = 0.12
	etfEmployerRate = 0.03

	standardShiftHours = 8
	overtimeMultiplier = 1.5
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Upsert(ctx context.Context, employeeName string, req UpsertPayProfileRequest) (PayProfileResponse, error)
	GetAll(ctx context.Context) ([]PayProfileResponse, error)
	GetByName(ctx context.Context, employeeName string) (PayProfileResponse, error)
	Delete(ctx context.Context, employeeName string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Upsert(ctx context.Context, employeeName string, req UpsertPayProfileRequest) (PayProfileResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayProfileResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if employeeName == "" {
		return PayProfileResponse{}, employeeerrors.ErrEmployeeNameRequired
	}

	preset, ok := presetFor(req.EmployeeType)
	if !ok {
		return PayProfileResponse{}, employeeerrors.ErrUnknownEmployeeType
	}

	row := &PayProfile{
		ID:              uuid.New(),
		EmployeeName:    employeeName,
		EmployeeType:    req.EmployeeType,
		Department:      req.Department,
		IsSalaried:      preset.Salaried,
		EPFNo:           req.EPFNo,
		BasicSalary:     orPreset(req.BasicSalary, preset.BasicSalary),
		BRA:             orPreset(req.BRA, 3000),
		DailyRate:       orPreset(req.DailyRate, preset.DailyRate),
		SundayRate:      orPreset(req.SundayRate, preset.SundayRate),
		AttendanceBonus: orPreset(req.AttendanceBonus, preset.AttendanceBonus),
		OtherAllowances: req.OtherAllowances,
		MealAllowance:   req.MealAllowance,
	}
	applyDerivedFields(row)

	if err := qtx.Upsert(ctx, row); err != nil {
		return PayProfileResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PayProfileResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]PayProfileResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]PayProfileResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByName(ctx context.Context, employeeName string) (PayProfileResponse, error) {
	row, err := s.repo.FindByName(ctx, employeeName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayProfileResponse{}, employeeerrors.ErrPayProfileNotFound
		}
		return PayProfileResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, employeeName string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, employeeName); err != nil {
		return err
	}
	return tx.Commit()
}

// applyDerivedFields recomputes every column that follows from the editable
// ones. Hourly rates round UP to the next whole rupee; contribution amounts
// round to cents.
func applyDerivedFields(p *PayProfile) {
	p.SalaryForEPF = p.BasicSalary + p.BRA
	p.HourlyRate = math.Ceil(p.DailyRate / standardShiftHours)
	p.OvertimeHourlyRate = math.Ceil(p.HourlyRate * overtimeMultiplier)
	p.EPFEmployee = timeclock.Round2(p.SalaryForEPF * epfEmployeeRate)
	p.EPFEmployer = timeclock.Round2(p.SalaryForEPF * epfEmployerRate)
	p.ETFEmployer = timeclock.Round2(p.SalaryForEPF * etfEmployerRate)
}

func orPreset(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

func mapToResponse(p PayProfile) PayProfileResponse {
	return PayProfileResponse{
		ID:                 p.ID.String(),
		EmployeeName:       p.EmployeeName,
		EmployeeType:       p.EmployeeType,
		Department:         p.Department,
		IsSalaried:         p.IsSalaried,
		EPFNo:              p.EPFNo,
		BasicSalary:        p.BasicSalary,
		BRA:                p.BRA,
		SalaryForEPF:       p.SalaryForEPF,
		DailyRate:          p.DailyRate,
		HourlyRate:         p.HourlyRate,
		OvertimeHourlyRate: p.OvertimeHourlyRate,
		SundayRate:         p.SundayRate,
		AttendanceBonus:    p.AttendanceBonus,
		OtherAllowances:    p.OtherAllowances,
		MealAllowance:      p.MealAllowance,
		EPFEmployee:        p.EPFEmployee,
		EPFEmployer:        p.EPFEmployer,
		ETFEmployer:        p.ETFEmployer,
	}
}
