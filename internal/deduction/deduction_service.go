package deduction

import (
	"context"
	"database/sql"
	"errors"

	deductionerrors "go-payroll/internal/deduction/errors"
	"go-payroll/internal/timeclock"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=deduction_service.go -destination=mock/deduction_service_mock.go -package=mock
type Service interface {
	Upsert(ctx context.Context, req UpsertDeductionRequest) (DeductionResponse, error)
	ApplyLoanSchedule(ctx context.Context, req LoanScheduleRequest) (LoanScheduleResponse, error)
	Lookup(ctx context.Context, employeeName string, year, month int) (DeductionResponse, error)
	ListByPeriod(ctx context.Context, year, month int) ([]DeductionResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

// Upsert records deduction amounts for one employee and period. Fields left
// out of the request keep whatever value the existing row holds, so an
// advance can be entered without wiping a running loan installment.
func (s *service) Upsert(ctx context.Context, req UpsertDeductionRequest) (DeductionResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DeductionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := s.loadOrBlank(ctx, qtx, req.EmployeeName, req.Year, req.Month)
	if err != nil {
		return DeductionResponse{}, err
	}

	if req.Advance != nil {
		row.Advance = timeclock.Round2(*req.Advance)
	}
	if req.Loan != nil {
		row.Loan = timeclock.Round2(*req.Loan)
	}

	if err := qtx.Upsert(ctx, row); err != nil {
		return DeductionResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return DeductionResponse{}, err
	}
	return mapToResponse(*row), nil
}

// ApplyLoanSchedule writes the installment amount into every month between
// the start and end periods inclusive. Advances already recorded for those
// months are kept; only the loan column is overwritten.
func (s *service) ApplyLoanSchedule(ctx context.Context, req LoanScheduleRequest) (LoanScheduleResponse, error) {
	months := (req.EndYear-req.StartYear)*12 + (req.EndMonth - req.StartMonth) + 1
	if months < 1 {
		return LoanScheduleResponse{}, deductionerrors.ErrScheduleEndsBeforeStart
	}
	amount := timeclock.Round2(req.Amount)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LoanScheduleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	entries := make([]DeductionResponse, 0, months)
	year, month := req.StartYear, req.StartMonth
	for i := 0; i < months; i++ {
		row, err := s.loadOrBlank(ctx, qtx, req.EmployeeName, year, month)
		if err != nil {
			return LoanScheduleResponse{}, err
		}
		row.Loan = amount

		if err := qtx.Upsert(ctx, row); err != nil {
			return LoanScheduleResponse{}, err
		}
		entries = append(entries, mapToResponse(*row))

		month++
		if month > 12 {
			month = 1
			year++
		}
	}

	if err := tx.Commit(); err != nil {
		return LoanScheduleResponse{}, err
	}
	return LoanScheduleResponse{
		EmployeeName: req.EmployeeName,
		Months:       months,
		Amount:       amount,
		Entries:      entries,
	}, nil
}

// Lookup never fails on a missing row. An employee with no entry for the
// period simply has nothing withheld.
func (s *service) Lookup(ctx context.Context, employeeName string, year, month int) (DeductionResponse, error) {
	row, err := s.repo.FindByKey(ctx, employeeName, year, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DeductionResponse{
				EmployeeName: employeeName,
				Year:         year,
				Month:        month,
			}, nil
		}
		return DeductionResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) ListByPeriod(ctx context.Context, year, month int) ([]DeductionResponse, error) {
	rows, err := s.repo.FindAllByPeriod(ctx, year, month)
	if err != nil {
		return nil, err
	}

	res := make([]DeductionResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) loadOrBlank(ctx context.Context, repo Repository, employeeName string, year, month int) (*DeductionEntry, error) {
	row, err := repo.FindByKey(ctx, employeeName, year, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &DeductionEntry{
				ID:           uuid.New(),
				EmployeeName: employeeName,
				Year:         year,
				Month:        month,
			}, nil
		}
		return nil, err
	}
	return row, nil
}

func mapToResponse(e DeductionEntry) DeductionResponse {
	return DeductionResponse{
		ID:           e.ID.String(),
		EmployeeName: e.EmployeeName,
		Year:         e.Year,
		Month:        e.Month,
		Advance:      e.Advance,
		Loan:         e.Loan,
	}
}
