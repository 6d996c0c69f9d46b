package deduction_test

import (
	"context"
	"database/sql"
	"testing"

	"go-payroll/internal/deduction"
	deductionerrors "go-payroll/internal/deduction/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type entryKey struct {
	name  string
	year  int
	month int
}

type fakeDeductionRepository struct {
	entries map[entryKey]*deduction.DeductionEntry

	upsertFn          func(ctx context.Context, e *deduction.DeductionEntry) error
	findAllByPeriodFn func(ctx context.Context, year, month int) ([]deduction.DeductionEntry, error)
}

func newFakeDeductionRepository() *fakeDeductionRepository {
	return &fakeDeductionRepository{entries: map[entryKey]*deduction.DeductionEntry{}}
}

func (f *fakeDeductionRepository) WithTx(tx *sql.Tx) deduction.Repository { return f }

func (f *fakeDeductionRepository) Upsert(ctx context.Context, e *deduction.DeductionEntry) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, e)
	}
	cp := *e
	f.entries[entryKey{e.EmployeeName, e.Year, e.Month}] = &cp
	return nil
}

func (f *fakeDeductionRepository) FindByKey(ctx context.Context, employeeName string, year, month int) (*deduction.DeductionEntry, error) {
	if e, ok := f.entries[entryKey{employeeName, year, month}]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDeductionRepository) FindAllByPeriod(ctx context.Context, year, month int) ([]deduction.DeductionEntry, error) {
	if f.findAllByPeriodFn != nil {
		return f.findAllByPeriodFn(ctx, year, month)
	}
	var rows []deduction.DeductionEntry
	for k, e := range f.entries {
		if k.year == year && k.month == month {
			rows = append(rows, *e)
		}
	}
	return rows, nil
}

type deductionDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service deduction.Service
	repo    *fakeDeductionRepository
}

func setupDeductionTest(t *testing.T) *deductionDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := newFakeDeductionRepository()
	svc := deduction.NewService(db, repo)

	return &deductionDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestDeductionService_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a fresh entry", func(t *testing.T) {
		deps := setupDeductionTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.Upsert(ctx, deduction.UpsertDeductionRequest{
			EmployeeName: "Kasun Perera",
			Year:         2024,
			Month:        4,
			Advance:      floatPtr(5000),
		})

		assert.NoError(t, err)
		assert.Equal(t, 5000.0, resp.Advance)
		assert.Equal(t, 0.0, resp.Loan)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("omitted fields keep the stored value", func(t *testing.T) {
		deps := setupDeductionTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)
		expectTx(t, deps.sqlMock, true)

		_, err := deps.service.Upsert(ctx, deduction.UpsertDeductionRequest{
			EmployeeName: "Kasun Perera",
			Year:         2024,
			Month:        4,
			Loan:         floatPtr(2500),
		})
		assert.NoError(t, err)

		// a later advance entry must not wipe the loan installment
		resp, err := deps.service.Upsert(ctx, deduction.UpsertDeductionRequest{
			EmployeeName: "Kasun Perera",
			Year:         2024,
			Month:        4,
			Advance:      floatPtr(5000),
		})

		assert.NoError(t, err)
		assert.Equal(t, 5000.0, resp.Advance)
		assert.Equal(t, 2500.0, resp.Loan)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestDeductionService_ApplyLoanSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the installment into every month of the range", func(t *testing.T) {
		deps := setupDeductionTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.ApplyLoanSchedule(ctx, deduction.LoanScheduleRequest{
			EmployeeName: "Kasun Perera",
			StartYear:    2024,
			StartMonth:   1,
			EndYear:      2024,
			EndMonth:     3,
			Amount:       500,
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.Months)
		assert.Equal(t, 500.0, resp.Amount)
		assert.Len(t, resp.Entries, 3)
		assert.Equal(t, 2024, resp.Entries[0].Year)
		assert.Equal(t, 1, resp.Entries[0].Month)
		assert.Equal(t, 2024, resp.Entries[1].Year)
		assert.Equal(t, 2, resp.Entries[1].Month)
		assert.Equal(t, 2024, resp.Entries[2].Year)
		assert.Equal(t, 3, resp.Entries[2].Month)
		// the amount is per month, never divided across the range
		for _, e := range resp.Entries {
			assert.Equal(t, 500.0, e.Loan)
			assert.Equal(t, 0.0, e.Advance)
		}
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("range crossing a year boundary", func(t *testing.T) {
		deps := setupDeductionTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.ApplyLoanSchedule(ctx, deduction.LoanScheduleRequest{
			EmployeeName: "Kasun Perera",
			StartYear:    2024,
			StartMonth:   11,
			EndYear:      2025,
			EndMonth:     1,
			Amount:       10000,
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.Months)
		assert.Equal(t, 2024, resp.Entries[1].Year)
		assert.Equal(t, 12, resp.Entries[1].Month)
		assert.Equal(t, 2025, resp.Entries[2].Year)
		assert.Equal(t, 1, resp.Entries[2].Month)
		for _, e := range resp.Entries {
			assert.Equal(t, 10000.0, e.Loan)
		}
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("keeps advances already entered for scheduled months", func(t *testing.T) {
		deps := setupDeductionTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)
		expectTx(t, deps.sqlMock, true)

		_, err := deps.service.Upsert(ctx, deduction.UpsertDeductionRequest{
			EmployeeName: "Kasun Perera",
			Year:         2024,
			Month:        12,
			Advance:      floatPtr(4000),
		})
		assert.NoError(t, err)

		resp, err := deps.service.ApplyLoanSchedule(ctx, deduction.LoanScheduleRequest{
			EmployeeName: "Kasun Perera",
			StartYear:    2024,
			StartMonth:   11,
			EndYear:      2025,
			EndMonth:     1,
			Amount:       10000,
		})

		assert.NoError(t, err)
		assert.Equal(t, 4000.0, resp.Entries[1].Advance)
		assert.Equal(t, 10000.0, resp.Entries[1].Loan)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("single month schedule", func(t *testing.T) {
		deps := setupDeductionTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.ApplyLoanSchedule(ctx, deduction.LoanScheduleRequest{
			EmployeeName: "Kasun Perera",
			StartYear:    2024,
			StartMonth:   4,
			EndYear:      2024,
			EndMonth:     4,
			Amount:       12000,
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Months)
		assert.Equal(t, 12000.0, resp.Amount)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		deps := setupDeductionTest(t)
		defer deps.db.Close()

		_, err := deps.service.ApplyLoanSchedule(ctx, deduction.LoanScheduleRequest{
			EmployeeName: "Kasun Perera",
			StartYear:    2024,
			StartMonth:   6,
			EndYear:      2024,
			EndMonth:     3,
			Amount:       500,
		})

		assert.ErrorIs(t, err, deductionerrors.ErrScheduleEndsBeforeStart)
	})
}

func TestDeductionService_Lookup(t *testing.T) {
	ctx := context.Background()

	t.Run("missing entry reads as zero deductions", func(t *testing.T) {
		deps := setupDeductionTest(t)
		defer deps.db.Close()

		resp, err := deps.service.Lookup(ctx, "Unknown", 2024, 4)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, resp.Advance)
		assert.Equal(t, 0.0, resp.Loan)
		assert.Equal(t, "Unknown", resp.EmployeeName)
	})

	t.Run("existing entry is returned", func(t *testing.T) {
		deps := setupDeductionTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		_, err := deps.service.Upsert(ctx, deduction.UpsertDeductionRequest{
			EmployeeName: "Kasun Perera",
			Year:         2024,
			Month:        4,
			Advance:      floatPtr(1500),
			Loan:         floatPtr(2500),
		})
		assert.NoError(t, err)

		resp, err := deps.service.Lookup(ctx, "Kasun Perera", 2024, 4)

		assert.NoError(t, err)
		assert.Equal(t, 1500.0, resp.Advance)
		assert.Equal(t, 2500.0, resp.Loan)
	})
}
