package holiday_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/holiday"
	holidayerrors "go-payroll/internal/holiday/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type fakeHolidayRepository struct {
	createFn       func(ctx context.Context, h *holiday.Holiday) error
	findAllFn      func(ctx context.Context) ([]holiday.Holiday, error)
	findByPeriodFn func(ctx context.Context, year, month int) ([]holiday.Holiday, error)
	findByIDFn     func(ctx context.Context, id string) (*holiday.Holiday, error)
	updateFn       func(ctx context.Context, h *holiday.Holiday) error
	deleteFn       func(ctx context.Context, id string) error
}

func (f *fakeHolidayRepository) WithTx(tx *sql.Tx) holiday.Repository { return f }

func (f *fakeHolidayRepository) Create(ctx context.Context, h *holiday.Holiday) error {
	if f.createFn != nil {
		return f.createFn(ctx, h)
	}
	return nil
}

func (f *fakeHolidayRepository) FindAll(ctx context.Context) ([]holiday.Holiday, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeHolidayRepository) FindByPeriod(ctx context.Context, year, month int) ([]holiday.Holiday, error) {
	if f.findByPeriodFn != nil {
		return f.findByPeriodFn(ctx, year, month)
	}
	return nil, nil
}

func (f *fakeHolidayRepository) FindByID(ctx context.Context, id string) (*holiday.Holiday, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeHolidayRepository) Update(ctx context.Context, h *holiday.Holiday) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, h)
	}
	return nil
}

func (f *fakeHolidayRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type holidayDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service holiday.Service
	repo    *fakeHolidayRepository
}

func setupHolidayTest(t *testing.T) *holidayDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeHolidayRepository{}
	svc := holiday.NewService(db, repo)

	return &holidayDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
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

func TestHolidayService_Create(t *testing.T) {
	deps := setupHolidayTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("denormalizes year and month from the date", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.createFn = func(ctx context.Context, h *holiday.Holiday) error {
			assert.Equal(t, 2024, h.Year)
			assert.Equal(t, 4, h.Month)
			assert.Equal(t, "New Year Festival", h.HolidayName)
			return nil
		}

		resp, err := deps.service.Create(ctx, holiday.CreateHolidayRequest{
			HolidayDate: "2024-04-13",
			HolidayName: "New Year Festival",
		})

		assert.NoError(t, err)
		assert.Equal(t, "2024-04-13", resp.HolidayDate)
		assert.Equal(t, "Saturday", resp.DayOfWeek)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid date", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Create(ctx, holiday.CreateHolidayRequest{
			HolidayDate: "13/04/2024",
			HolidayName: "New Year Festival",
		})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate date maps to conflict", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.createFn = func(ctx context.Context, h *holiday.Holiday) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_holiday_date"}
		}

		_, err := deps.service.Create(ctx, holiday.CreateHolidayRequest{
			HolidayDate: "2024-04-13",
			HolidayName: "New Year Festival",
		})

		assert.ErrorIs(t, err, holidayerrors.ErrHolidayDateAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestHolidayService_MonthStats(t *testing.T) {
	deps := setupHolidayTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("splits the month and its holidays", func(t *testing.T) {
		// April 2024: 30 days, 4 Sundays (7, 14, 21, 28).
		deps.repo.findByPeriodFn = func(ctx context.Context, year, month int) ([]holiday.Holiday, error) {
			assert.Equal(t, 2024, year)
			assert.Equal(t, 4, month)
			return []holiday.Holiday{
				{HolidayDate: time.Date(2024, 4, 11, 0, 0, 0, 0, time.UTC), HolidayName: "Eid"},      // Thursday
				{HolidayDate: time.Date(2024, 4, 13, 0, 0, 0, 0, time.UTC), HolidayName: "Aluth"},    // Saturday
				{HolidayDate: time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC), HolidayName: "Avurudu"},  // Sunday
				{HolidayDate: time.Date(2024, 4, 23, 0, 0, 0, 0, time.UTC), HolidayName: "Poya Day"}, // Tuesday
			}, nil
		}

		stats, err := deps.service.MonthStats(ctx, 2024, 4)

		assert.NoError(t, err)
		assert.Equal(t, 30, stats.TotalDays)
		assert.Equal(t, 4, stats.TotalSundays)
		assert.Equal(t, 26, stats.TotalWeekdays)
		assert.Equal(t, 2, stats.WeekdayHolidays)
		assert.Equal(t, 2, stats.WeekendHolidays)
		assert.True(t, stats.IsHoliday("2024-04-11"))
		assert.False(t, stats.IsHoliday("2024-04-12"))
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := deps.service.MonthStats(ctx, 2024, 13)
		assert.Error(t, err)
	})

	t.Run("repo error", func(t *testing.T) {
		deps.repo.findByPeriodFn = func(ctx context.Context, year, month int) ([]holiday.Holiday, error) {
			return nil, errors.New("db error")
		}
		_, err := deps.service.MonthStats(ctx, 2024, 4)
		assert.Error(t, err)
	})
}

func TestHolidayService_Update(t *testing.T) {
	deps := setupHolidayTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("rewrites denormalized period on date change", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*holiday.Holiday, error) {
			return &holiday.Holiday{
				HolidayDate: time.Date(2024, 4, 13, 0, 0, 0, 0, time.UTC),
				HolidayName: "Aluth Avurudu",
				Year:        2024,
				Month:       4,
			}, nil
		}
		deps.repo.updateFn = func(ctx context.Context, h *holiday.Holiday) error {
			assert.Equal(t, 2024, h.Year)
			assert.Equal(t, 5, h.Month)
			return nil
		}

		resp, err := deps.service.Update(ctx, "some-id", holiday.UpdateHolidayRequest{
			HolidayDate: "2024-05-01",
			HolidayName: "May Day",
		})

		assert.NoError(t, err)
		assert.Equal(t, "2024-05-01", resp.HolidayDate)
		assert.Equal(t, 5, resp.Month)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
