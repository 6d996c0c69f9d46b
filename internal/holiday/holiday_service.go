package holiday

import (
	"context"
	"database/sql"
	"errors"
	"time"

	holidayerrors "go-payroll/internal/holiday/errors"
	"go-payroll/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	GetAll(ctx context.Context, year, month int) ([]HolidayResponse, error)
	Update(ctx context.Context, id string, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	MonthStats(ctx context.Context, year, month int) (MonthStats, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HolidayResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	date, err := time.Parse(dateLayout, req.HolidayDate)
	if err != nil {
		return HolidayResponse{}, apperror.New(apperror.CodeInvalidInput, "invalid holiday date, expected YYYY-MM-DD", 400)
	}

	row := &Holiday{
		ID:          uuid.New(),
		HolidayDate: date,
		HolidayName: req.HolidayName,
		Year:        date.Year(),
		Month:       int(date.Month()),
	}

	if err := qtx.Create(ctx, row); err != nil {
		return HolidayResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return HolidayResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, year, month int) ([]HolidayResponse, error) {
	var (
		rows []Holiday
		err  error
	)
	if year > 0 && month > 0 {
		rows, err = s.repo.FindByPeriod(ctx, year, month)
	} else {
		rows, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	res := make([]HolidayResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateHolidayRequest) (HolidayResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HolidayResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return HolidayResponse{}, apperror.ErrNotFound
		}
		return HolidayResponse{}, err
	}

	date, err := time.Parse(dateLayout, req.HolidayDate)
	if err != nil {
		return HolidayResponse{}, apperror.New(apperror.CodeInvalidInput, "invalid holiday date, expected YYYY-MM-DD", 400)
	}

	// Year/Month always follow the date; they are never written independently.
	row.HolidayDate = date
	row.HolidayName = req.HolidayName
	row.Year = date.Year()
	row.Month = int(date.Month())

	if err := qtx.Update(ctx, row); err != nil {
		return HolidayResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return HolidayResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}
	return tx.Commit()
}

// MonthStats walks the month's calendar once: day totals come from the
// calendar itself, holiday splits from the stored entries for that period.
func (s *service) MonthStats(ctx context.Context, year, month int) (MonthStats, error) {
	if month < 1 || month > 12 {
		return MonthStats{}, apperror.New(apperror.CodeInvalidInput, "month must be between 1 and 12", 400)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	totalDays := first.AddDate(0, 1, -1).Day()

	sundays := 0
	for d := 0; d < totalDays; d++ {
		if first.AddDate(0, 0, d).Weekday() == time.Sunday {
			sundays++
		}
	}

	rows, err := s.repo.FindByPeriod(ctx, year, month)
	if err != nil {
		return MonthStats{}, err
	}

	stats := MonthStats{
		Year:          year,
		Month:         month,
		TotalDays:     totalDays,
		TotalSundays:  sundays,
		TotalWeekdays: totalDays - sundays,
		Dates:         make(map[string]bool, len(rows)),
	}
	for _, r := range rows {
		stats.Dates[r.HolidayDate.Format(dateLayout)] = true
		switch r.HolidayDate.Weekday() {
		case time.Saturday, time.Sunday:
			stats.WeekendHolidays++
		default:
			stats.WeekdayHolidays++
		}
	}
	return stats, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return holidayerrors.ErrHolidayDateAlreadyExists
	}
	return err
}

func mapToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID.String(),
		HolidayDate: h.HolidayDate.Format(dateLayout),
		HolidayName: h.HolidayName,
		DayOfWeek:   h.HolidayDate.Weekday().String(),
		Year:        h.Year,
		Month:       h.Month,
	}
}
