package attendance

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	attendanceerrors "go-payroll/internal/attendance/errors"
	"go-payroll/internal/holiday"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/timeclock"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	importDateLayout = "02/01/2006"
	isoDateLayout    = "2006-01-02"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ImportCSV(ctx context.Context, r io.Reader) (ImportSummary, error)
	ImportXLSX(ctx context.Context, r io.Reader) (ImportSummary, error)
	MonthlyStatement(ctx context.Context, employeeName string, year, month int) (MonthlyStatementResponse, error)
	ExportMonthlyStatementXLSX(ctx context.Context, employeeName string, year, month int) ([]byte, string, error)
	ListEmployees(ctx context.Context) ([]string, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	holidays holiday.Service
}

func NewService(db *sql.DB, repo Repository, holidays holiday.Service) Service {
	return &service{db: db, repo: repo, holidays: holidays}
}

func (s *service) ImportCSV(ctx context.Context, r io.Reader) (ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var raw [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ImportSummary{}, apperror.New(apperror.CodeInvalidInput, fmt.Sprintf("malformed CSV: %v", err), 400)
		}
		raw = append(raw, record)
	}
	return s.importRows(ctx, raw)
}

func (s *service) ImportXLSX(ctx context.Context, r io.Reader) (ImportSummary, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ImportSummary{}, apperror.New(apperror.CodeInvalidInput, fmt.Sprintf("malformed XLSX: %v", err), 400)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return ImportSummary{}, apperror.New(apperror.CodeInvalidInput, fmt.Sprintf("malformed XLSX: %v", err), 400)
	}
	return s.importRows(ctx, rows)
}

// importRows converts sheet rows into attendance records and writes them in
// one transaction. Any unparseable date aborts the whole batch so a partial
// month can never be committed.
func (s *service) importRows(ctx context.Context, rows [][]string) (ImportSummary, error) {
	if len(rows) < 2 {
		return ImportSummary{}, attendanceerrors.ErrEmptyImport
	}

	cols, err := mapHeader(rows[0])
	if err != nil {
		return ImportSummary{}, err
	}

	records := make([]AttendanceRecord, 0, len(rows)-1)
	seen := map[string]bool{}
	for i, row := range rows[1:] {
		rowNum := i + 2

		name := strings.TrimSpace(cell(row, cols.name))
		if name == "" {
			continue
		}

		date, err := time.Parse(importDateLayout, strings.TrimSpace(cell(row, cols.date)))
		if err != nil {
			return ImportSummary{}, apperror.New(
				apperror.CodeInvalidInput,
				fmt.Sprintf("row %d: invalid date %q, expected DD/MM/YYYY", rowNum, cell(row, cols.date)),
				400,
			)
		}

		clockIn, clockOut := timeclock.NormalizeClockPair(cell(row, cols.clockIn), cell(row, cols.clockOut))

		// The device's absent flag is data; the clock sentinels only stand
		// in for it when the column (or the cell) is missing.
		absent := clockIn == "00:00" && clockOut == "00:00"
		if v := strings.TrimSpace(cell(row, cols.absent)); cols.absent >= 0 && v != "" {
			absent = parseBoolish(v)
		}

		records = append(records, AttendanceRecord{
			ID:           uuid.New(),
			EmployeeName: name,
			WorkDate:     date,
			WorkTime:     strings.TrimSpace(cell(row, cols.workTime)),
			ClockIn:      clockIn,
			ClockOut:     clockOut,
			Absent:       absent,
		})
		seen[name] = true
	}

	if len(records) == 0 {
		return ImportSummary{}, attendanceerrors.ErrEmptyImport
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportSummary{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.UpsertBatch(ctx, records); err != nil {
		return ImportSummary{}, err
	}
	if err := tx.Commit(); err != nil {
		return ImportSummary{}, err
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)

	return ImportSummary{RowsImported: len(records), Employees: names}, nil
}

func (s *service) MonthlyStatement(ctx context.Context, employeeName string, year, month int) (MonthlyStatementResponse, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	rows, err := s.repo.FindByEmployeeAndPeriod(ctx, employeeName, from, to)
	if err != nil {
		return MonthlyStatementResponse{}, err
	}
	if len(rows) == 0 {
		return MonthlyStatementResponse{}, attendanceerrors.ErrNoAttendanceRecords
	}

	stats, err := s.holidays.MonthStats(ctx, year, month)
	if err != nil {
		return MonthlyStatementResponse{}, err
	}

	statement := MonthlyStatementResponse{
		EmployeeName: employeeName,
		Year:         year,
		Month:        month,
		Days:         make([]DayRecordResponse, 0, len(rows)),
	}
	for _, rec := range rows {
		day := classifyDay(rec, stats)
		statement.Days = append(statement.Days, day)
		accumulate(&statement.Totals, day)
	}
	return statement, nil
}

func (s *service) ExportMonthlyStatementXLSX(ctx context.Context, employeeName string, year, month int) ([]byte, string, error) {
	statement, err := s.MonthlyStatement(ctx, employeeName, year, month)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []interface{}{
		"Date", "Name", "Day", "Work Time", "Clock In", "Clock Out",
		"Absent", "ATT_Time", "RND(ATT_Time)", "OT Time", "Real Day",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", err
	}

	for i, day := range statement.Days {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", err
		}
		row := []interface{}{
			day.Date, statement.EmployeeName, day.DayOfWeek, day.WorkTime,
			day.ClockIn, day.ClockOut, day.Absent, day.AttendedHours,
			day.RoundedHours, day.OvertimeHours, day.DayUnit,
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			return nil, "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("attendance_%s_%04d_%02d.xlsx", strings.ReplaceAll(employeeName, " ", "_"), year, month)
	return buf.Bytes(), filename, nil
}

func (s *service) ListEmployees(ctx context.Context) ([]string, error) {
	return s.repo.DistinctEmployeeNames(ctx)
}

// classifyDay derives every per-day figure from the stored record. The
// overtime column reads straight off the clock-out; whether it is paid is
// decided at the monthly roll-up.
func classifyDay(rec AttendanceRecord, stats holiday.MonthStats) DayRecordResponse {
	attended := timeclock.ParseWorkTime(rec.WorkTime)
	rounded := timeclock.RoundHours(attended)
	isSunday := rec.WorkDate.Weekday() == time.Sunday

	return DayRecordResponse{
		Date:          rec.WorkDate.Format(isoDateLayout),
		DayOfWeek:     rec.WorkDate.Weekday().String(),
		WorkTime:      rec.WorkTime,
		ClockIn:       rec.ClockIn,
		ClockOut:      rec.ClockOut,
		Absent:        rec.Absent,
		AttendedHours: attended,
		RoundedHours:  rounded,
		DayUnit:       timeclock.DayUnit(rounded),
		OvertimeHours: timeclock.OvertimeHours(rec.ClockOut),
		LateHours:     timeclock.LateHours(rec.ClockIn),
		EarlyHours:    timeclock.EarlyHours(rec.ClockOut),
		IsSunday:      isSunday,
		IsHoliday:     stats.IsHoliday(rec.WorkDate.Format(isoDateLayout)),
	}
}

func accumulate(t *MonthlyTotals, day DayRecordResponse) {
	switch {
	case day.IsSunday && day.DayUnit == 1:
		t.SundayFullDays++
	case day.IsSunday && day.DayUnit == 0.5:
		t.SundayHalfDays++
	case day.DayUnit == 1:
		t.WeekdayFullDays++
	case day.DayUnit == 0.5:
		t.WeekdayHalfDays++
	}

	if day.DayUnit > 0 {
		t.WorkedDays++
	}

	// Sunday work is paid at its own rate and never accrues overtime pay,
	// however late the clock-out ran.
	if !day.IsSunday {
		t.OvertimeHours += day.OvertimeHours
	}
	t.TotalRoundedHours += day.RoundedHours
	t.LateHours = timeclock.Round2(t.LateHours + day.LateHours)
	t.EarlyHours = timeclock.Round2(t.EarlyHours + day.EarlyHours)

	// Absences on holiday dates are excused.
	if day.Absent && !day.IsHoliday {
		t.AbsentDays++
	}
}

type headerIndex struct {
	date     int
	name     int
	workTime int
	clockIn  int
	clockOut int
	absent   int
}

func mapHeader(header []string) (headerIndex, error) {
	idx := headerIndex{date: -1, name: -1, workTime: -1, clockIn: -1, clockOut: -1, absent: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "date":
			idx.date = i
		case "name", "employee name":
			idx.name = i
		case "work time", "worktime":
			idx.workTime = i
		case "clock in", "clockin":
			idx.clockIn = i
		case "clock out", "clockout":
			idx.clockOut = i
		case "absent":
			idx.absent = i
		}
	}
	if idx.date < 0 || idx.name < 0 {
		return idx, apperror.New(apperror.CodeInvalidInput, "import header must contain Date and Name columns", 400)
	}
	return idx, nil
}

// parseBoolish reads the boolean-like strings device exports use.
func parseBoolish(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "t":
		return true
	default:
		return false
	}
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
