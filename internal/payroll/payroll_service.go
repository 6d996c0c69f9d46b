package payroll

import (
	"context"
	"errors"
	"sort"

	"go-payroll/internal/attendance"
	"go-payroll/internal/deduction"
	"go-payroll/internal/employee"
	"go-payroll/internal/holiday"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/counter"
	"go-payroll/internal/timeclock"

	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	ComputeForEmployee(ctx context.Context, employeeName string, year, month int) (PayrollResponse, error)
	ComputeBulk(ctx context.Context, year, month int) (BulkPayrollResponse, error)
	GroupSummary(ctx context.Context, year, month int) (GroupSummaryResponse, error)
	Payslip(ctx context.Context, employeeName string, year, month int) ([]byte, string, error)
}

type service struct {
	employees   employee.Service
	attendances attendance.Service
	holidays    holiday.Service
	deductions  deduction.Service
	serials     counter.Repository
}

func NewService(employees employee.Service, attendances attendance.Service, holidays holiday.Service, deductions deduction.Service, serials counter.Repository) Service {
	return &service{
		employees:   employees,
		attendances: attendances,
		holidays:    holidays,
		deductions:  deductions,
		serials:     serials,
	}
}

// ComputeForEmployee assembles the calculator's inputs from the other
// modules and runs the pure calculation. A missing pay profile or a month
// with no attendance surfaces as not-found; a missing deduction entry
// simply means nothing is withheld.
func (s *service) ComputeForEmployee(ctx context.Context, employeeName string, year, month int) (PayrollResponse, error) {
	profile, err := s.employees.GetByName(ctx, employeeName)
	if err != nil {
		return PayrollResponse{}, err
	}

	statement, err := s.attendances.MonthlyStatement(ctx, employeeName, year, month)
	if err != nil {
		return PayrollResponse{}, err
	}

	stats, err := s.holidays.MonthStats(ctx, year, month)
	if err != nil {
		return PayrollResponse{}, err
	}

	ded, err := s.deductions.Lookup(ctx, employeeName, year, month)
	if err != nil {
		return PayrollResponse{}, err
	}

	figures := Calculate(CalcInput{
		Profile: profile,
		Totals:  statement.Totals,
		Stats:   stats,
		Advance: ded.Advance,
		Loan:    ded.Loan,
	})

	return PayrollResponse{
		EmployeeName: employeeName,
		EmployeeType: profile.EmployeeType,
		Department:   profile.Department,
		Year:         year,
		Month:        month,
		Totals:       statement.Totals,
		Figures:      figures,
	}, nil
}

// ComputeBulk runs the calculation for every profiled employee. Employees
// without attendance for the period are skipped, not treated as a failure
// of the batch.
func (s *service) ComputeBulk(ctx context.Context, year, month int) (BulkPayrollResponse, error) {
	profiles, err := s.employees.GetAll(ctx)
	if err != nil {
		return BulkPayrollResponse{}, err
	}

	resp := BulkPayrollResponse{Year: year, Month: month}
	for _, p := range profiles {
		result, err := s.ComputeForEmployee(ctx, p.EmployeeName, year, month)
		if err != nil {
			if isNotFound(err) {
				contextutil.Logger(ctx).Info("skipping employee without attendance",
					zap.String("employee", p.EmployeeName),
					zap.Int("year", year),
					zap.Int("month", month),
				)
				resp.Skipped = append(resp.Skipped, p.EmployeeName)
				continue
			}
			return BulkPayrollResponse{}, err
		}
		resp.Results = append(resp.Results, result)
	}
	return resp, nil
}

// GroupSummary rolls profiles up by department, falling back to the
// employee type when no department is set. Deductions are joined in as
// zeros when absent so nobody drops out of the totals.
func (s *service) GroupSummary(ctx context.Context, year, month int) (GroupSummaryResponse, error) {
	profiles, err := s.employees.GetAll(ctx)
	if err != nil {
		return GroupSummaryResponse{}, err
	}

	entries, err := s.deductions.ListByPeriod(ctx, year, month)
	if err != nil {
		return GroupSummaryResponse{}, err
	}
	byName := make(map[string]deduction.DeductionResponse, len(entries))
	for _, e := range entries {
		byName[e.EmployeeName] = e
	}

	groups := map[string]*GroupTotals{}
	grand := GroupTotals{Group: "Total"}
	for _, p := range profiles {
		key := p.Department
		if key == "" {
			key = p.EmployeeType
		}
		g, ok := groups[key]
		if !ok {
			g = &GroupTotals{Group: key}
			groups[key] = g
		}

		gross := timeclock.Round2(p.BasicSalary + p.BRA + p.OtherAllowances + p.MealAllowance + p.AttendanceBonus)
		ded := byName[p.EmployeeName]

		for _, t := range []*GroupTotals{g, &grand} {
			t.Employees++
			t.Gross = timeclock.Round2(t.Gross + gross)
			t.Advance = timeclock.Round2(t.Advance + ded.Advance)
			t.Loan = timeclock.Round2(t.Loan + ded.Loan)
			t.EPFEmployee = timeclock.Round2(t.EPFEmployee + p.EPFEmployee)
			t.ETFEmployer = timeclock.Round2(t.ETFEmployer + p.ETFEmployer)
		}
	}

	resp := GroupSummaryResponse{Year: year, Month: month, GrandTotal: grand}
	for _, g := range groups {
		resp.Groups = append(resp.Groups, *g)
	}
	sort.Slice(resp.Groups, func(i, j int) bool { return resp.Groups[i].Group < resp.Groups[j].Group })
	return resp, nil
}

func isNotFound(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == apperror.CodeNotFound
}
