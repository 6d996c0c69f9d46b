package payroll

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"
)

// Payslip renders one employee-month as a single-page PDF. The writer below
// emits the handful of PDF objects a one-font text page needs, which keeps
// slip generation dependency-free.
func (s *service) Payslip(ctx context.Context, employeeName string, year, month int) ([]byte, string, error) {
	result, err := s.ComputeForEmployee(ctx, employeeName, year, month)
	if err != nil {
		return nil, "", err
	}

	serial, err := s.serials.GetNextValue(ctx, fmt.Sprintf("%04d-%02d", year, month), "payslip")
	if err != nil {
		return nil, "", err
	}

	data, err := renderTextPDF(payslipLines(result, serial))
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("payslip_%s_%04d_%02d.pdf", strings.ReplaceAll(employeeName, " ", "_"), year, month)
	return data, filename, nil
}

func payslipLines(r PayrollResponse, serial int64) []string {
	period := time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
	f := r.Figures

	lines := []string{
		fmt.Sprintf("Salary Slip - %s", period),
		fmt.Sprintf("Slip No: %04d-%02d/%03d", r.Year, r.Month, serial),
		"",
		fmt.Sprintf("Employee: %s", r.EmployeeName),
		fmt.Sprintf("Type: %s", r.EmployeeType),
		"",
		fmt.Sprintf("Full Days (Weekday): %d   Half Days: %d", r.Totals.WeekdayFullDays, r.Totals.WeekdayHalfDays),
		fmt.Sprintf("Full Days (Sunday): %d   Half Days: %d", r.Totals.SundayFullDays, r.Totals.SundayHalfDays),
		fmt.Sprintf("Overtime Hours: %d   Absences: %d", r.Totals.OvertimeHours, r.Totals.AbsentDays),
		"",
		fmt.Sprintf("Base Salary: %.2f", f.BaseSalary),
		fmt.Sprintf("Sunday Pay: %.2f", f.SundayPay),
		fmt.Sprintf("Overtime Pay: %.2f", f.OvertimePay),
		fmt.Sprintf("Attendance Bonus: %.2f", f.Bonus),
		fmt.Sprintf("Gross Salary: %.2f", f.Gross),
		"",
		fmt.Sprintf("Advance: %.2f", f.Advance),
		fmt.Sprintf("Loan: %.2f", f.Loan),
		fmt.Sprintf("EPF 8%%: %.2f", f.EPFEmployee),
		"",
		fmt.Sprintf("Net Salary: %.2f", f.Net),
		"",
		fmt.Sprintf("EPF 12%% (Employer): %.2f", f.EPFEmployer),
		fmt.Sprintf("ETF 3%% (Employer): %.2f", f.ETFEmployer),
	}
	return lines
}

// renderTextPDF lays the lines out top-down on one A4 page in Helvetica.
func renderTextPDF(lines []string) ([]byte, error) {
	var text strings.Builder
	text.WriteString("BT\n/F1 12 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		if i > 0 {
			text.WriteString("T* ")
		}
		fmt.Fprintf(&text, "(%s) Tj\n", escapePDFText(line))
	}
	text.WriteString("ET")
	stream := text.String()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects))
	for i, body := range objects {
		offsets = append(offsets, out.Len())
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xrefStart := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n", len(objects)+1)
	out.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(objects)+1, xrefStart)

	return out.Bytes(), nil
}

func escapePDFText(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
