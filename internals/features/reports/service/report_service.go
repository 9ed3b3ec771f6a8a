// file: internals/features/reports/service/report_service.go
package service

import (
	"context"
	"strings"

	txModel "grahafitness_backend/internals/features/finance/transactions/model"
	memberModel "grahafitness_backend/internals/features/members/model"
	"grahafitness_backend/internals/features/reports/render"
)

type TransactionSource interface {
	ListByDateRange(ctx context.Context, start, end string) ([]txModel.TransactionWithNames, error)
}

type AttendanceSource interface {
	ListAttendanceRange(ctx context.Context, start, end string) ([]memberModel.AttendanceWithMember, error)
}

type ReportService struct {
	Transactions TransactionSource
	Attendance   AttendanceSource
}

func NewReportService(tx TransactionSource, att AttendanceSource) *ReportService {
	return &ReportService{Transactions: tx, Attendance: att}
}

// Period: "Period: <start|Start> to <end|End>", kosong kalau tanpa filter.
func Period(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	if start == "" {
		start = "Start"
	}
	if end == "" {
		end = "End"
	}
	return "Period: " + start + " to " + end
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (s *ReportService) Finance(ctx context.Context, start, end string) (render.Report, error) {
	rows, err := s.Transactions.ListByDateRange(ctx, start, end)
	if err != nil {
		return render.Report{}, err
	}
	return FinanceReport(rows, start, end), nil
}

func (s *ReportService) AttendanceReport(ctx context.Context, start, end string) (render.Report, error) {
	rows, err := s.Attendance.ListAttendanceRange(ctx, start, end)
	if err != nil {
		return render.Report{}, err
	}
	return AttendanceReport(rows, start, end), nil
}

// FinanceReport: Date, Type, Category, Amount, Member, Note.
// Transaksi tanpa member → "-", member yang sudah dihapus → "Unknown".
func FinanceReport(txs []txModel.TransactionWithNames, start, end string) render.Report {
	out := make([][]any, 0, len(txs))
	for _, t := range txs {
		member := "-"
		if t.MemberID != nil {
			member = "Unknown"
			if t.MemberName != nil {
				member = *t.MemberName
			}
		}
		out = append(out, []any{t.Date, capitalize(string(t.Type)), t.Category, t.Amount, member, t.Note})
	}
	return render.Report{
		Title:     "Graha Fitness - Finance Report",
		SheetName: "Finance Report",
		Period:    Period(start, end),
		Columns:   []string{"Date", "Type", "Category", "Amount", "Member", "Note"},
		Rows:      out,
		Landscape: true,
		EmptyText: "No transactions found for the selected period.",
	}
}

func AttendanceReport(recs []memberModel.AttendanceWithMember, start, end string) render.Report {
	out := make([][]any, 0, len(recs))
	for _, a := range recs {
		out = append(out, []any{a.Date, a.Time, a.MemberName, capitalize(string(a.Type))})
	}
	return render.Report{
		Title:     "Graha Fitness - Attendance Report",
		SheetName: "Attendance Report",
		Period:    Period(start, end),
		Columns:   []string{"Date", "Time", "Member Name", "Type"},
		Rows:      out,
		EmptyText: "No attendance records found for the selected period.",
	}
}
