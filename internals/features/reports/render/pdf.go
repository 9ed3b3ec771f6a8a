package render

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount: 100000 → "100,000".
func FormatAmount(n int64) string {
	return amountPrinter.Sprintf("%d", n)
}

func cellText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int64:
		return FormatAmount(t)
	case int:
		return FormatAmount(int64(t))
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func renderPDF(w io.Writer, r Report) error {
	orientation := "P"
	if r.Landscape {
		orientation = "L"
	}
	pdf := fpdf.New(orientation, "mm", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(r.Title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	if r.Period != "" {
		pdf.CellFormat(0, 6, tr(r.Period), "", 1, "L", false, 0, "")
		pdf.Ln(4)
	}

	if len(r.Rows) == 0 {
		pdf.CellFormat(0, 6, tr(r.EmptyText), "", 1, "L", false, 0, "")
		return pdf.Output(w)
	}

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(r.Columns))

	// header abu-abu, teks putih
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	for _, col := range r.Columns {
		pdf.CellFormat(colW, 8, tr(col), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetFillColor(245, 245, 245)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range r.Rows {
		for _, v := range row {
			pdf.CellFormat(colW, 7, tr(truncate(pdf, cellText(v), colW-2)), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	return pdf.Output(w)
}

func truncate(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
