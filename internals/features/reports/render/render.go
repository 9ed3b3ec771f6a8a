// Package render menulis laporan tabular ke XLSX (excelize) atau PDF (fpdf).
package render

import (
	"errors"
	"io"
	"strings"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

var ErrUnknownFormat = errors.New("invalid format, use xlsx or pdf")

// ParseFormat: kosong → xlsx.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatXLSX:
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", ErrUnknownFormat
}

func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Report: baris datar dengan kolom bernama. Sel bertipe string atau int64.
type Report struct {
	Title     string
	SheetName string
	Period    string
	Columns   []string
	Rows      [][]any
	Landscape bool
	EmptyText string
}

func Render(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatXLSX:
		return renderXLSX(w, r)
	case FormatPDF:
		return renderPDF(w, r)
	}
	return ErrUnknownFormat
}
