package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sample() Report {
	return Report{
		Title:     "Graha Fitness - Finance Report",
		SheetName: "Finance Report",
		Period:    "Period: 2024-04-01 to 2024-04-30",
		Columns:   []string{"Date", "Type", "Category", "Amount", "Member", "Note"},
		Rows: [][]any{
			{"2024-04-02", "Income", "Membership", int64(100000), "Budi", ""},
			{"2024-04-10", "Expense", "Electricity", int64(40000), "-", "PLN token, bulan April, dibayar tunai di kasir depan"},
		},
		Landscape: true,
		EmptyText: "No transactions found for the selected period.",
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	f, err = ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = ParseFormat("csv")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", FormatPDF.ContentType())
	assert.Contains(t, FormatXLSX.ContentType(), "spreadsheetml")
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "100,000", FormatAmount(100000))
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "1,234,567", FormatAmount(1234567))
}

func TestRenderXLSX_ReadBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sample(), FormatXLSX))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Finance Report"}, f.GetSheetList())

	header, err := f.GetCellValue("Finance Report", "D1")
	require.NoError(t, err)
	assert.Equal(t, "Amount", header)

	amount, err := f.GetCellValue("Finance Report", "D2")
	require.NoError(t, err)
	assert.Equal(t, "100000", amount)

	member, err := f.GetCellValue("Finance Report", "E3")
	require.NoError(t, err)
	assert.Equal(t, "-", member)
}

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sample(), FormatPDF))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestRenderPDF_Empty(t *testing.T) {
	r := sample()
	r.Rows = nil
	r.Landscape = false

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, FormatPDF))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Render(&buf, sample(), Format("csv")), ErrUnknownFormat)
	assert.Zero(t, buf.Len())
}
