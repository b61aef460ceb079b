// Package export renders a derived list view as a spreadsheet or a PDF report.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV, "":
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("export: unsupported format %q", s)
	}
}

func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/csv; charset=utf-8"
}

func (f Format) Filename(base string, at time.Time) string {
	return fmt.Sprintf("%s-%s.%s", base, at.Format("2006-01-02"), f)
}

type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func Write(w io.Writer, f Format, t Table) error {
	if f == FormatPDF {
		return WritePDF(w, t)
	}
	return WriteCSV(w, t)
}

func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("export: csv header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("export: csv rows: %w", err)
	}
	return nil
}

// WritePDF lays the table out on landscape A4 pages, repeating the header row.
func WritePDF(w io.Writer, t Table) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 12)
	// core fonts are cp1252, accents need the translator
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20
	colW := contentW
	if len(t.Headers) > 0 {
		colW = contentW / float64(len(t.Headers))
	}

	header := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(235, 235, 235)
		for _, h := range t.Headers {
			pdf.CellFormat(colW, 6, tr(h), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
	}

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(contentW, 8, tr(t.Title), "", 1, "L", false, 0, "")
		header()
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont("Helvetica", "I", 7)
		pdf.CellFormat(contentW, 5, fmt.Sprintf("%d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	for _, row := range t.Rows {
		for i := range t.Headers {
			cell := ""
			if i < len(row) {
				cell = truncate(row[i], colW)
			}
			pdf.CellFormat(colW, 5, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: pdf: %w", err)
	}
	return nil
}

// truncate keeps a cell on one line; roughly 1.6mm per character at 8pt.
func truncate(s string, width float64) string {
	limit := int(width / 1.6)
	r := []rune(s)
	if limit < 4 || len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
