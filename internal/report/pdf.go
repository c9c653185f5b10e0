// Package report renders a date-ranged financial report as a PDF
// document.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"duit/internal/core"
)

// ErrNoTransactions is returned when the requested range holds nothing to
// report on.
var ErrNoTransactions = errors.New("no transactions in range")

// Report is a fully resolved export: the range, the matching transactions
// and their aggregates.
type Report struct {
	From         time.Time
	To           time.Time
	Transactions []core.Transaction
	Totals       core.Totals
	Income       core.Breakdown
	Expense      core.Breakdown
}

// New filters txns to the inclusive [from, to] range and precomputes the
// aggregates. An empty range is an error so callers never ship a blank
// document.
func New(from, to time.Time, txns []core.Transaction) (Report, error) {
	if from.After(to) {
		return Report{}, core.ErrInvalidDate
	}

	inRange := core.FilterRange(txns, from, to)
	if len(inRange) == 0 {
		return Report{}, ErrNoTransactions
	}

	return Report{
		From:         from,
		To:           to,
		Transactions: inRange,
		Totals:       core.Summarize(inRange),
		Income:       core.Aggregate(inRange, core.Income),
		Expense:      core.Aggregate(inRange, core.Expense),
	}, nil
}

// Filename returns the download name for the document, derived from the
// range bounds.
func (r Report) Filename() string {
	return fmt.Sprintf("Laporan_Keuangan_%s_%s.pdf", datePart(r.From), datePart(r.To))
}

func datePart(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Day(), int(t.Month()), t.Year())
}

func typeLabel(t core.TransactionType) string {
	if t == core.Income {
		return "Pemasukan"
	}
	return "Pengeluaran"
}

// PDF renders the report as an A4 document.
func (r Report) PDF() ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Laporan Keuangan", false)
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Laporan Keuangan")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, fmt.Sprintf("Periode: %s - %s", core.FormatDate(r.From), core.FormatDate(r.To)))
	pdf.Ln(10)

	r.summaryTable(pdf)
	r.categoryTables(pdf)
	r.detailTable(pdf)

	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 10, "Dibuat "+core.FormatDate(time.Now()), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r Report) summaryTable(pdf *gofpdf.Fpdf) {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	w := []float64{45, 47, 47, 47}
	pdf.CellFormat(w[0], 10, "Transaksi", "1", 0, "C", true, 0, "")
	pdf.CellFormat(w[1], 10, "Pemasukan", "1", 0, "C", true, 0, "")
	pdf.CellFormat(w[2], 10, "Pengeluaran", "1", 0, "C", true, 0, "")
	pdf.CellFormat(w[3], 10, "Saldo", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(w[0], 10, fmt.Sprintf("%d", len(r.Transactions)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(w[1], 10, core.FormatRupiah(r.Totals.Income), "1", 0, "C", false, 0, "")
	pdf.CellFormat(w[2], 10, core.FormatRupiah(r.Totals.Expense), "1", 0, "C", false, 0, "")
	pdf.CellFormat(w[3], 10, core.FormatRupiah(r.Totals.Net()), "1", 1, "C", false, 0, "")
	pdf.Ln(6)
}

func (r Report) categoryTables(pdf *gofpdf.Fpdf) {
	for _, b := range []core.Breakdown{r.Income, r.Expense} {
		if len(b.Shares) == 0 {
			continue
		}

		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, typeLabel(b.Type)+" per Kategori")
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)

		w := []float64{92, 60, 34}
		pdf.CellFormat(w[0], 8, "Kategori", "1", 0, "L", true, 0, "")
		pdf.CellFormat(w[1], 8, "Jumlah", "1", 0, "R", true, 0, "")
		pdf.CellFormat(w[2], 8, "Persen", "1", 1, "C", true, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for _, s := range b.Shares {
			pdf.CellFormat(w[0], 8, s.Category, "1", 0, "L", false, 0, "")
			pdf.CellFormat(w[1], 8, core.FormatRupiah(s.Amount), "1", 0, "R", false, 0, "")
			pdf.CellFormat(w[2], 8, fmt.Sprintf("%d%%", s.Percent), "1", 1, "C", false, 0, "")
		}
		pdf.Ln(4)
	}
}

func (r Report) detailTable(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Rincian Transaksi")
	pdf.Ln(8)

	w := []float64{26, 28, 44, 38, 46}
	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(w[0], 8, "Tanggal", "1", 0, "C", true, 0, "")
		pdf.CellFormat(w[1], 8, "Tipe", "1", 0, "C", true, 0, "")
		pdf.CellFormat(w[2], 8, "Kategori", "1", 0, "L", true, 0, "")
		pdf.CellFormat(w[3], 8, "Jumlah", "1", 0, "R", true, 0, "")
		pdf.CellFormat(w[4], 8, "Catatan", "1", 1, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}
	header()

	pdf.SetTextColor(30, 30, 30)
	for _, tx := range r.Transactions {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			header()
		}

		amount := core.FormatRupiah(tx.Amount)
		if tx.Type == core.Expense {
			amount = core.FormatRupiah(-tx.Amount)
		}

		pdf.CellFormat(w[0], 8, core.FormatDateShort(tx.Date), "1", 0, "C", false, 0, "")
		pdf.CellFormat(w[1], 8, typeLabel(tx.Type), "1", 0, "C", false, 0, "")
		pdf.CellFormat(w[2], 8, tx.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(w[3], 8, amount, "1", 0, "R", false, 0, "")
		pdf.CellFormat(w[4], 8, trimTo(tx.Notes, 40), "1", 1, "L", false, 0, "")
	}
}

func trimTo(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
