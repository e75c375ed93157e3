// Package export renders screen snapshots as downloadable spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	"github.com/SscSPs/resale_backoffice/internal/utils"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "Summary"
	RecordsSheet = "Records"
)

// ContentType is the MIME type of the workbook written by WriteFinanceWorkbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var recordHeaders = []string{"ID", "Date", "Type", "Expense Type", "Amount", "Currency", "Payment Type", "Status", "Notes"}

// WriteFinanceWorkbook writes the finance snapshot as an xlsx workbook with a
// per-currency summary sheet and one row per finance record.
func WriteFinanceWorkbook(w io.Writer, snap domain.FinanceSnapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with "Sheet1"; rename it instead of leaving it empty.
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	if _, err := f.NewSheet(RecordsSheet); err != nil {
		return fmt.Errorf("failed to create records sheet: %w", err)
	}

	if err := writeSummary(f, snap.Summary); err != nil {
		return err
	}
	if err := writeRecords(f, snap.Records); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, s domain.LedgerSummary) error {
	rows := []struct {
		label  string
		totals domain.CurrencyTotals
	}{
		{"Income", s.Income},
		{"Expense", s.Expense},
		{"Net Profit", s.NetProfit},
		{"Receivables (pending)", s.ReceivablesPending},
		{"Receivables (all)", s.ReceivablesAll},
		{"Payables (pending)", s.PayablesPending},
		{"Payables (all)", s.PayablesAll},
	}

	header := []any{""}
	for _, c := range domain.Currencies {
		header = append(header, string(c))
	}
	if err := f.SetSheetRow(SummarySheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}

	for i, r := range rows {
		values := []any{r.label}
		for _, c := range domain.Currencies {
			values = append(values, utils.FormatWithCurrencyPrecision(r.totals.Get(c), c))
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SummarySheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write summary row %q: %w", r.label, err)
		}
	}

	if len(s.Flagged) > 0 {
		cell, _ := excelize.CoordinatesToCellName(1, len(rows)+3)
		note := fmt.Sprintf("%d amount(s) could not be read and were left out of the totals", len(s.Flagged))
		if err := f.SetCellValue(SummarySheet, cell, note); err != nil {
			return fmt.Errorf("failed to write summary note: %w", err)
		}
	}
	return nil
}

func writeRecords(f *excelize.File, records []domain.FinanceRecord) error {
	header := make([]any, len(recordHeaders))
	for i, h := range recordHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(RecordsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write records header: %w", err)
	}

	for i, r := range records {
		var amount any = string(r.Amount)
		if d, err := r.Amount.Decimal(); err == nil {
			amount = utils.FormatWithCurrencyPrecision(d, r.Currency)
		}
		date := r.TransactionDate
		if date == "" {
			date = r.CreatedAt
		}
		values := []any{
			r.ID, date, string(r.RecordType), string(r.ExpenseType), amount,
			string(r.Currency), string(r.PaymentType), string(r.Status), r.Notes,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(RecordsSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write record %d: %w", r.ID, err)
		}
	}
	return nil
}
