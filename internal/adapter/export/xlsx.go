// Package export renders investments into downloadable spreadsheets.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"fundflow/internal/core/domain"
)

const sheetName = "Investments"

var header = []any{
	"Investment ID", "Date", "Investor", "Campaign", "Amount", "Status", "Payment method", "Payment ID",
}

// XLSX writes investments as an Excel workbook with one row per investment.
type XLSX struct{}

// NewXLSX returns the spreadsheet exporter.
func NewXLSX() *XLSX {
	return &XLSX{}
}

func (XLSX) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Export streams the rows into a single sheet. Amounts are written in
// currency units, not cents.
func (XLSX) Export(w io.Writer, investments []domain.Investment) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}
	if err = sw.SetColWidth(1, len(header), 20); err != nil {
		return err
	}
	if err = sw.SetRow("A1", header); err != nil {
		return err
	}
	for i, inv := range investments {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err = sw.SetRow(cell, row(inv)); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	if err = sw.Flush(); err != nil {
		return err
	}
	_, err = f.WriteTo(w)
	return err
}

func row(inv domain.Investment) []any {
	investor, campaign := "", ""
	if inv.Investor != nil {
		investor = inv.Investor.Name
	}
	if inv.Campaign != nil {
		campaign = inv.Campaign.Title
	}
	return []any{
		inv.ID.String(),
		inv.CreatedAt.UTC().Format(time.RFC3339),
		investor,
		campaign,
		float64(inv.Amount) / 100,
		string(inv.Status),
		inv.PaymentMethod,
		inv.PaymentID,
	}
}
