package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// handleSalesExport streams the ledger window as an .xlsx workbook with an
// Orders sheet and a Line Items sheet.
func (s *Server) handleSalesExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	rng := statsRange(r.URL.Query().Get("range"))
	orders, err := s.sales.OrdersForRange(r.Context(), rng)
	if err != nil {
		s.fail(w, err, "failed to export sales")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const ordersSheet = "Orders"
	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		s.fail(w, err, "failed to export sales")
		return
	}
	setRow(f, ordersSheet, 1, []any{"Order #", "Sold At", "Channel", "Marketplace", "Buyer", "Total (USD)"})
	for i, o := range orders {
		setRow(f, ordersSheet, i+2, []any{
			o.OrderNumber,
			o.SoldAt.Format(time.RFC3339),
			string(o.Channel),
			o.Marketplace,
			o.BuyerName,
			float64(o.TotalCents) / 100,
		})
	}

	const itemsSheet = "Line Items"
	if _, err := f.NewSheet(itemsSheet); err != nil {
		s.fail(w, err, "failed to export sales")
		return
	}
	setRow(f, itemsSheet, 1, []any{"Order #", "Artist", "Release", "Qty", "Unit Price (USD)", "Line Total (USD)"})
	row := 2
	for _, o := range orders {
		for _, li := range o.LineItems {
			setRow(f, itemsSheet, row, []any{
				o.OrderNumber,
				li.Artist,
				li.ReleaseTitle,
				li.Quantity,
				float64(li.UnitPriceCents) / 100,
				float64(li.LineTotalCents) / 100,
			})
			row++
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=sales_%s.xlsx", rng))
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("write sales export")
	}
}

func setRow(f *excelize.File, sheet string, row int, values []any) {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			continue
		}
		_ = f.SetCellValue(sheet, cell, v)
	}
}
