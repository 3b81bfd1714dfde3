package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"invoice-extractor/internal/invoice"
)

// csvHeader is the flat column layout shared with the XLSX line-item
// sheet: header-level fields repeat on every row, followed by the item
// columns and the totals.
var csvHeader = []string{
	"invoice_number", "currency", "invoice_date", "due_date",
	"vendor_name", "customer_name",
	"description", "quantity", "unit_price", "line_total",
	"subtotal", "tax", "grand_total",
}

// CSV flattens the result to one row per line item. Zero line items
// still produce exactly one data row with empty item columns, so the
// header-level fields are never lost. Unstructured results degrade to a
// single raw_answer column.
func CSV(res *invoice.Result) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if !res.IsStructured() {
		if err := w.Write([]string{"raw_answer"}); err != nil {
			return nil, err
		}
		if err := w.Write([]string{res.RawAnswer}); err != nil {
			return nil, err
		}
		w.Flush()
		return buf.Bytes(), w.Error()
	}

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	base := []string{
		res.InvoiceNumber,
		res.Currency,
		res.InvoiceDate,
		res.DueDate,
		res.VendorOrEmpty().Name,
		res.CustomerOrEmpty().Name,
	}
	totals := []string{
		invoice.FormatAmount(res.Subtotal),
		invoice.FormatAmount(res.Tax),
		invoice.FormatAmount(res.GrandTotal),
	}

	writeRow := func(item []string) error {
		row := make([]string, 0, len(csvHeader))
		row = append(row, base...)
		row = append(row, item...)
		row = append(row, totals...)
		return w.Write(row)
	}

	if len(res.LineItems) == 0 {
		if err := writeRow([]string{"", "", "", ""}); err != nil {
			return nil, err
		}
	}
	for _, item := range res.LineItems {
		cols := []string{
			item.Description,
			invoice.FormatAmount(item.Quantity),
			invoice.FormatAmount(item.UnitPrice),
			invoice.FormatAmount(item.Total),
		}
		if err := writeRow(cols); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}
	return buf.Bytes(), nil
}
