package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"invoice-extractor/internal/invoice"
)

// XLSX renders a two-sheet workbook: "Summary" holds header, vendor,
// customer, and totals as key-value pairs; "Line Items" mirrors the CSV
// item column layout. Unstructured results get a Summary sheet carrying
// the raw answer.
func XLSX(res *invoice.Result) ([]byte, error) {
	f := excelize.NewFile()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, err
	}

	setCell := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	if !res.IsStructured() {
		setCell(summary, 1, 1, "Raw Answer")
		setCell(summary, 2, 1, res.RawAnswer)
		_ = f.SetColWidth(summary, "A", "A", 16)
		_ = f.SetColWidth(summary, "B", "B", 80)
		buf, err := f.WriteToBuffer()
		if err != nil {
			return nil, fmt.Errorf("xlsx write: %w", err)
		}
		return buf.Bytes(), nil
	}

	vendor := res.VendorOrEmpty()
	customer := res.CustomerOrEmpty()
	pairs := [][2]string{
		{"Invoice Number", res.InvoiceNumber},
		{"Invoice Date", res.InvoiceDate},
		{"Due Date", res.DueDate},
		{"Currency", res.Currency},
		{"Vendor", vendor.Name},
		{"Vendor Address", vendor.Address},
		{"Vendor Contact", vendor.Contact},
		{"Customer", customer.Name},
		{"Customer Address", customer.Address},
		{"Customer Contact", customer.Contact},
		{"Subtotal", invoice.FormatAmount(res.Subtotal)},
		{"Tax", invoice.FormatAmount(res.Tax)},
		{"Total Amount", invoice.FormatAmount(res.GrandTotal)},
		{"Payment Terms", res.PaymentTerms},
	}
	for i, kv := range pairs {
		setCell(summary, 1, i+1, kv[0])
		setCell(summary, 2, i+1, kv[1])
	}
	_ = f.SetColWidth(summary, "A", "A", 20)
	_ = f.SetColWidth(summary, "B", "B", 48)

	const items = "Line Items"
	if _, err := f.NewSheet(items); err != nil {
		return nil, err
	}
	headers := []string{"Description", "Quantity", "Unit Price", "Total"}
	for i, h := range headers {
		setCell(items, i+1, 1, h)
	}
	row := 2
	for _, item := range res.LineItems {
		setCell(items, 1, row, item.Description)
		setCell(items, 2, row, invoice.FormatAmount(item.Quantity))
		setCell(items, 3, row, invoice.FormatAmount(item.UnitPrice))
		setCell(items, 4, row, invoice.FormatAmount(item.Total))
		row++
	}
	_ = f.SetColWidth(items, "A", "A", 40)
	_ = f.SetColWidth(items, "B", "D", 14)

	if index, err := f.GetSheetIndex(summary); err == nil {
		f.SetActiveSheet(index)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
