package export

import (
	"fmt"
	"strings"

	"invoice-extractor/internal/invoice"
)

const (
	heavyRule = "============================================================"
	lightRule = "------------------------------------------------------------"
)

// TXT renders a human-readable report: header, vendor, customer, a
// fixed-width line-item table, then totals. Unstructured results emit
// the raw answer verbatim under a single heading. Missing fields render
// as N/A so the section layout stays stable.
func TXT(res *invoice.Result) ([]byte, error) {
	var b strings.Builder

	if !res.IsStructured() {
		b.WriteString(heavyRule + "\n")
		b.WriteString("ANSWER\n")
		b.WriteString(heavyRule + "\n\n")
		b.WriteString(res.RawAnswer)
		b.WriteString("\n")
		return []byte(b.String()), nil
	}

	b.WriteString(heavyRule + "\n")
	b.WriteString("INVOICE DETAILS\n")
	b.WriteString(heavyRule + "\n\n")
	writeField(&b, "Invoice Number", res.InvoiceNumber)
	writeField(&b, "Invoice Date", res.InvoiceDate)
	writeField(&b, "Due Date", res.DueDate)
	writeField(&b, "Currency", res.Currency)

	vendor := res.VendorOrEmpty()
	b.WriteString("\n" + lightRule + "\n")
	b.WriteString("VENDOR INFORMATION\n")
	b.WriteString(lightRule + "\n")
	writeField(&b, "Name", vendor.Name)
	writeField(&b, "Address", vendor.Address)
	writeField(&b, "Contact", vendor.Contact)

	customer := res.CustomerOrEmpty()
	b.WriteString("\n" + lightRule + "\n")
	b.WriteString("CUSTOMER INFORMATION\n")
	b.WriteString(lightRule + "\n")
	writeField(&b, "Name", customer.Name)
	writeField(&b, "Address", customer.Address)
	writeField(&b, "Contact", customer.Contact)

	b.WriteString("\n" + lightRule + "\n")
	b.WriteString("LINE ITEMS\n")
	b.WriteString(lightRule + "\n\n")
	if len(res.LineItems) == 0 {
		b.WriteString("No items found\n")
	} else {
		fmt.Fprintf(&b, "%-4s %-36s %10s %12s %12s\n", "#", "Description", "Qty", "Unit Price", "Total")
		for i, item := range res.LineItems {
			fmt.Fprintf(&b, "%-4d %-36s %10s %12s %12s\n",
				i+1,
				item.Description,
				invoice.FormatAmount(item.Quantity),
				invoice.FormatAmount(item.UnitPrice),
				invoice.FormatAmount(item.Total),
			)
		}
	}

	b.WriteString("\n" + lightRule + "\n")
	b.WriteString("TOTALS\n")
	b.WriteString(lightRule + "\n")
	writeField(&b, "Subtotal", invoice.FormatAmount(res.Subtotal))
	writeField(&b, "Tax", invoice.FormatAmount(res.Tax))
	writeField(&b, "Total Amount", invoice.FormatAmount(res.GrandTotal))
	if res.PaymentTerms != "" {
		b.WriteString("\n")
		writeField(&b, "Payment Terms", res.PaymentTerms)
	}

	b.WriteString("\n" + heavyRule + "\n")
	return []byte(b.String()), nil
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		value = "N/A"
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}
