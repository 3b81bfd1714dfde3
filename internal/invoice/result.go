package invoice

// Party identifies one side of an invoice (vendor or customer).
type Party struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	Contact string `json:"contact,omitempty"`
}

// LineItem is one row of the itemized charges. Items have no identity
// beyond their position in the Result.
type LineItem struct {
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity,omitempty"`
	UnitPrice   *float64 `json:"unit_price,omitempty"`
	Total       *float64 `json:"total,omitempty"`
}

// Result is the normalized output of one extraction. Exactly one of the
// structured fields or RawAnswer is meaningfully populated: question-mode
// responses and auto-mode responses that failed structured parsing carry
// RawAnswer, with Unstructured set for the latter. Absent fields are
// omitted from JSON rather than emitted as null.
//
// A Result is created once per upstream call and consumed read-only by
// every exporter; nothing mutates it after construction.
type Result struct {
	InvoiceNumber string `json:"invoice_number,omitempty"`
	InvoiceDate   string `json:"invoice_date,omitempty"`
	DueDate       string `json:"due_date,omitempty"`
	Currency      string `json:"currency,omitempty"`

	Vendor   *Party `json:"vendor,omitempty"`
	Customer *Party `json:"customer,omitempty"`

	LineItems []LineItem `json:"line_items,omitempty"`

	Subtotal     *float64 `json:"subtotal,omitempty"`
	Tax          *float64 `json:"tax,omitempty"`
	GrandTotal   *float64 `json:"grand_total,omitempty"`
	PaymentTerms string   `json:"payment_terms,omitempty"`

	RawAnswer    string `json:"raw_answer,omitempty"`
	Unstructured bool   `json:"unstructured,omitempty"`
}

// IsStructured reports whether the structured branch of the union is the
// one to render. Question-mode answers and auto-mode fallbacks go through
// the plain-text path instead.
func (r *Result) IsStructured() bool {
	return !r.Unstructured && r.RawAnswer == ""
}

// VendorOrEmpty returns the vendor block, or a zero Party when absent.
func (r *Result) VendorOrEmpty() Party {
	if r.Vendor != nil {
		return *r.Vendor
	}
	return Party{}
}

// CustomerOrEmpty returns the customer block, or a zero Party when absent.
func (r *Result) CustomerOrEmpty() Party {
	if r.Customer != nil {
		return *r.Customer
	}
	return Party{}
}
