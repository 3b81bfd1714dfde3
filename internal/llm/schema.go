package llm

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to the model as a structured output constraint and also use it locally
// to validate. Nothing is required: every field is best-effort since the source is a
// photographed document.
func BuildInvoiceJSONSchema() map[string]any {
	props := map[string]any{
		"invoice_number": map[string]any{"type": "string"},
		"invoice_date":   map[string]any{"type": "string"},
		"due_date":       map[string]any{"type": "string"},
		"currency":       map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
		"vendor":         partyProp(),
		"customer":       partyProp(),
		"line_items": map[string]any{
			"type":  "array",
			"items": lineItemProp(),
		},
		"subtotal":      amountProp(),
		"tax":           amountProp(),
		"grand_total":   amountProp(),
		"payment_terms": map[string]any{"type": "string"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{},
	}
}

func partyProp() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":    map[string]any{"type": "string"},
			"address": map[string]any{"type": "string"},
			"contact": map[string]any{"type": "string"},
		},
	}
}

func lineItemProp() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"description": map[string]any{"type": "string"},
			"quantity":    amountProp(),
			"unit_price":  amountProp(),
			"total":       amountProp(),
		},
		"required": []string{"description"},
	}
}

func amountProp() map[string]any {
	return map[string]any{"type": "number"}
}
