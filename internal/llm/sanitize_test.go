package llm_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"invoice-extractor/internal/llm"
)

func normalize(raw string) map[string]any {
	out, _, err := llm.NormalizeResponseJSON([]byte(raw), discard)
	Expect(err).NotTo(HaveOccurred())
	var m map[string]any
	Expect(json.Unmarshal(out, &m)).To(Succeed())
	return m
}

var _ = Describe("NormalizeResponseJSON", func() {
	It("renames known synonyms", func() {
		m := normalize(`{"items": [{"description": "Pen", "price": 1.5, "item_total": 3}], "total_amount": 3, "tax_amount": 0.3, "currency_code": "usd"}`)

		Expect(m).NotTo(HaveKey("items"))
		Expect(m).NotTo(HaveKey("total_amount"))
		Expect(m["grand_total"]).To(Equal(3.0))
		Expect(m["tax"]).To(Equal(0.3))
		Expect(m["currency"]).To(Equal("USD"))

		items := m["line_items"].([]any)
		Expect(items).To(HaveLen(1))
		item := items[0].(map[string]any)
		Expect(item["unit_price"]).To(Equal(1.5))
		Expect(item["total"]).To(Equal(3.0))
	})

	It("drops nulls, empties, and N/A placeholders", func() {
		m := normalize(`{"invoice_number": "  INV-3 ", "due_date": null, "payment_terms": "", "invoice_date": "N/A"}`)

		Expect(m["invoice_number"]).To(Equal("INV-3"))
		Expect(m).NotTo(HaveKey("due_date"))
		Expect(m).NotTo(HaveKey("payment_terms"))
		Expect(m).NotTo(HaveKey("invoice_date"))
	})

	It("removes unknown keys at every level", func() {
		m := normalize(`{
			"invoice_number": "INV-4",
			"confidence": 0.93,
			"vendor": {"name": "Acme", "tax_id": "GB123"},
			"line_items": [{"description": "Widget", "sku": "W-1"}]
		}`)

		Expect(m).NotTo(HaveKey("confidence"))
		vendor := m["vendor"].(map[string]any)
		Expect(vendor).NotTo(HaveKey("tax_id"))
		Expect(vendor["name"]).To(Equal("Acme"))
		item := m["line_items"].([]any)[0].(map[string]any)
		Expect(item).NotTo(HaveKey("sku"))
	})

	It("wraps bare party strings into a name", func() {
		m := normalize(`{"vendor": "Acme Supplies", "customer": {"name": ""}}`)

		vendor := m["vendor"].(map[string]any)
		Expect(vendor["name"]).To(Equal("Acme Supplies"))
		Expect(m).NotTo(HaveKey("customer"))
	})

	It("drops line items without a description", func() {
		m := normalize(`{"line_items": [{"quantity": 1}, {"description": "Kept"}, "junk"]}`)

		items := m["line_items"].([]any)
		Expect(items).To(HaveLen(1))
		Expect(items[0].(map[string]any)["description"]).To(Equal("Kept"))
	})

	It("drops malformed currency values instead of failing the document", func() {
		m := normalize(`{"currency": "US Dollars", "invoice_number": "INV-5"}`)

		Expect(m).NotTo(HaveKey("currency"))
		Expect(m["invoice_number"]).To(Equal("INV-5"))
	})

	It("errors only on undecodable input", func() {
		_, _, err := llm.NormalizeResponseJSON([]byte("not json"), discard)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("BuildInvoiceJSONSchema", func() {
	It("accepts a fully-populated document", func() {
		err := llm.ValidateJSONAgainstSchema(llm.BuildInvoiceJSONSchema(), []byte(structuredReply))
		Expect(err).NotTo(HaveOccurred())
	})

	It("accepts an empty document since every field is best-effort", func() {
		err := llm.ValidateJSONAgainstSchema(llm.BuildInvoiceJSONSchema(), []byte(`{}`))
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects unknown fields", func() {
		err := llm.ValidateJSONAgainstSchema(llm.BuildInvoiceJSONSchema(), []byte(`{"surprise": 1}`))
		Expect(err).To(HaveOccurred())
	})

	It("rejects non-numeric totals", func() {
		err := llm.ValidateJSONAgainstSchema(llm.BuildInvoiceJSONSchema(), []byte(`{"grand_total": "a lot"}`))
		Expect(err).To(HaveOccurred())
	})
})
