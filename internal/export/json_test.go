package export_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"invoice-extractor/internal/export"
	"invoice-extractor/internal/invoice"
)

var _ = Describe("JSON", func() {
	It("round-trips to field-for-field equality", func() {
		original := sampleResult()

		data, err := export.JSON(original)
		Expect(err).NotTo(HaveOccurred())

		var back invoice.Result
		Expect(json.Unmarshal(data, &back)).To(Succeed())
		Expect(&back).To(Equal(original))
	})

	It("omits absent fields instead of emitting null", func() {
		data, err := export.JSON(&invoice.Result{InvoiceNumber: "INV-2"})
		Expect(err).NotTo(HaveOccurred())

		var m map[string]any
		Expect(json.Unmarshal(data, &m)).To(Succeed())
		Expect(m).To(HaveLen(1))
		Expect(m["invoice_number"]).To(Equal("INV-2"))
		Expect(string(data)).NotTo(ContainSubstring("null"))
	})

	It("round-trips an absent-everything result", func() {
		original := &invoice.Result{}

		data, err := export.JSON(original)
		Expect(err).NotTo(HaveOccurred())

		var back invoice.Result
		Expect(json.Unmarshal(data, &back)).To(Succeed())
		Expect(&back).To(Equal(original))
	})

	It("round-trips an unstructured result", func() {
		original := &invoice.Result{RawAnswer: "raw", Unstructured: true}

		data, err := export.JSON(original)
		Expect(err).NotTo(HaveOccurred())

		var back invoice.Result
		Expect(json.Unmarshal(data, &back)).To(Succeed())
		Expect(&back).To(Equal(original))
	})
})
