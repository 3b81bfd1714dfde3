package export_test

import (
	"bytes"
	"encoding/csv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"invoice-extractor/internal/export"
	"invoice-extractor/internal/invoice"
)

func readCSV(data []byte) [][]string {
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	Expect(err).NotTo(HaveOccurred())
	return rows
}

var _ = Describe("CSV", func() {
	It("flattens one row per line item with header fields repeated", func() {
		res := sampleResult()
		res.LineItems = append(res.LineItems, invoice.LineItem{
			Description: "Gadget",
			Quantity:    invoice.Amount(1),
			UnitPrice:   invoice.Amount(5),
			Total:       invoice.Amount(5),
		})

		data, err := export.CSV(res)
		Expect(err).NotTo(HaveOccurred())

		rows := readCSV(data)
		Expect(rows).To(HaveLen(3)) // header + two items
		for _, row := range rows[1:] {
			Expect(row[0]).To(Equal("INV-1001"))
			Expect(row[1]).To(Equal("USD"))
			Expect(row[4]).To(Equal("Acme Supplies"))
			Expect(row[5]).To(Equal("Jane Doe"))
			Expect(row[10]).To(Equal("19"))
			Expect(row[12]).To(Equal("20.9"))
		}
		Expect(rows[1][6]).To(Equal("Widget"))
		Expect(rows[2][6]).To(Equal("Gadget"))
	})

	It("produces exactly one data row for zero line items", func() {
		res := sampleResult()
		res.LineItems = nil

		data, err := export.CSV(res)
		Expect(err).NotTo(HaveOccurred())

		rows := readCSV(data)
		Expect(rows).To(HaveLen(2)) // header + one row
		Expect(rows[1][0]).To(Equal("INV-1001"))
		Expect(rows[1][6]).To(Equal("")) // empty item columns
		Expect(rows[1][7]).To(Equal(""))
		Expect(rows[1][12]).To(Equal("20.9"))
	})

	It("renders the end-to-end example row", func() {
		data, err := export.CSV(sampleResult())
		Expect(err).NotTo(HaveOccurred())

		rows := readCSV(data)
		Expect(rows).To(HaveLen(2))
		Expect(rows[1]).To(Equal([]string{
			"INV-1001", "USD", "2026-03-14", "",
			"Acme Supplies", "Jane Doe",
			"Widget", "2", "9.5", "19",
			"19", "1.9", "20.9",
		}))
	})

	It("degrades gracefully when every header field is absent", func() {
		data, err := export.CSV(&invoice.Result{})
		Expect(err).NotTo(HaveOccurred())

		rows := readCSV(data)
		Expect(rows).To(HaveLen(2))
		for _, col := range rows[1] {
			Expect(col).To(Equal(""))
		}
	})

	It("degrades unstructured results to a raw_answer column", func() {
		res := &invoice.Result{RawAnswer: "could not parse", Unstructured: true}

		data, err := export.CSV(res)
		Expect(err).NotTo(HaveOccurred())

		rows := readCSV(data)
		Expect(rows).To(Equal([][]string{{"raw_answer"}, {"could not parse"}}))
	})

	It("is idempotent", func() {
		a, err := export.CSV(sampleResult())
		Expect(err).NotTo(HaveOccurred())
		b, err := export.CSV(sampleResult())
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})
})
