package export_test

import (
	"errors"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"invoice-extractor/internal/common"
	"invoice-extractor/internal/export"
)

var _ = Describe("Renderer", func() {
	var renderer *export.Renderer
	stamp := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	BeforeEach(func() {
		renderer = export.NewRenderer("invoice", slog.New(slog.DiscardHandler))
	})

	It("produces one artifact per requested format", func() {
		artifacts, errs := renderer.Render(sampleResult(), []export.Format{
			export.FormatTXT, export.FormatJSON, export.FormatCSV, export.FormatXLSX,
		}, stamp)

		Expect(errs).To(BeEmpty())
		Expect(artifacts).To(HaveLen(4))

		Expect(artifacts[0].Filename).To(Equal("invoice_20260314_093000.txt"))
		Expect(artifacts[0].ContentType).To(Equal("text/plain"))
		Expect(artifacts[1].Filename).To(Equal("invoice_20260314_093000.json"))
		Expect(artifacts[1].ContentType).To(Equal("application/json"))
		Expect(artifacts[2].ContentType).To(Equal("text/csv"))
		Expect(artifacts[3].ContentType).To(Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"))

		for _, a := range artifacts {
			Expect(a.Data).NotTo(BeEmpty())
		}
	})

	It("keeps rendering the remaining formats when one fails", func() {
		artifacts, errs := renderer.Render(sampleResult(), []export.Format{
			export.FormatTXT, export.Format("bogus"), export.FormatCSV,
		}, stamp)

		Expect(artifacts).To(HaveLen(2))
		Expect(errs).To(HaveLen(1))
		Expect(errors.Is(errs[0], common.ErrExport)).To(BeTrue())
	})
})

var _ = Describe("ParseFormat", func() {
	It("normalizes case and accepts the excel alias", func() {
		Expect(export.ParseFormat(" TXT ")).To(Equal(export.FormatTXT))
		Expect(export.ParseFormat("Excel")).To(Equal(export.FormatXLSX))
		Expect(export.ParseFormat("xlsx")).To(Equal(export.FormatXLSX))
	})

	It("rejects unknown formats", func() {
		_, err := export.ParseFormat("pdf")
		Expect(err).To(HaveOccurred())
	})
})
