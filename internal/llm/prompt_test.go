package llm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"invoice-extractor/internal/llm"
)

var _ = Describe("prompts", func() {
	It("asks auto mode for schema-conforming JSON and English translation", func() {
		sys := llm.BuildSystemPrompt(llm.ModeAuto)
		Expect(sys).To(ContainSubstring("ONLY JSON"))
		Expect(sys).To(ContainSubstring("Translate ALL text to English"))
		Expect(sys).To(ContainSubstring("omit"))
	})

	It("restricts question mode to the image content", func() {
		sys := llm.BuildSystemPrompt(llm.ModeQuestion)
		Expect(sys).To(ContainSubstring("ONLY what is visible"))
	})

	It("carries the user question in the user prompt", func() {
		user := llm.BuildUserPrompt(llm.ExtractRequest{
			Mode:     llm.ModeQuestion,
			Question: "  What is the due date?  ",
		})
		Expect(user).To(ContainSubstring("What is the due date?"))
	})
})

var _ = Describe("ParseMode", func() {
	It("normalizes case and whitespace", func() {
		Expect(llm.ParseMode(" Auto ")).To(Equal(llm.ModeAuto))
		Expect(llm.ParseMode("QUESTION")).To(Equal(llm.ModeQuestion))
	})

	It("defaults empty to auto", func() {
		Expect(llm.ParseMode("")).To(Equal(llm.ModeAuto))
	})

	It("rejects unknown modes", func() {
		_, err := llm.ParseMode("chat")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("EncodeImageDataURL", func() {
	It("builds a base64 data URL", func() {
		url := llm.EncodeImageDataURL([]byte{0xFF, 0xD8, 0xFF}, "image/jpeg")
		Expect(url).To(HavePrefix("data:image/jpeg;base64,"))
	})
})
