package llm

import (
	"strings"
)

// BuildSystemPrompt composes the system message for the given mode with
// translation rules and strict-but-practical formatting rules.
func BuildSystemPrompt(mode Mode) string {
	if mode == ModeQuestion {
		parts := []string{
			"You are an invoice analyst. Answer the user's question using ONLY what is visible in the attached invoice image.",
			"Translate any non-English content to English when quoting it; proper names may be transliterated.",
			"If the answer is not visible on the invoice, say so plainly.",
			"Answer concisely in plain text. Do not add commentary about the image itself.",
		}
		return strings.Join(parts, " ")
	}

	parts := []string{
		"You are an invoice parser. Return ONLY JSON that matches the provided JSON Schema.",
		"Translate ALL text to English: item descriptions, addresses, and payment terms in other languages (Hindi, Spanish, etc.) must be translated; proper names may be transliterated to English characters.",
		"Use ISO-8601 dates (YYYY-MM-DD).",
		"Currency must be a 3-letter ISO 4217 code (USD, EUR, INR).",
		"Amounts are plain JSON numbers without currency symbols or thousands separators.",
		"List line items in the order they appear on the invoice.",

		// Formatting hygiene:
		"Never output null. If a field is not present on the invoice, omit it.",
		"Do not wrap the JSON in markdown fences or add any commentary.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt composes the text part that travels with the image.
func BuildUserPrompt(req ExtractRequest) string {
	if req.Mode == ModeQuestion {
		var b strings.Builder
		b.WriteString("Question about the attached invoice:\n")
		b.WriteString(strings.TrimSpace(req.Question))
		return b.String()
	}
	return "Extract every field of the attached invoice. Return ONLY JSON that matches the provided schema."
}
