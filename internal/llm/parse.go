package llm

import (
	"encoding/json"
	"log/slog"
	"strings"

	"invoice-extractor/internal/invoice"
)

// ParseResponse turns the raw model reply into a Result. Question mode
// stores the reply verbatim. Auto mode attempts the structured path:
// extract the JSON block, sanitize, validate against the schema, and
// unmarshal; any failure along the way falls back to an unstructured
// Result carrying the raw text. Parsing never returns an error.
func ParseResponse(mode Mode, raw string, logger *slog.Logger) *invoice.Result {
	if logger == nil {
		logger = slog.Default()
	}
	trimmed := strings.TrimSpace(raw)

	if mode == ModeQuestion {
		return &invoice.Result{RawAnswer: trimmed}
	}

	fallback := func(reason string, err error) *invoice.Result {
		logger.Warn("llm.parse.unstructured_fallback", "reason", reason, "error", err)
		return &invoice.Result{RawAnswer: trimmed, Unstructured: true}
	}

	block, ok := ExtractJSONBlock(trimmed)
	if !ok {
		return fallback("no json object found", nil)
	}

	cleaned, _, err := NormalizeResponseJSON(block, logger)
	if err != nil {
		return fallback("sanitize failed", err)
	}

	if err := ValidateJSONAgainstSchema(BuildInvoiceJSONSchema(), cleaned); err != nil {
		return fallback("schema validation failed", err)
	}

	var res invoice.Result
	if err := json.Unmarshal(cleaned, &res); err != nil {
		return fallback("unmarshal failed", err)
	}
	return &res
}

// ExtractJSONBlock locates the outermost JSON object in a model reply,
// tolerating markdown fences and surrounding prose.
func ExtractJSONBlock(s string) ([]byte, bool) {
	s = strings.TrimSpace(s)

	// strip ```json ... ``` fences if present
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return nil, false
	}
	return []byte(s[start : end+1]), true
}
