package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"invoice-extractor/internal/invoice"
)

// NormalizeResponseJSON
// - Renames known synonyms (items -> line_items, total_amount -> grand_total)
// - Drops null/empty values everywhere
// - Coerces money-ish strings ("$1,234.50") to numbers
// - Removes unknown keys (strict additionalProperties = false friendliness)
func NormalizeResponseJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	rename := func(from, to string) {
		if v, ok := m[from]; ok {
			// don't overwrite existing value if already present
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	// 1) rename synonyms to our schema
	rename("items", "line_items")
	rename("total_amount", "grand_total")
	rename("total", "grand_total")
	rename("tax_amount", "tax")
	rename("currency_code", "currency")

	// 2) coerce top-level money fields to numbers; drop what won't parse
	for _, k := range []string{"subtotal", "tax", "grand_total"} {
		coerceAmount(m, k, &dropped)
	}

	// 3) vendor/customer: keep only the party keys; a bare string becomes {name}
	for _, k := range []string{"vendor", "customer"} {
		sanitizeParty(m, k, &dropped)
	}

	// 4) line_items: each entry gets the same treatment as the top level
	if v, ok := m["line_items"]; ok {
		items, isList := v.([]any)
		if !isList {
			delete(m, "line_items")
			dropped = append(dropped, "line_items(type)")
		} else {
			cleaned := make([]any, 0, len(items))
			for i, it := range items {
				entry, isMap := it.(map[string]any)
				if !isMap {
					dropped = append(dropped, fmt.Sprintf("line_items[%d](type)", i))
					continue
				}
				renameEntry(entry, "item_total", "total")
				renameEntry(entry, "price", "unit_price")
				for _, k := range []string{"quantity", "unit_price", "total"} {
					coerceAmount(entry, k, &dropped)
				}
				trimStringKey(entry, "description", &dropped)
				for k := range maps.Clone(entry) {
					if _, ok := allowedItemKeys[k]; !ok {
						delete(entry, k)
						dropped = append(dropped, k+"(unknown)")
					}
				}
				if _, ok := entry["description"].(string); !ok {
					dropped = append(dropped, fmt.Sprintf("line_items[%d](no description)", i))
					continue
				}
				cleaned = append(cleaned, entry)
			}
			m["line_items"] = cleaned
		}
	}

	// 5) normalize currency casing; anything that is not a 3-letter code
	// is dropped rather than failing the whole document
	if v, ok := m["currency"].(string); ok {
		cur := strings.ToUpper(strings.TrimSpace(v))
		if len(cur) == 3 {
			m["currency"] = cur
		} else {
			delete(m, "currency")
			dropped = append(dropped, "currency(malformed)")
		}
	}

	// 6) trim obvious strings, dropping empties
	for _, k := range []string{"invoice_number", "invoice_date", "due_date", "currency", "payment_terms"} {
		trimStringKey(m, k, &dropped)
	}

	// 7) remove unknown keys (everything not in the schema set below)
	for k := range maps.Clone(m) {
		if _, ok := allowedTopKeys[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.parse.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

var allowedTopKeys = map[string]struct{}{
	"invoice_number": {}, "invoice_date": {}, "due_date": {}, "currency": {},
	"vendor": {}, "customer": {}, "line_items": {},
	"subtotal": {}, "tax": {}, "grand_total": {}, "payment_terms": {},
}

var allowedItemKeys = map[string]struct{}{
	"description": {}, "quantity": {}, "unit_price": {}, "total": {},
}

// coerceAmount turns a money-ish value into a JSON number, leniently.
func coerceAmount(m map[string]any, k string, dropped *[]string) {
	v, ok := m[k]
	if !ok {
		return
	}
	switch t := v.(type) {
	case float64:
		// already a number
	case string:
		if f := invoice.ParseAmount(t); f != nil {
			m[k] = *f
			*dropped = append(*dropped, k+"(coerced)")
		} else {
			delete(m, k)
			*dropped = append(*dropped, k+"(unparseable)")
		}
	case nil:
		delete(m, k)
		*dropped = append(*dropped, k+"(null)")
	default:
		delete(m, k)
		*dropped = append(*dropped, k+"(type)")
	}
}

func sanitizeParty(m map[string]any, k string, dropped *[]string) {
	v, ok := m[k]
	if !ok {
		return
	}
	switch t := v.(type) {
	case map[string]any:
		for _, f := range []string{"name", "address", "contact"} {
			trimStringKey(t, f, dropped)
		}
		for kk := range maps.Clone(t) {
			switch kk {
			case "name", "address", "contact":
			default:
				delete(t, kk)
				*dropped = append(*dropped, k+"."+kk+"(unknown)")
			}
		}
		if len(t) == 0 {
			delete(m, k)
			*dropped = append(*dropped, k+"(empty)")
		}
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			delete(m, k)
			*dropped = append(*dropped, k+"(empty)")
		} else {
			m[k] = map[string]any{"name": s}
			*dropped = append(*dropped, k+"(wrapped)")
		}
	case nil:
		delete(m, k)
		*dropped = append(*dropped, k+"(null)")
	default:
		delete(m, k)
		*dropped = append(*dropped, k+"(type)")
	}
}

func trimStringKey(m map[string]any, k string, dropped *[]string) {
	v, ok := m[k]
	if !ok {
		return
	}
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" || strings.EqualFold(s, "n/a") {
			delete(m, k)
			*dropped = append(*dropped, k+"(empty)")
		} else {
			m[k] = s
		}
	case nil:
		delete(m, k)
		*dropped = append(*dropped, k+"(null)")
	}
}

func renameEntry(entry map[string]any, from, to string) {
	if v, ok := entry[from]; ok {
		if _, exists := entry[to]; !exists {
			entry[to] = v
		}
		delete(entry, from)
	}
}
