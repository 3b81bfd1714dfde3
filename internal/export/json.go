package export

import (
	"encoding/json"
	"fmt"

	"invoice-extractor/internal/invoice"
)

// JSON serializes the result as-is. Absent fields are omitted (never
// null), so re-parsing the output yields field-for-field equality with
// the original result.
func JSON(res *invoice.Result) ([]byte, error) {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return append(b, '\n'), nil
}
