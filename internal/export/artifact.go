package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"invoice-extractor/internal/common"
	"invoice-extractor/internal/invoice"
)

// Format identifies one downloadable rendering of an extraction result.
type Format string

const (
	FormatTXT  Format = "txt"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatTXT:
		return FormatTXT, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX, "excel":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// ContentType returns the MIME type served for this format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/plain"
	}
}

// Artifact is one downloadable byte stream handed back to the caller.
type Artifact struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// Renderer produces artifacts from a single extraction result.
type Renderer struct {
	prefix string
	logger *slog.Logger
}

func NewRenderer(prefix string, logger *slog.Logger) *Renderer {
	if prefix == "" {
		prefix = "invoice"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{prefix: prefix, logger: logger}
}

// Render produces the requested formats. Formats are independent: one
// failing to render is reported in the error slice and skipped while the
// rest are still produced. The same result may be rendered in any order
// or combination; the result is never mutated.
func (r *Renderer) Render(res *invoice.Result, formats []Format, stamp time.Time) ([]Artifact, []error) {
	start := time.Now()
	ts := stamp.Format("20060102_150405")

	artifacts := make([]Artifact, 0, len(formats))
	var errs []error
	for _, f := range formats {
		data, err := Bytes(res, f)
		if err != nil {
			r.logger.Error("export.render.failed", "format", string(f), "error", err)
			errs = append(errs, common.ExportError(string(f), err))
			continue
		}
		artifacts = append(artifacts, Artifact{
			Filename:    fmt.Sprintf("%s_%s.%s", r.prefix, ts, f),
			ContentType: f.ContentType(),
			Data:        data,
		})
	}

	r.logger.Info("export.render.ok",
		"formats", len(formats),
		"artifacts", len(artifacts),
		"failed", len(errs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return artifacts, errs
}

// Bytes renders the result in a single format.
func Bytes(res *invoice.Result, f Format) ([]byte, error) {
	switch f {
	case FormatTXT:
		return TXT(res)
	case FormatJSON:
		return JSON(res)
	case FormatCSV:
		return CSV(res)
	case FormatXLSX:
		return XLSX(res)
	default:
		return nil, fmt.Errorf("unknown export format %q", f)
	}
}
