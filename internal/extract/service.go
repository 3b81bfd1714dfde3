package extract

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"invoice-extractor/constants"
	"invoice-extractor/internal/common"
	"invoice-extractor/internal/invoice"
	"invoice-extractor/internal/llm"
)

// Request is one extraction interaction: an image plus a mode selector.
type Request struct {
	Image    []byte
	MIMEType string
	Mode     llm.Mode
	Question string
}

// Service drives one extraction: validate input, call the model, parse
// the reply. It is synchronous and holds no state between interactions;
// each Result is private to the caller.
type Service struct {
	extractor llm.VisionExtractor
	logger    *slog.Logger
}

func NewService(extractor llm.VisionExtractor, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{extractor: extractor, logger: logger}
}

// Process validates the request, runs the upstream call, and normalizes
// the response. Validation failures surface before any upstream call.
// An unparseable auto-mode response is not an error: the Result carries
// the raw text with the unstructured flag set.
func (s *Service) Process(ctx context.Context, req Request) (*invoice.Result, error) {
	start := time.Now()

	if err := validate(&req); err != nil {
		s.logger.Warn("extract.rejected", "error", err)
		return nil, err
	}

	s.logger.Info("extract.start",
		"mode", string(req.Mode),
		"image_bytes", len(req.Image),
		"mime_type", req.MIMEType,
	)

	raw, err := s.extractor.Extract(ctx, llm.ExtractRequest{
		Image:    req.Image,
		MIMEType: req.MIMEType,
		Mode:     req.Mode,
		Question: req.Question,
	})
	if err != nil {
		s.logger.Error("extract.failed",
			"mode", string(req.Mode),
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	res := llm.ParseResponse(req.Mode, raw, s.logger)
	s.logger.Info("extract.ok",
		"mode", string(req.Mode),
		"structured", res.IsStructured(),
		"line_items", len(res.LineItems),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// validate rejects bad input before any upstream call and fills in the
// content type by sniffing when the caller did not supply one.
func validate(req *Request) error {
	if len(req.Image) == 0 {
		return common.EmptyInputError("an invoice image is required")
	}
	if req.Mode == "" {
		req.Mode = llm.ModeAuto
	}
	if req.Mode == llm.ModeQuestion && strings.TrimSpace(req.Question) == "" {
		return common.EmptyInputError("question mode requires a non-empty question")
	}

	if req.MIMEType == "" {
		req.MIMEType = http.DetectContentType(req.Image)
	}
	if _, ok := constants.AllowedImageMIMEs[req.MIMEType]; !ok {
		return common.EmptyInputError("unsupported image type " + req.MIMEType + " (JPEG or PNG)")
	}
	return nil
}
