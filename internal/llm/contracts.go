package llm

import (
	"context"
	"fmt"
	"strings"
)

// Mode selects what the model is asked to do with the invoice image.
type Mode string

const (
	// ModeAuto requests a full structured extraction of every known field.
	ModeAuto Mode = "auto"
	// ModeQuestion requests a free-text answer to a user question.
	ModeQuestion Mode = "question"
)

// ParseMode normalizes a user-supplied mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeAuto, "":
		return ModeAuto, nil
	case ModeQuestion:
		return ModeQuestion, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// ExtractRequest carries one image and the instructions for it.
type ExtractRequest struct {
	Image    []byte
	MIMEType string
	Mode     Mode
	Question string
}

// VisionExtractor is the interface the extraction service depends on.
// Implementations send the image plus prompt to a multimodal model and
// return the raw text of the reply.
type VisionExtractor interface {
	Extract(ctx context.Context, req ExtractRequest) (string, error)
}
