package llm

import (
	"encoding/base64"
)

// EncodeImageDataURL packages image bytes as a base64 data URL for the
// chat-completions image_url content part.
func EncodeImageDataURL(image []byte, mimeType string) string {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(image)
}
