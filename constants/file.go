package constants

import "strings"

// AllowedImageMIMEs holds the image content types accepted for extraction.
var AllowedImageMIMEs = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

// AllowedExtensions holds the default allowed file extensions for invoice uploads.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MIMEForExt maps an allowed extension to its content type, or "" when
// the extension is not an accepted image format.
func MIMEForExt(ext string) string {
	switch NormalizeExt(ext) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	default:
		return ""
	}
}
