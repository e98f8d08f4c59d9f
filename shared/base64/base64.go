package base64

import "strings"

const (
	uriPrefix    = "data:"
	base64Marker = ";base64,"
)

// GetContentType extracts the media type from a base64 data URI.
func GetContentType(file string) string {
	end := strings.Index(file, base64Marker)
	if end < len(uriPrefix) {
		return ""
	}

	return file[len(uriPrefix):end]
}
