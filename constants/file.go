package constants

import "strings"

// AllowedExtensions holds the allowed file extensions for agreement uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
}

// MaxUploadBytes caps the multipart upload size (50 MiB).
const MaxUploadBytes = 50 << 20

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
