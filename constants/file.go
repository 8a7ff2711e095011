package constants

import "strings"

// AllowedExtensions holds the input formats the loader accepts.
var AllowedExtensions = map[string]struct{}{
	"csv": {},
	"txt": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
