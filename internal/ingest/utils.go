package ingest

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"

	"github.com/joseph-ayodele/agent-insights/constants"
)

// AllowedExt checks if a file extension is in the allowed set (csv/txt).
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// Checksum returns the hex xxhash digest of raw file content. It keys the
// analyzer's memoization cache and shows up in run stats.
func Checksum(data []byte) string {
	digest := xxhash.New()
	_, _ = digest.Write(data)
	return hex.EncodeToString(digest.Sum(nil))
}
