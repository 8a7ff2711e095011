package analyzer

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"

	"github.com/joseph-ayodele/agent-insights/internal/entity"
)

// resultCache memoizes MetricsRecords within one process lifetime. It is a
// performance shortcut for re-running identical inputs, not a correctness
// requirement; results are never evicted because a run rarely touches more
// than a handful of input pairs.
type resultCache struct {
	results map[string]*entity.MetricsRecord
}

func newResultCache() *resultCache {
	return &resultCache{results: make(map[string]*entity.MetricsRecord)}
}

func (c *resultCache) get(key string) (*entity.MetricsRecord, bool) {
	rec, ok := c.results[key]
	return rec, ok
}

func (c *resultCache) put(key string, rec *entity.MetricsRecord) {
	c.results[key] = rec
}

// cacheKey derives the memoization key from both input digests and the
// config fingerprint. Empty digests disable caching for the run.
func cacheKey(rosterDigest, txDigest string, cfg entity.AnalysisConfig) string {
	if rosterDigest == "" || txDigest == "" {
		return ""
	}
	digest := xxhash.New()
	_, _ = digest.WriteString(rosterDigest)
	_, _ = digest.WriteString("|")
	_, _ = digest.WriteString(txDigest)
	_, _ = digest.WriteString("|")
	_, _ = digest.WriteString(cfg.Fingerprint())
	return hex.EncodeToString(digest.Sum(nil))
}
