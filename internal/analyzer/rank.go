package analyzer

import (
	"sort"

	"github.com/joseph-ayodele/agent-insights/internal/entity"
)

// RankTopPerformers groups the deposit subset by user, sums and counts
// parseable amounts, and returns the top entries by summed amount. The
// sort is stable and has no secondary key: ties keep first-appearance
// order, which is why chunked loading must preserve input order.
func RankTopPerformers(deposits []entity.TransactionRecord, limit int) []entity.TopAgent {
	if limit <= 0 {
		return nil
	}

	byUser := make(map[string]int)
	ranked := make([]entity.TopAgent, 0)
	for _, t := range deposits {
		if t.UserID == "" {
			continue
		}
		i, seen := byUser[t.UserID]
		if !seen {
			i = len(ranked)
			byUser[t.UserID] = i
			ranked = append(ranked, entity.TopAgent{UserID: t.UserID})
		}
		if t.Amount != nil {
			ranked[i].TotalAmount += *t.Amount
			ranked[i].TransactionCount++
		}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].TotalAmount > ranked[b].TotalAmount
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// ActivityPartition counts deposits per user over the whole filtered
// period and splits users at the threshold (>= is active). Distinct from
// the per-month evaluation: both live in the record independently.
func ActivityPartition(deposits []entity.TransactionRecord, threshold int) (active, inactive int) {
	counts := make(map[string]int)
	for _, t := range deposits {
		if t.UserID == "" {
			continue
		}
		counts[t.UserID]++
	}
	for _, n := range counts {
		if n >= threshold {
			active++
		} else {
			inactive++
		}
	}
	return active, inactive
}
