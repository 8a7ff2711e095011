package analyzer

import (
	"github.com/joseph-ayodele/agent-insights/constants"
	"github.com/joseph-ayodele/agent-insights/internal/entity"
)

// FilterActive keeps roster entities whose status is outside the
// not-active set. Unrecognized statuses count as active (deny-list
// semantics, preserved from the source dashboards).
func FilterActive(roster []entity.EntityRecord) []entity.EntityRecord {
	out := make([]entity.EntityRecord, 0, len(roster))
	for _, e := range roster {
		if constants.IsActiveStatus(e.Status) {
			out = append(out, e)
		}
	}
	return out
}

// CountByType counts agents (exact AGENT match) and tellers (TELLER
// substring) in a roster slice. An "AGENT TELLER" is a teller, not an
// agent.
func CountByType(roster []entity.EntityRecord) (agents, tellers int) {
	for _, e := range roster {
		if constants.IsAgent(e.EntityType) {
			agents++
		}
		if constants.IsTeller(e.EntityType) {
			tellers++
		}
	}
	return agents, tellers
}

// ActiveAgentIDs returns the account IDs of active exact-AGENT entities.
func ActiveAgentIDs(roster []entity.EntityRecord) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, e := range roster {
		if constants.IsAgent(e.EntityType) && constants.IsActiveStatus(e.Status) {
			ids[e.AccountID] = struct{}{}
		}
	}
	return ids
}

// FilterRegisteredInYear keeps entities registered in the target year.
// Missing registration timestamps drop out of the subset.
func FilterRegisteredInYear(roster []entity.EntityRecord, year int) []entity.EntityRecord {
	out := make([]entity.EntityRecord, 0, len(roster))
	for _, e := range roster {
		if e.RegisteredAt != nil && e.RegisteredAt.Year() == year {
			out = append(out, e)
		}
	}
	return out
}

// FilterByYear keeps transactions whose timestamp falls in the target
// year. Rows with unparseable timestamps are excluded from every
// year/month-bucketed aggregate.
func FilterByYear(txs []entity.TransactionRecord, year int) []entity.TransactionRecord {
	out := make([]entity.TransactionRecord, 0, len(txs))
	for _, t := range txs {
		if t.InYear(year) {
			out = append(out, t)
		}
	}
	return out
}

// DepositSubset keeps transactions where any keyword matches any of the
// service, type, or product labels. A single field/keyword hit is enough;
// there is no precedence between keywords.
func DepositSubset(txs []entity.TransactionRecord, keywords []string) []entity.TransactionRecord {
	out := make([]entity.TransactionRecord, 0, len(txs))
	for _, t := range txs {
		if constants.MatchesAnyKeyword(keywords, t.ServiceName, t.TransactionType, t.ProductName) {
			out = append(out, t)
		}
	}
	return out
}
