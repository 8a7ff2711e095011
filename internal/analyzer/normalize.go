package analyzer

import (
	"strings"

	"github.com/joseph-ayodele/agent-insights/internal/entity"
	"github.com/joseph-ayodele/agent-insights/internal/tabular"
)

// Expected column names. Lookup is case/whitespace-insensitive and some
// columns have a short alias seen in older exports.
const (
	colAccountID  = "Account ID"
	colEntityType = "Entity"
	colStatus     = "Status"
	colRegDate    = "Registration Date"

	colUserID    = "User Identifier"
	colParentID  = "Parent User Identifier"
	colService   = "Service Name"
	colTxType    = "Transaction Type"
	colProduct   = "Product Name"
	colCreatedAt = "Created At"
	colAmount    = "Transaction Amount"
	colAmountAlt = "Amount"
	colTxStatus  = "Transaction Status"
)

// NormalizeRoster turns a raw onboarding table into typed records.
// Categorical fields are trimmed and upper-cased; registration timestamps
// parse leniently into nil on failure. A missing column leaves the field
// empty for every record — never an error.
func NormalizeRoster(t *tabular.Table) []entity.EntityRecord {
	if t == nil || t.Len() == 0 {
		return nil
	}

	idCol, hasID := t.Column(colAccountID)
	typeCol, hasType := t.Column(colEntityType)
	statusCol, hasStatus := t.Column(colStatus)
	regCol, hasReg := t.Column(colRegDate)

	records := make([]entity.EntityRecord, 0, t.Len())
	for i := range t.Rows {
		var rec entity.EntityRecord
		if hasID {
			rec.AccountID = strings.TrimSpace(t.Cell(i, idCol))
		}
		if hasType {
			rec.EntityType = tabular.NormalizeCell(t.Cell(i, typeCol))
		}
		if hasStatus {
			rec.Status = tabular.NormalizeCell(t.Cell(i, statusCol))
		}
		if hasReg {
			rec.RegisteredAt = tabular.ParseTimestamp(t.Cell(i, regCol))
		}
		records = append(records, rec)
	}
	return records
}

// NormalizeTransactions turns a raw transaction table into typed records.
// Amounts coerce to nil when non-numeric; timestamps parse leniently.
func NormalizeTransactions(t *tabular.Table) []entity.TransactionRecord {
	if t == nil || t.Len() == 0 {
		return nil
	}

	userCol, hasUser := t.Column(colUserID)
	parentCol, hasParent := t.Column(colParentID)
	serviceCol, hasService := t.Column(colService)
	typeCol, hasType := t.Column(colTxType)
	productCol, hasProduct := t.Column(colProduct)
	createdCol, hasCreated := t.Column(colCreatedAt)

	amountCol, hasAmount := t.Column(colAmount)
	if !hasAmount {
		amountCol, hasAmount = t.Column(colAmountAlt)
	}
	statusCol, hasStatus := t.Column(colTxStatus)
	if !hasStatus {
		statusCol, hasStatus = t.Column(colStatus)
	}

	records := make([]entity.TransactionRecord, 0, t.Len())
	for i := range t.Rows {
		var rec entity.TransactionRecord
		if hasUser {
			rec.UserID = strings.TrimSpace(t.Cell(i, userCol))
		}
		if hasParent {
			rec.ParentUserID = strings.TrimSpace(t.Cell(i, parentCol))
		}
		if hasService {
			rec.ServiceName = tabular.NormalizeCell(t.Cell(i, serviceCol))
		}
		if hasType {
			rec.TransactionType = tabular.NormalizeCell(t.Cell(i, typeCol))
		}
		if hasProduct {
			rec.ProductName = tabular.NormalizeCell(t.Cell(i, productCol))
		}
		if hasStatus {
			rec.Status = strings.TrimSpace(t.Cell(i, statusCol))
		}
		if hasAmount {
			rec.Amount = tabular.ParseAmount(t.Cell(i, amountCol))
		}
		if hasCreated {
			rec.CreatedAt = tabular.ParseTimestamp(t.Cell(i, createdCol))
		}
		records = append(records, rec)
	}
	return records
}
