package constants

import "strings"

// EntityStatus is the normalized (upper/trimmed) status of a roster entity.
type EntityStatus string

// Statuses that mark an entity as not active. Anything outside this set —
// including typos and values we have never seen — counts as active. The
// upstream dashboards all implement this deny-list, so we preserve it
// rather than switching to an ACTIVE allow-list.
var notActiveStatuses = map[EntityStatus]struct{}{
	"TERMINATED": {},
	"BLOCKED":    {},
	"SUSPENDED":  {},
	"INACTIVE":   {},
}

// IsActiveStatus reports whether a normalized entity status counts as active.
func IsActiveStatus(status string) bool {
	_, notActive := notActiveStatuses[EntityStatus(status)]
	return !notActive
}

// Markers used to bucket transaction statuses. A status is matched by
// case-insensitive substring; a status matching neither set lands in
// neither bucket, so successful + failed can be less than the total.
var (
	successMarkers = []string{"SUCCESS", "COMPLETED"}
	failureMarkers = []string{"FAIL", "REJECTED", "ERROR", "DECLINED"}
)

// IsSuccessStatus reports whether a transaction status counts as successful.
func IsSuccessStatus(status string) bool {
	return containsAny(status, successMarkers)
}

// IsFailureStatus reports whether a transaction status counts as failed.
func IsFailureStatus(status string) bool {
	return containsAny(status, failureMarkers)
}

func containsAny(s string, markers []string) bool {
	upper := strings.ToUpper(s)
	for _, m := range markers {
		if strings.Contains(upper, m) {
			return true
		}
	}
	return false
}
