package entity

import "time"

// ComplianceEvent statuses (user-set lifecycle, not the display bucket).
const (
	ComplianceStatusPending    = "pending"
	ComplianceStatusInProgress = "in_progress"
	ComplianceStatusCompleted  = "completed"
	ComplianceStatusOverdue    = "overdue"
)

// Compliance priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ComplianceEvent is a regulatory obligation with a due date.
type ComplianceEvent struct {
	ID          string
	Title       string
	Description string
	ClientID    string
	DueDate     time.Time
	Status      string
	Priority    string
	Notes       string
	DocumentIDs []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var complianceTransitions = map[string][]string{
	ComplianceStatusPending:    {ComplianceStatusInProgress, ComplianceStatusCompleted, ComplianceStatusOverdue},
	ComplianceStatusInProgress: {ComplianceStatusCompleted, ComplianceStatusOverdue},
	ComplianceStatusOverdue:    {ComplianceStatusInProgress, ComplianceStatusCompleted},
}

// CanTransitionCompliance reports whether a compliance status move is allowed.
// Completed is terminal.
func CanTransitionCompliance(from, to string) bool {
	for _, next := range complianceTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
