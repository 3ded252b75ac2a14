package entity

import "time"

// Anniversary statuses.
const (
	AnniversaryStatusUpcoming     = "upcoming"
	AnniversaryStatusAcknowledged = "acknowledged"
	AnniversaryStatusCelebrated   = "celebrated"
)

// Anniversary is a recurring service milestone for a client: the next date is
// always derived from the last service date plus the frequency, never stored.
type Anniversary struct {
	ID              string
	Title           string
	ClientID        string
	LastServiceDate time.Time
	FrequencyMonths int
	Status          string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NextServiceDate returns last service date + frequency months.
func (a *Anniversary) NextServiceDate() time.Time {
	return a.LastServiceDate.AddDate(0, a.FrequencyMonths, 0)
}

var anniversaryTransitions = map[string][]string{
	AnniversaryStatusUpcoming:     {AnniversaryStatusAcknowledged, AnniversaryStatusCelebrated},
	AnniversaryStatusAcknowledged: {AnniversaryStatusCelebrated, AnniversaryStatusUpcoming},
	AnniversaryStatusCelebrated:   {AnniversaryStatusUpcoming},
}

// CanTransitionAnniversary reports whether an anniversary status move is
// allowed. Celebrated rolls back to upcoming when the cycle restarts.
func CanTransitionAnniversary(from, to string) bool {
	for _, next := range anniversaryTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
