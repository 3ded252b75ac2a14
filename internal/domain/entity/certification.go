package entity

import "time"

// Certification statuses.
const (
	CertificationStatusActive         = "active"
	CertificationStatusExpired        = "expired"
	CertificationStatusRenewalPending = "renewal_pending"
)

// Certification is a client certification with an expiry date.
type Certification struct {
	ID          string
	Title       string
	ClientID    string
	IssuingBody string
	IssuedDate  time.Time
	ExpiryDate  time.Time
	Status      string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var certificationTransitions = map[string][]string{
	CertificationStatusActive:         {CertificationStatusRenewalPending, CertificationStatusExpired},
	CertificationStatusRenewalPending: {CertificationStatusActive, CertificationStatusExpired},
	CertificationStatusExpired:        {CertificationStatusRenewalPending},
}

// CanTransitionCertification reports whether a certification status move is allowed.
func CanTransitionCertification(from, to string) bool {
	for _, next := range certificationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
