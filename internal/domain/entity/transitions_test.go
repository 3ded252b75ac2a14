package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
)

func TestCanTransitionInvoice(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{entity.InvoiceStatusDraft, entity.InvoiceStatusSent, true},
		{entity.InvoiceStatusDraft, entity.InvoiceStatusCancelled, true},
		{entity.InvoiceStatusDraft, entity.InvoiceStatusPaid, false},
		{entity.InvoiceStatusDraft, entity.InvoiceStatusViewed, false},
		{entity.InvoiceStatusSent, entity.InvoiceStatusViewed, true},
		{entity.InvoiceStatusSent, entity.InvoiceStatusPaid, true},
		{entity.InvoiceStatusSent, entity.InvoiceStatusCancelled, true},
		{entity.InvoiceStatusSent, entity.InvoiceStatusDraft, false},
		{entity.InvoiceStatusViewed, entity.InvoiceStatusPaid, true},
		{entity.InvoiceStatusViewed, entity.InvoiceStatusSent, false},
		// paid and cancelled are terminal
		{entity.InvoiceStatusPaid, entity.InvoiceStatusCancelled, false},
		{entity.InvoiceStatusPaid, entity.InvoiceStatusDraft, false},
		{entity.InvoiceStatusCancelled, entity.InvoiceStatusSent, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, entity.CanTransitionInvoice(c.from, c.to),
			"%s -> %s", c.from, c.to)
	}
}

func TestCanTransitionCompliance(t *testing.T) {
	assert.True(t, entity.CanTransitionCompliance(entity.ComplianceStatusPending, entity.ComplianceStatusInProgress))
	assert.True(t, entity.CanTransitionCompliance(entity.ComplianceStatusInProgress, entity.ComplianceStatusCompleted))
	assert.True(t, entity.CanTransitionCompliance(entity.ComplianceStatusOverdue, entity.ComplianceStatusCompleted))
	assert.False(t, entity.CanTransitionCompliance(entity.ComplianceStatusCompleted, entity.ComplianceStatusPending),
		"completed is terminal")
}

func TestCanTransitionCertification(t *testing.T) {
	assert.True(t, entity.CanTransitionCertification(entity.CertificationStatusActive, entity.CertificationStatusRenewalPending))
	assert.True(t, entity.CanTransitionCertification(entity.CertificationStatusRenewalPending, entity.CertificationStatusActive))
	assert.True(t, entity.CanTransitionCertification(entity.CertificationStatusExpired, entity.CertificationStatusRenewalPending))
	assert.False(t, entity.CanTransitionCertification(entity.CertificationStatusExpired, entity.CertificationStatusActive),
		"expired certifications renew through renewal_pending")
}

func TestAnniversaryNextServiceDate(t *testing.T) {
	a := entity.Anniversary{
		LastServiceDate: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		FrequencyMonths: 12,
	}
	assert.Equal(t, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), a.NextServiceDate())

	quarterly := entity.Anniversary{
		LastServiceDate: time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC),
		FrequencyMonths: 3,
	}
	// AddDate normalizes 2026-02-30 to 2026-03-02.
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), quarterly.NextServiceDate())
}
