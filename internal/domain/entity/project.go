package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project statuses.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusOnHold    = "on_hold"
	ProjectStatusCancelled = "cancelled"
)

// Project is an engagement for a client with a date range and monetary value.
type Project struct {
	ID                string
	Title             string
	ClientID          string
	StartDate         time.Time
	EndDate           *time.Time
	Status            string
	CompletionPercent int // 0..100
	Value             decimal.Decimal
	SubcontractorIDs  []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
