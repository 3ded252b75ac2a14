package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wanjiru-dev/consultpro-api/internal/domain/schedule"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysUntil(t *testing.T) {
	now := date(2025, time.March, 25)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"five days past", date(2025, time.March, 20), -5},
		{"today", date(2025, time.March, 25), 0},
		{"tomorrow", date(2025, time.March, 26), 1},
		{"next month", date(2025, time.April, 25), 31},
		{"time of day is ignored", time.Date(2025, time.March, 26, 23, 59, 0, 0, time.UTC), 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, schedule.DaysUntil(tc.due, now))
		})
	}
}

func TestBucket(t *testing.T) {
	now := date(2025, time.March, 25)

	assert.Equal(t, schedule.BucketOverdue, schedule.Bucket(date(2025, time.March, 24), now))
	assert.Equal(t, schedule.BucketDueToday, schedule.Bucket(date(2025, time.March, 25), now))
	assert.Equal(t, schedule.BucketDueSoon, schedule.Bucket(date(2025, time.April, 10), now))
	// Exactly 30 days out is still inside the due-soon window.
	assert.Equal(t, schedule.BucketDueSoon, schedule.Bucket(date(2025, time.April, 24), now))
	assert.Equal(t, schedule.BucketUpcoming, schedule.Bucket(date(2025, time.April, 26), now))
}

func TestIsOverdue(t *testing.T) {
	now := date(2025, time.March, 25)

	assert.True(t, schedule.IsOverdue(date(2025, time.March, 24), now))
	assert.False(t, schedule.IsOverdue(date(2025, time.March, 25), now), "due today is not overdue")
	assert.False(t, schedule.IsOverdue(date(2025, time.March, 26), now))
}

// Anniversary scenario: last service 2024-03-20 on a 12-month cycle puts the
// next service at 2025-03-20; seen from 2025-03-25 that is overdue by 5 days.
func TestAnniversaryNextServiceOverdue(t *testing.T) {
	last := date(2024, time.March, 20)
	next := last.AddDate(0, 12, 0)
	assert.Equal(t, date(2025, time.March, 20), next)

	now := date(2025, time.March, 25)
	assert.Equal(t, -5, schedule.DaysUntil(next, now))
	assert.Equal(t, schedule.BucketOverdue, schedule.Bucket(next, now))
}
