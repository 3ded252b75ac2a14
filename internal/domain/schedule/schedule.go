// Package schedule computes display buckets for dated records: compliance
// events, anniversaries, certifications and invoice due dates. Buckets are a
// pure function of the stored date and "now"; they are never persisted and
// never replace the user-set lifecycle status.
package schedule

import "time"

// Display buckets derived from a relevant date vs today.
const (
	BucketOverdue  = "overdue"
	BucketDueToday = "due_today"
	BucketDueSoon  = "due_soon"
	BucketUpcoming = "upcoming"
)

// DueSoonWindowDays is the look-ahead window the dashboard flags as "due soon".
const DueSoonWindowDays = 30

// DaysUntil returns the whole-day difference between date and now: negative
// when the date has passed, zero when it falls on today. Both sides are
// truncated to midnight in now's location so partial days never shift a record
// between buckets.
func DaysUntil(date, now time.Time) int {
	d := midnight(date.In(now.Location()))
	n := midnight(now)
	return int(d.Sub(n) / (24 * time.Hour))
}

// Bucket classifies a relevant date against now: overdue when the date has
// passed, due_today on the day itself, due_soon inside the 30-day window,
// upcoming otherwise.
func Bucket(date, now time.Time) string {
	days := DaysUntil(date, now)
	switch {
	case days < 0:
		return BucketOverdue
	case days == 0:
		return BucketDueToday
	case days <= DueSoonWindowDays:
		return BucketDueSoon
	default:
		return BucketUpcoming
	}
}

// IsOverdue reports whether the relevant date lies strictly in the past.
func IsOverdue(date, now time.Time) bool {
	return DaysUntil(date, now) < 0
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
