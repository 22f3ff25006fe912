package analytics

import (
	"strings"
	"time"

	errs "github.com/jaykakkad82/mypayments/internal/domain/error"
)

// Bucket is a fixed calendar interval used to group timestamps
type Bucket string

// Recognized buckets
const (
	BucketDay   Bucket = "day"
	BucketWeek  Bucket = "week"
	BucketMonth Bucket = "month"
)

// ParseBucket normalizes a caller-supplied bucket value (case-insensitive).
// Anything other than day, week or month is a caller error.
func ParseBucket(raw string) (Bucket, error) {
	switch Bucket(strings.ToLower(strings.TrimSpace(raw))) {
	case BucketDay:
		return BucketDay, nil
	case BucketWeek:
		return BucketWeek, nil
	case BucketMonth:
		return BucketMonth, nil
	}
	return "", errs.ErrInvalidBucket
}

// Floor truncates a timestamp to the start of its bucket.
// Weeks follow ISO-8601: they start on Monday at 00:00.
func (b Bucket) Floor(t time.Time) time.Time {
	switch b {
	case BucketWeek:
		day := startOfDay(t)
		// time.Weekday counts Sunday as 0; shift so Monday is the origin.
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case BucketMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	default:
		return startOfDay(t)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
