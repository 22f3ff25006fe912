package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/jaykakkad82/mypayments/internal/domain/error"
)

func TestParseBucket(t *testing.T) {
	t.Run("Recognizes the three calendar buckets", func(t *testing.T) {
		for raw, want := range map[string]Bucket{
			"day":    BucketDay,
			"week":   BucketWeek,
			"month":  BucketMonth,
			"DAY":    BucketDay,
			"Week":   BucketWeek,
			" month": BucketMonth,
		} {
			got, err := ParseBucket(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, want, got, raw)
		}
	})

	t.Run("Rejects anything else", func(t *testing.T) {
		for _, raw := range []string{"", "year", "hour", "weeks"} {
			_, err := ParseBucket(raw)
			assert.ErrorIs(t, err, errs.ErrInvalidBucket, raw)
		}
	})
}

func TestBucketFloor(t *testing.T) {
	// 2024-03-04 is a Monday
	monday := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	t.Run("Day truncates to midnight", func(t *testing.T) {
		want := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, want, BucketDay.Floor(monday))
	})

	t.Run("Week starts on Monday", func(t *testing.T) {
		weekStart := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

		assert.Equal(t, weekStart, BucketWeek.Floor(monday))

		thursday := time.Date(2024, 3, 7, 23, 59, 59, 0, time.UTC)
		assert.Equal(t, weekStart, BucketWeek.Floor(thursday))

		// Sunday belongs to the week that started the previous Monday
		sunday := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, weekStart, BucketWeek.Floor(sunday))

		nextMonday := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, nextMonday, BucketWeek.Floor(nextMonday))
	})

	t.Run("Month truncates to the first day", func(t *testing.T) {
		want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, want, BucketMonth.Floor(monday))

		endOfMonth := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
		assert.Equal(t, want, BucketMonth.Floor(endOfMonth))
	})
}
