package durations_test

import (
	"testing"

	"github.com/campusbridge/internhub/internal/durations"
	"github.com/stretchr/testify/assert"
)

func TestBucketOf(t *testing.T) {
	cases := []struct {
		input string
		want  durations.Bucket
	}{
		{"3 months", durations.BucketMedium},
		{"2 weeks", durations.BucketShort},
		{"6 months", durations.BucketMedium},
		{"7 months", durations.BucketLong},
		{"1 year", durations.BucketLong},
		{"Summer 2025", durations.BucketMedium},
		{"summer", durations.BucketMedium},
		{"One semester", durations.BucketMedium},
		{"Fall term", durations.BucketMedium},
		{"10 wks", durations.BucketShort},
		{"1.5 months", durations.BucketShort},
		{"6", durations.BucketMedium},
		{"2", durations.BucketShort},
		{"12", durations.BucketLong},
		{"3-month placement", durations.BucketMedium},
		{"flexible", durations.BucketShort},
		{"", durations.BucketShort},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, durations.BucketOf(tc.input), "input %q", tc.input)
		})
	}
}

func TestMonths(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"3 months", 3},
		{"1 year", 12},
		{"Summer 2025", 3},
		{"6-month (Summer2025)", 9},
		{"1.5 months", 1.5},
		{"", 0},
		{"flexible", 0},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, durations.Months(tc.input), "input %q", tc.input)
		})
	}
}
