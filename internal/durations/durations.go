// internal/durations/durations.go
package durations

import (
	"strconv"
	"strings"
	"unicode"
)

// Bucket classifies a posting's duration for filtering.
type Bucket string

const (
	BucketShort  Bucket = "short"  // under 3 months
	BucketMedium Bucket = "medium" // 3 to 6 months
	BucketLong   Bucket = "long"   // over 6 months
)

// Season and term words carry an approximate length in months. "summer"
// lands exactly on the short/medium boundary and is treated as medium.
var keywords = map[string]float64{
	"summer":   3,
	"semester": 4,
	"term":     4,
}

// unitMonths maps a unit word to its length in months.
var unitMonths = map[string]float64{
	"week":   7.0 / 30.0,
	"weeks":  7.0 / 30.0,
	"wk":     7.0 / 30.0,
	"wks":    7.0 / 30.0,
	"month":  1,
	"months": 1,
	"mo":     1,
	"mos":    1,
	"year":   12,
	"years":  12,
	"yr":     12,
	"yrs":    12,
}

// Months extracts an approximate duration in months from a free-text
// duration string. Postings carry values like "3 months", "2 weeks",
// "Summer 2025", or a bare "6"; anything unparseable contributes zero.
func Months(input string) float64 {
	var (
		months  float64
		pending float64 // last number seen, awaiting a unit word
		hasNum  bool
		matched bool
	)

	for _, word := range scanWords(input) {
		if n, err := strconv.ParseFloat(word, 64); err == nil {
			// Four-digit numbers in duration text are years ("Summer 2025"),
			// not lengths.
			if n >= 1000 {
				continue
			}
			if hasNum {
				// Two numbers in a row: the first had no unit, count it as
				// months.
				months += pending
				matched = true
			}
			pending = n
			hasNum = true
			continue
		}

		if factor, ok := unitMonths[word]; ok && hasNum {
			months += pending * factor
			hasNum = false
			matched = true
			continue
		}

		if approx, ok := keywords[word]; ok {
			months += approx
			matched = true
		}
	}

	// A trailing bare number is months.
	if hasNum {
		months += pending
		matched = true
	}

	if !matched {
		return 0
	}
	return months
}

// BucketOf maps a free-text duration to its filter bucket.
func BucketOf(input string) Bucket {
	return bucketForMonths(Months(input))
}

func bucketForMonths(m float64) Bucket {
	switch {
	case m < 3:
		return BucketShort
	case m <= 6:
		return BucketMedium
	default:
		return BucketLong
	}
}

// scanWords splits the input into lowercase number and letter runs,
// so "6-month (Summer2025)" scans as ["6" "month" "summer" "2025"].
func scanWords(input string) []string {
	var (
		words []string
		run   []rune
		digit bool
	)

	flush := func() {
		if len(run) > 0 {
			words = append(words, string(run))
			run = run[:0]
		}
	}

	for _, ch := range strings.ToLower(input) {
		switch {
		case unicode.IsDigit(ch) || (ch == '.' && digit):
			if len(run) > 0 && !digit {
				flush()
			}
			digit = true
			run = append(run, ch)
		case unicode.IsLetter(ch):
			if len(run) > 0 && digit {
				flush()
			}
			digit = false
			run = append(run, ch)
		default:
			flush()
		}
	}
	flush()

	return words
}
