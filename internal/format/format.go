package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Counter formats an achievement value for display next to its suffix.
// Whole numbers get thousand separators ("12,500"); fractional values keep
// one decimal place ("4.9").
func Counter(v float64) string {
	if v == math.Trunc(v) {
		return humanize.Comma(int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

// CompactCount renders vendor counts for category chips: "8", "120", "1.2k".
func CompactCount(n int) string {
	if n < 1000 {
		return humanize.Comma(int64(n))
	}
	return strings.ReplaceAll(humanize.SIWithDigits(float64(n), 1, ""), " ", "")
}

// Stars renders a 0–5 rating as filled/empty star glyphs.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// Date renders a publish date in the site's long form.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2 January 2006")
}

// RelDate renders "3 days ago" style timestamps for blog cards.
func RelDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}
