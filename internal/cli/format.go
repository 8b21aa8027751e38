package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/imaan/internal/constants"
)

// FormatAmount renders a donation amount with two decimals
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatPercent formats a 0-100 value, e.g. 40 -> "40%", 33.333 -> "33.3%"
func FormatPercent(p float64) string {
	if p == float64(int64(p)) {
		return fmt.Sprintf("%d%%", int64(p))
	}
	return fmt.Sprintf("%.1f%%", p)
}

// FormatTimestamp shows an entry timestamp as local HH:MM, or the date and
// time when it is not from today. Unparseable values are returned as is.
func FormatTimestamp(ts string, now time.Time, loc *time.Location) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	t = t.In(loc)
	if t.Format(constants.DateFormat) == now.In(loc).Format(constants.DateFormat) {
		return t.Format(constants.TimeFormat)
	}
	return t.Format(constants.DateFormat + " " + constants.TimeFormat)
}

// Checkbox renders a completion marker
func Checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// Truncate shortens s to max runes, adding an ellipsis
func Truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
