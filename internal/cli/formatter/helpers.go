package formatter

import (
	"fmt"
	"time"

	"github.com/deyby01/agenda/internal/domain"
)

// RelativeDate renders a date relative to today: "today", "tomorrow",
// "in N days", "N days ago".
func RelativeDate(d, today time.Time) string {
	days := domain.DaysBetween(today, d)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days > 1:
		return fmt.Sprintf("in %d days", days)
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}

// RelativeDateStyled renders a relative date colored by proximity:
// red when past, yellow when within 3 days, otherwise dim.
func RelativeDateStyled(d, today time.Time) string {
	text := RelativeDate(d, today)
	days := domain.DaysBetween(today, d)
	switch {
	case days < 0:
		return StyleRed.Render(text)
	case days <= 3:
		return StyleYellow.Render(text)
	default:
		return StyleDim.Render(text)
	}
}

// FormatScore renders a numeric priority score to one decimal.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.1f", score)
}

// Truncate shortens a string to max runes, appending an ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
