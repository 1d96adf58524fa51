package formatter

import (
	"fmt"
	"strings"

	"github.com/deyby01/agenda/internal/domain"
)

// FormatNotifications renders a notification list, newest first,
// with unread entries in bold.
func FormatNotifications(notifications []*domain.Notification) string {
	if len(notifications) == 0 {
		return Dim("No notifications.") + "\n"
	}

	var b strings.Builder
	for _, n := range notifications {
		title := n.Title
		if !n.Read {
			title = Bold(title)
		} else {
			title = Dim(title)
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			SeverityIndicator(n.Severity),
			title,
			Dim(n.CreatedAt.Format("2006-01-02 15:04")),
		))
		b.WriteString("   " + StyleFg.Render(n.Message) + "\n")
		b.WriteString("   " + Dim("id: "+n.ID) + "\n")
	}
	return b.String()
}

// FormatEvaluation summarizes an evaluation run.
func FormatEvaluation(created []*domain.Notification) string {
	if len(created) == 0 {
		return Dim("No new alerts. Everything already notified or under control.") + "\n"
	}
	var b strings.Builder
	b.WriteString(StyleYellow.Render(fmt.Sprintf("%d new alerts", len(created))) + "\n")
	for _, n := range created {
		b.WriteString(fmt.Sprintf("%s %s\n", SeverityIndicator(n.Severity), Bold(n.Title)))
	}
	return b.String()
}
