package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/deyby01/agenda/internal/app"
)

// FormatDashboard renders the full dashboard: priority zones for
// tasks, health groups for projects, and the unread badge count.
func FormatDashboard(resp *app.DashboardResponse) string {
	var b strings.Builder
	today := resp.GeneratedAt

	b.WriteString(Header("Needs attention now"))
	b.WriteString("\n")
	if len(resp.CriticalTasks) == 0 {
		b.WriteString(Dim("Nothing critical. Good place to be.") + "\n")
	} else {
		b.WriteString(renderTaskZone(resp.CriticalTasks, today))
	}

	if len(resp.AttentionTasks) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Coming up"))
		b.WriteString("\n")
		b.WriteString(renderTaskZone(resp.AttentionTasks, today))
	}

	if len(resp.FutureTasks) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Later"))
		b.WriteString("\n")
		b.WriteString(renderTaskZone(resp.FutureTasks, today))
	}

	projectRows := projectHealthRows(resp)
	if len(projectRows) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Projects"))
		b.WriteString("\n")
		b.WriteString(RenderTable(
			[]string{"NAME", "HEALTH", "DONE", "VELOCITY", "ETA"},
			projectRows,
		))
	}

	b.WriteString("\n")
	if resp.UnreadNotifications > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("%d unread notifications", resp.UnreadNotifications)) + "\n")
	} else {
		b.WriteString(Dim("No unread notifications") + "\n")
	}

	return b.String()
}

func renderTaskZone(views []app.TaskScoreView, today time.Time) string {
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		due := Dim("--")
		if v.Task.DueDate != nil {
			due = RelativeDateStyled(*v.Task.DueDate, today)
		}
		project := Dim("--")
		if v.Project != nil {
			project = StylePurple.Render(Truncate(v.Project.Name, 20))
		}
		rows = append(rows, []string{
			Bold(Truncate(v.Task.Title, 40)),
			PriorityIndicator(v.Score.Priority),
			FormatScore(v.Score.Score),
			due,
			project,
		})
	}
	return RenderTable([]string{"TASK", "PRIORITY", "SCORE", "DUE", "PROJECT"}, rows)
}

func projectHealthRows(resp *app.DashboardResponse) [][]string {
	var rows [][]string
	groups := [][]app.ProjectHealthView{
		resp.CriticalProjects,
		resp.AtRiskProjects,
		resp.HealthyProjects,
		resp.CompletedProjects,
	}
	for _, group := range groups {
		for _, v := range group {
			eta := Dim("--")
			if v.Progress.EstimatedCompletion != nil {
				eta = StyleFg.Render(v.Progress.EstimatedCompletion.Format("2006-01-02"))
			}
			rows = append(rows, []string{
				Bold(Truncate(v.Project.Name, 30)),
				HealthIndicator(v.Progress.Health),
				fmt.Sprintf("%.1f%% (%d/%d)", v.Progress.CompletionPct, v.Progress.CompletedTasks, v.Progress.TotalTasks),
				fmt.Sprintf("%.2f/day", v.Progress.Velocity),
				eta,
			})
		}
	}
	return rows
}
