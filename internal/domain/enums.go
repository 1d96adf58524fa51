package domain

type PriorityLevel string

const (
	PriorityCritical PriorityLevel = "critical"
	PriorityHigh     PriorityLevel = "high"
	PriorityMedium   PriorityLevel = "medium"
	PriorityLow      PriorityLevel = "low"
)

type TaskUrgency string

const (
	UrgencyOverdue     TaskUrgency = "overdue"
	UrgencyDueToday    TaskUrgency = "due_today"
	UrgencyDueThisWeek TaskUrgency = "due_this_week"
	UrgencyDueNextWeek TaskUrgency = "due_next_week"
	UrgencyNoDeadline  TaskUrgency = "no_deadline"
)

type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthFair      HealthStatus = "fair"
	HealthPoor      HealthStatus = "poor"
	HealthCritical  HealthStatus = "critical"
)

type ProjectStatus string

const (
	ProjectPlanned    ProjectStatus = "planned"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on_hold"
	ProjectCancelled  ProjectStatus = "cancelled"
)

type NotificationKind string

const (
	NotifyTask        NotificationKind = "task"
	NotifyProject     NotificationKind = "project"
	NotifySystem      NotificationKind = "system"
	NotifyAchievement NotificationKind = "achievement"
)

type NotificationSeverity string

const (
	SeverityCritical NotificationSeverity = "critical"
	SeverityWarning  NotificationSeverity = "warning"
	SeverityInfo     NotificationSeverity = "info"
	SeveritySuccess  NotificationSeverity = "success"
)

// ValidProjectStatuses is the canonical set of accepted project status strings.
var ValidProjectStatuses = map[string]bool{
	"planned": true, "in_progress": true, "completed": true,
	"on_hold": true, "cancelled": true,
}
