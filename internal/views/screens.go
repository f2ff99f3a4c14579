package views

import (
	"fmt"
	"strings"
)

type TodayTaskData struct {
	ID       string
	Title    string
	Type     string
	Duration int
	Score    int
	Overdue  bool
}

type PerformanceBarData struct {
	Name     string
	Accuracy int
	BarView  string
}

type DashboardPanelData struct {
	Tasks      []TodayTaskData
	SelectedID string
	Streak     int
	Hours      int
	Accuracy   int
	Bars       []PerformanceBarData
}

type ScheduleTaskData struct {
	Title    string
	Date     string
	Duration int
	Type     string
	Priority int
}

type SchedulePanelData struct {
	TableView string
	Pending   int
}

type AnalyticsRowData struct {
	Name      string
	Accuracy  int
	Sessions  int
	TimeSpent int
}

type AnalyticsPanelData struct {
	TotalSessions  int
	AvgAccuracy    int
	TotalStudyTime int
	Rows           []AnalyticsRowData
	InsightsView   string
}

type SubjectCardData struct {
	Name        string
	Performance int
	Difficulty  int
	Priority    int
	ExamDate    string
	TimeSpent   int
}

type SubjectsPanelData struct {
	Cards    []SubjectCardData
	FormView string
}

type CompletionFormData struct {
	Active    bool
	TaskTitle string
	TimeView  string
	Accuracy  int
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderDashboardPanel(data DashboardPanelData) string {
	var b strings.Builder
	b.WriteString("today's focus:\n")
	b.WriteString("actions: [j/k]move [enter]complete [s]start-session\n")
	if len(data.Tasks) == 0 {
		b.WriteString("  (no tasks scheduled for today, add subjects to get started)\n")
	}
	for _, task := range data.Tasks {
		cursor := " "
		if task.ID == data.SelectedID {
			cursor = ">"
		}
		badge := "[TODAY]"
		if task.Overdue {
			badge = "[OVERDUE]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s (%dm, %s, score %d)\n", cursor, badge, task.Title, task.Duration, task.Type, task.Score))
	}

	b.WriteString(fmt.Sprintf("\nstreak: %d day(s) | studied: %dh | avg accuracy: %d%%\n", data.Streak, data.Hours, data.Accuracy))
	if len(data.Bars) > 0 {
		b.WriteString("\nsubject performance:\n")
		for _, bar := range data.Bars {
			b.WriteString(fmt.Sprintf("%-12s %s %d%%\n", bar.Name, bar.BarView, bar.Accuracy))
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderSchedulePanel(data SchedulePanelData) string {
	var b strings.Builder
	b.WriteString("study schedule:\n")
	b.WriteString(fmt.Sprintf("pending tasks: %d\n", data.Pending))
	b.WriteString(data.TableView)
	return strings.TrimSpace(b.String())
}

func RenderAnalyticsPanel(data AnalyticsPanelData) string {
	var b strings.Builder
	b.WriteString("performance metrics:\n")
	b.WriteString(fmt.Sprintf("sessions: %d | avg accuracy: %d%% | total time: %dm\n", data.TotalSessions, data.AvgAccuracy, data.TotalStudyTime))
	if len(data.Rows) == 0 {
		b.WriteString("  (no subjects yet)\n")
	}
	for _, row := range data.Rows {
		b.WriteString(fmt.Sprintf("- %s: %d%% over %d session(s), %dm\n", row.Name, row.Accuracy, row.Sessions, row.TimeSpent))
	}
	return strings.TrimSpace(b.String())
}

func RenderSubjectsPanel(data SubjectsPanelData) string {
	var b strings.Builder
	b.WriteString("my subjects:\n")
	b.WriteString("actions: [a]add subject\n")
	if data.FormView != "" {
		b.WriteString("\n" + data.FormView + "\n")
	}
	if len(data.Cards) == 0 {
		b.WriteString("  (none yet)\n")
	}
	for _, card := range data.Cards {
		exam := card.ExamDate
		if exam == "" {
			exam = "unset"
		}
		b.WriteString(fmt.Sprintf("\n%s\n", card.Name))
		b.WriteString(fmt.Sprintf("  performance: %d%% | difficulty: %d/10 | priority: %d/10\n", card.Performance, card.Difficulty, card.Priority))
		b.WriteString(fmt.Sprintf("  exam: %s | studied: %dm\n", exam, card.TimeSpent))
	}
	return strings.TrimSpace(b.String())
}

func RenderSubjectForm(nameView, dateView string, difficulty, priority int, errText string) string {
	var b strings.Builder
	b.WriteString("add subject:\n")
	b.WriteString("keys: [tab]field [left/right]adjust [enter]save [esc]cancel\n")
	b.WriteString(fmt.Sprintf("name: %s\n", nameView))
	b.WriteString(fmt.Sprintf("exam date: %s\n", dateView))
	b.WriteString(fmt.Sprintf("difficulty: %d/10\n", difficulty))
	b.WriteString(fmt.Sprintf("priority: %d/10", priority))
	if errText != "" {
		b.WriteString("\nerror: " + errText)
	}
	return b.String()
}

func RenderCompletionForm(data CompletionFormData) string {
	if !data.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString("\ncomplete task:\n")
	b.WriteString(fmt.Sprintf("task: %s\n", data.TaskTitle))
	b.WriteString("keys: [left/right]accuracy [enter]submit [esc]cancel\n")
	b.WriteString(fmt.Sprintf("time spent (minutes): %s\n", data.TimeView))
	b.WriteString(fmt.Sprintf("understanding: %d%%", data.Accuracy))
	return b.String()
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", inputView)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

// BuildInsights assembles the study-insights markdown: subjects under 70%
// accuracy get a recommendation, subjects at 80% or above are called out as
// strengths. Subjects with no sessions yet are skipped.
func BuildInsights(rows []AnalyticsRowData) string {
	var focus, strengths []string
	for _, row := range rows {
		if row.Sessions == 0 {
			continue
		}
		switch {
		case row.Accuracy < 70:
			focus = append(focus, fmt.Sprintf("- Focus more on %s (current: %d%%)", row.Name, row.Accuracy))
		case row.Accuracy >= 80:
			strengths = append(strengths, fmt.Sprintf("- Great progress in %s (%d%%)", row.Name, row.Accuracy))
		}
	}
	if len(focus) == 0 && len(strengths) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("# Study Insights\n")
	if len(focus) > 0 {
		b.WriteString("\n## Recommendations\n")
		b.WriteString(strings.Join(focus, "\n"))
		b.WriteString("\n")
	}
	if len(strengths) > 0 {
		b.WriteString("\n## Strengths\n")
		b.WriteString(strings.Join(strengths, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}
