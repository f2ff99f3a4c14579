package update

import (
	"github.com/kumaresh12818/smart-study-planner/internal/model"
	"github.com/kumaresh12818/smart-study-planner/internal/views"
)

func (m Model) renderDashboardPanel() string {
	analytics := m.Store.Analytics()

	tasks := make([]views.TodayTaskData, 0, len(m.Dashboard.Tasks))
	today := model.DateOf(m.now())
	selectedID := ""
	if task, ok := m.selectedTask(); ok {
		selectedID = task.ID
	}
	for _, task := range m.Dashboard.Tasks {
		tasks = append(tasks, views.TodayTaskData{
			ID:       task.ID,
			Title:    task.Title,
			Type:     string(task.Type),
			Duration: task.Duration,
			Score:    task.Score(),
			Overdue:  model.DateOf(task.ScheduledDate).Before(today),
		})
	}

	// The dashboard shows at most the first four subjects' bars; the full
	// breakdown lives in the analytics view.
	bars := make([]views.PerformanceBarData, 0, 4)
	for _, row := range analytics.SubjectPerformance {
		if len(bars) == 4 {
			break
		}
		bars = append(bars, views.PerformanceBarData{
			Name:     row.Name,
			Accuracy: row.Accuracy,
			BarView:  m.perfBar.ViewAs(float64(row.Accuracy) / 100),
		})
	}

	profile := m.Store.Profile()
	return views.RenderDashboardPanel(views.DashboardPanelData{
		Tasks:      tasks,
		SelectedID: selectedID,
		Streak:     profile.StudyStreak,
		Hours:      profile.TotalHours,
		Accuracy:   analytics.AvgAccuracy,
		Bars:       bars,
	})
}

func (m Model) renderSchedulePanel() string {
	pending := 0
	for _, task := range m.Store.Tasks() {
		if !task.Completed {
			pending++
		}
	}
	return views.RenderSchedulePanel(views.SchedulePanelData{
		TableView: m.scheduleTable.View(),
		Pending:   pending,
	})
}

func (m Model) renderAnalyticsPanel() string {
	analytics := m.Store.Analytics()
	rows := make([]views.AnalyticsRowData, 0, len(analytics.SubjectPerformance))
	for _, row := range analytics.SubjectPerformance {
		rows = append(rows, views.AnalyticsRowData{
			Name:      row.Name,
			Accuracy:  row.Accuracy,
			Sessions:  row.Sessions,
			TimeSpent: row.TimeSpent,
		})
	}
	return views.RenderAnalyticsPanel(views.AnalyticsPanelData{
		TotalSessions:  analytics.TotalSessions,
		AvgAccuracy:    analytics.AvgAccuracy,
		TotalStudyTime: analytics.TotalStudyTime,
		Rows:           rows,
	})
}

func (m Model) renderSubjectsPanel() string {
	subjects := m.Store.Subjects()
	cards := make([]views.SubjectCardData, 0, len(subjects))
	for _, subject := range subjects {
		cards = append(cards, views.SubjectCardData{
			Name:        subject.Name,
			Performance: subject.PerformanceScore,
			Difficulty:  subject.Difficulty,
			Priority:    subject.Priority,
			ExamDate:    model.FormatDate(subject.ExamDate),
			TimeSpent:   subject.TimeSpent,
		})
	}

	form := ""
	if m.SubjectForm.Active {
		form = views.RenderSubjectForm(m.nameInput.View(), m.dateInput.View(), m.SubjectForm.Difficulty, m.SubjectForm.Priority, m.SubjectForm.Err)
	}
	return views.RenderSubjectsPanel(views.SubjectsPanelData{Cards: cards, FormView: form})
}

func (m Model) renderPlanInputPane() string {
	if !m.nlFocused {
		return "press [n] to describe what you need help with"
	}
	return "plan from text (enter to generate, esc to cancel):\n" + m.nlInput.View()
}

func (m Model) renderCompletionForm() string {
	return views.RenderCompletionForm(views.CompletionFormData{
		Active:    m.CompletionForm.Active,
		TaskTitle: m.CompletionForm.TaskTitle,
		TimeView:  m.timeInput.View(),
		Accuracy:  m.CompletionForm.Accuracy,
	})
}

func (m Model) renderCommandPalette() string {
	if !m.Palette.Active {
		return ""
	}
	return "\n" + views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}
