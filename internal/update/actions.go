package update

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"

	"github.com/kumaresh12818/smart-study-planner/internal/alarm"
	"github.com/kumaresh12818/smart-study-planner/internal/extract"
	"github.com/kumaresh12818/smart-study-planner/internal/model"
	"github.com/kumaresh12818/smart-study-planner/internal/planner"
	"github.com/kumaresh12818/smart-study-planner/internal/views"
)

// Defaults applied to subjects materialized from a free-text request, where
// the user gave no difficulty or priority of their own.
const (
	extractedDifficulty = 5
	extractedPriority   = 8
)

// generatePlan runs the extract -> materialize -> generate pipeline for a
// free-text request and merges the result into the store.
func (m *Model) generatePlan(text string) error {
	req := extract.Extract(text, m.Store.SubjectNames())
	examDate := model.DateOf(m.now()).AddDate(0, 0, req.HorizonDays)

	subjects := make([]model.Subject, 0, len(req.SubjectNames))
	for _, name := range req.SubjectNames {
		subject, err := model.NewSubject(model.SubjectConfig{
			Name:       name,
			Difficulty: extractedDifficulty,
			Priority:   extractedPriority,
			ExamDate:   examDate,
		})
		if err != nil {
			return err
		}
		subjects = append(subjects, subject)
	}

	tasks, err := planner.Generate(subjects, req.HorizonDays, m.now())
	if err != nil {
		return err
	}

	m.Store.AddSubjects(subjects...)
	m.Store.AddTasks(tasks)
	m.refreshAll()
	m.Status = StatusBar{Text: fmt.Sprintf("planned %d task(s) for %d subject(s) over %d days", len(tasks), len(subjects), req.HorizonDays)}
	return nil
}

// addSubject creates one subject from an explicit config and schedules it
// over the days remaining until its exam.
func (m *Model) addSubject(cfg model.SubjectConfig) error {
	subject, err := model.NewSubject(cfg)
	if err != nil {
		return err
	}

	horizon := planner.HorizonUntil(subject.ExamDate, m.now())
	tasks, err := planner.Generate([]model.Subject{subject}, horizon, m.now())
	if err != nil {
		return fmt.Errorf("exam date must be in the future: %w", err)
	}

	m.Store.AddSubjects(subject)
	m.Store.AddTasks(tasks)
	m.refreshAll()
	m.Status = StatusBar{Text: fmt.Sprintf("added %s with %d task(s)", subject.Name, len(tasks))}
	return nil
}

// completeTask records a completion and surfaces the updated streak.
func (m *Model) completeTask(taskID string, timeSpent, accuracy int) error {
	done, err := m.Store.RecordCompletion(taskID, timeSpent, accuracy, m.now())
	if err != nil {
		return err
	}
	m.refreshAll()
	m.Status = StatusBar{Text: fmt.Sprintf("completed %s | %s now at %d%% | streak %d day(s)",
		done.Task.Title, done.Subject.Name, done.Subject.PerformanceScore, done.Profile.StudyStreak)}
	return nil
}

// startSession arms the alarm engine to fire when the selected task's
// planned duration has elapsed.
func (m *Model) startSession(task model.Task) error {
	if m.Alarm == nil {
		return fmt.Errorf("no alarm engine configured")
	}
	fireAt := m.now().Add(time.Duration(task.Duration) * time.Minute)
	if err := m.Alarm.Schedule(alarm.Alert{TaskID: task.ID, Title: task.Title, FireAt: fireAt}); err != nil {
		return err
	}
	m.Status = StatusBar{Text: fmt.Sprintf("session started: %s (%dm)", task.Title, task.Duration)}
	return nil
}

func (m *Model) refreshAll() {
	m.refreshDashboard()
	m.syncScheduleTable()
	m.syncInsights()
}

func (m *Model) refreshDashboard() {
	m.Dashboard.Tasks = planner.SelectToday(m.Store.Tasks(), m.now())
	if m.Dashboard.Cursor >= len(m.Dashboard.Tasks) {
		m.Dashboard.Cursor = len(m.Dashboard.Tasks) - 1
	}
	if m.Dashboard.Cursor < 0 {
		m.Dashboard.Cursor = 0
	}
}

func (m *Model) syncScheduleTable() {
	rows := make([]table.Row, 0)
	for _, task := range m.Store.Tasks() {
		if task.Completed {
			continue
		}
		rows = append(rows, table.Row{
			model.FormatDate(task.ScheduledDate),
			task.Title,
			strconv.Itoa(task.Duration),
			string(task.Type),
			strconv.Itoa(task.Priority),
		})
	}
	m.scheduleTable.SetRows(rows)
}

func (m *Model) syncInsights() {
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
	md := views.BuildInsights(rows)
	if md == "" {
		m.insightsViewport.SetContent("(complete a few sessions to unlock insights)")
		return
	}
	m.insightsViewport.SetContent(views.RenderMarkdown(md))
}

func (m Model) selectedTask() (model.Task, bool) {
	if len(m.Dashboard.Tasks) == 0 {
		return model.Task{}, false
	}
	if m.Dashboard.Cursor < 0 || m.Dashboard.Cursor >= len(m.Dashboard.Tasks) {
		return model.Task{}, false
	}
	return m.Dashboard.Tasks[m.Dashboard.Cursor], true
}
