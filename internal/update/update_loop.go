package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kumaresh12818/smart-study-planner/internal/alarm"
	"github.com/kumaresh12818/smart-study-planner/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Alarm != nil {
		return waitForAlertCmd(m.Alarm.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.nlFocused {
			return m.handlePlanInputKey(typed)
		}
		if m.CompletionForm.Active {
			return m.handleCompletionFormKey(typed)
		}
		if m.SubjectForm.Active {
			return m.handleSubjectFormKey(typed)
		}

		switch typed.String() {
		case "/":
			m.Palette = CommandPaletteState{Active: true}
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case "n":
			m.nlFocused = true
			m.nlInput.SetValue("")
			m.nlInput.Focus()
			return m, nil
		case m.Keys.Dashboard:
			m.CurrentView = ViewDashboard
			m.refreshDashboard()
			return m, nil
		case m.Keys.Schedule:
			m.CurrentView = ViewSchedule
			return m, nil
		case m.Keys.Analytics:
			m.CurrentView = ViewAnalytics
			return m, nil
		case m.Keys.Subjects:
			m.CurrentView = ViewSubjects
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			if m.Alarm != nil {
				m.Alarm.Stop()
			}
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewDashboard:
			return m.handleDashboardKey(typed)
		case ViewSchedule:
			var cmd tea.Cmd
			m.scheduleTable, cmd = m.scheduleTable.Update(typed)
			return m, cmd
		case ViewAnalytics:
			var cmd tea.Cmd
			m.insightsViewport, cmd = m.insightsViewport.Update(typed)
			return m, cmd
		case ViewSubjects:
			return m.handleSubjectsKey(typed)
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			if typed.View == ViewDashboard {
				m.refreshDashboard()
			}
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case PlanRequestMsg:
		if err := m.generatePlan(typed.Text); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.CurrentView = ViewSchedule
		return m, nil
	case SessionAlertMsg:
		m.AlertLog = append(m.AlertLog, typed.Alert)
		if len(m.AlertLog) > 20 {
			m.AlertLog = m.AlertLog[len(m.AlertLog)-20:]
		}
		m.Status = StatusBar{Text: fmt.Sprintf("time's up: %s, press enter on it to record the session", typed.Alert.Title)}
		m.notify("Session", m.Status.Text, "info")
		if m.Alarm != nil {
			return m, waitForAlertCmd(m.Alarm.C())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handlePlanInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.nlFocused = false
		m.nlInput.Blur()
		return m, nil
	case "enter":
		text := m.nlInput.Value()
		m.nlFocused = false
		m.nlInput.Blur()
		if strings.TrimSpace(text) == "" {
			m.Status = StatusBar{Text: "tell me what you need help with first", IsError: true}
			return m, nil
		}
		return m, func() tea.Msg { return PlanRequestMsg{Text: text} }
	}

	var cmd tea.Cmd
	m.nlInput, cmd = m.nlInput.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewDashboard:
		leftPane = m.renderDashboardPanel()
		rightPane = m.renderPlanInputPane() + m.renderCompletionForm() + m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewSchedule:
		leftPane = m.renderSchedulePanel()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewAnalytics:
		leftPane = m.renderAnalyticsPanel()
		rightPane = m.insightsViewport.View() + m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewSubjects:
		leftPane = m.renderSubjectsPanel()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	}

	notificationView := ""
	if len(m.AlertLog) > 0 {
		last := m.AlertLog[len(m.AlertLog)-1]
		notificationView = fmt.Sprintf("last-alert: %s @ %s", last.Title, last.FireAt.Format("15:04:05"))
	}
	if n := m.renderNotificationsView(); n != "" {
		notificationView = strings.TrimSpace(notificationView + n)
	}

	profile := m.Store.Profile()
	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("studyplanner | view: %s | streak: %d | studied: %dh", m.CurrentView, profile.StudyStreak, profile.TotalHours),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: notificationView,
		Footer: fmt.Sprintf("keys: %s dash | %s schedule | %s analytics | %s subjects | n plan | / cmd | %s help | %s quit",
			m.Keys.Dashboard, m.Keys.Schedule, m.Keys.Analytics, m.Keys.Subjects, m.Keys.Help, m.Keys.Quit),
	})
}

func waitForAlertCmd(ch <-chan alarm.Alert) tea.Cmd {
	return func() tea.Msg {
		alert, ok := <-ch
		if !ok {
			return nil
		}
		return SessionAlertMsg{Alert: alert}
	}
}

func isKnownView(v View) bool {
	switch v {
	case ViewDashboard, ViewSchedule, ViewAnalytics, ViewSubjects:
		return true
	default:
		return false
	}
}
