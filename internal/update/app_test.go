package update

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kumaresh12818/smart-study-planner/internal/alarm"
)

var appTestNow = time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

func fixedModel() Model {
	m := NewModel()
	m.now = func() time.Time { return appTestNow }
	return m
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next, cmd
}

func planned(t *testing.T, text string) Model {
	t.Helper()
	m := fixedModel()
	m, _ = step(t, m, PlanRequestMsg{Text: text})
	return m
}

func TestNewModelDefaults(t *testing.T) {
	m := fixedModel()
	if m.CurrentView != ViewDashboard {
		t.Fatalf("expected dashboard start view, got %s", m.CurrentView)
	}
	if m.Quitting || m.Palette.Active || m.CompletionForm.Active || m.SubjectForm.Active {
		t.Fatal("expected all transient state inactive")
	}
	if m.SubjectForm.Difficulty != 5 || m.SubjectForm.Priority != 5 {
		t.Fatalf("expected subject form midpoints, got %+v", m.SubjectForm)
	}
	if len(m.Dashboard.Tasks) != 0 {
		t.Fatalf("expected empty dashboard, got %d tasks", len(m.Dashboard.Tasks))
	}
}

func TestViewSwitchingByKey(t *testing.T) {
	m := fixedModel()
	cases := []struct {
		key  string
		want View
	}{
		{"2", ViewSchedule},
		{"3", ViewAnalytics},
		{"4", ViewSubjects},
		{"1", ViewDashboard},
	}
	for _, tc := range cases {
		m, _ = step(t, m, keyPress(tc.key))
		if m.CurrentView != tc.want {
			t.Fatalf("key %q: view = %s, want %s", tc.key, m.CurrentView, tc.want)
		}
	}
}

func TestSwitchViewMsg(t *testing.T) {
	m := fixedModel()
	m, _ = step(t, m, SwitchViewMsg{View: ViewAnalytics})
	if m.CurrentView != ViewAnalytics {
		t.Fatalf("expected analytics view, got %s", m.CurrentView)
	}
	m, _ = step(t, m, SwitchViewMsg{View: View("Bogus")})
	if m.CurrentView != ViewAnalytics {
		t.Fatalf("unknown view must be ignored, got %s", m.CurrentView)
	}
}

func TestHelpToggle(t *testing.T) {
	m := fixedModel()
	m, _ = step(t, m, keyPress("?"))
	if !m.HelpVisible {
		t.Fatal("expected help visible after ?")
	}
	m, _ = step(t, m, keyPress("?"))
	if m.HelpVisible {
		t.Fatal("expected help hidden after second ?")
	}
}

func TestQuitKey(t *testing.T) {
	m, cmd := step(t, fixedModel(), keyPress("q"))
	if !m.Quitting {
		t.Fatal("expected quitting state")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestPlanRequestPopulatesStoreAndSwitchesView(t *testing.T) {
	m := planned(t, "math exam in 10 days")

	if m.CurrentView != ViewSchedule {
		t.Fatalf("expected schedule view after planning, got %s", m.CurrentView)
	}
	names := m.Store.SubjectNames()
	if len(names) != 1 || names[0] != "Math" {
		t.Fatalf("expected [Math], got %v", names)
	}
	// 10 sessions plus revisions at day offsets 1, 3 and 7.
	if got := len(m.Store.Tasks()); got != 13 {
		t.Fatalf("expected 13 tasks, got %d", got)
	}
	if len(m.Dashboard.Tasks) != 1 {
		t.Fatalf("expected one task due today, got %d", len(m.Dashboard.Tasks))
	}
	if m.Status.IsError || m.Status.Text == "" {
		t.Fatalf("expected success status, got %+v", m.Status)
	}
}

func TestPlanRequestWithBlankTextUsesDefaults(t *testing.T) {
	m := planned(t, "just help me")
	names := m.Store.SubjectNames()
	want := []string{"Mathematics", "Science", "English"}
	if len(names) != len(want) {
		t.Fatalf("expected default subjects %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected default subjects %v, got %v", want, names)
		}
	}
}

func TestCompletionFormFlow(t *testing.T) {
	m := planned(t, "math exam in 10 days")
	m, _ = step(t, m, keyPress("1"))

	m, _ = step(t, m, keyPress("enter"))
	if !m.CompletionForm.Active {
		t.Fatal("expected completion form open")
	}
	if m.CompletionForm.Accuracy != 70 {
		t.Fatalf("expected default accuracy 70, got %d", m.CompletionForm.Accuracy)
	}
	if m.timeInput.Value() != "150" {
		t.Fatalf("expected time prefilled with task duration, got %q", m.timeInput.Value())
	}

	m, _ = step(t, m, keyPress("right"))
	m, _ = step(t, m, keyPress("right"))
	if m.CompletionForm.Accuracy != 80 {
		t.Fatalf("expected accuracy 80 after two bumps, got %d", m.CompletionForm.Accuracy)
	}

	m, _ = step(t, m, keyPress("enter"))
	if m.CompletionForm.Active {
		t.Fatal("expected form closed after submit")
	}
	profile := m.Store.Profile()
	if profile.StudyStreak != 1 {
		t.Fatalf("expected streak 1 after first completion, got %d", profile.StudyStreak)
	}
	// 150 minutes rounds to 3 hours.
	if profile.TotalHours != 3 {
		t.Fatalf("expected 3 total hours, got %d", profile.TotalHours)
	}
	if len(m.Dashboard.Tasks) != 0 {
		t.Fatalf("expected completed task off the dashboard, got %d", len(m.Dashboard.Tasks))
	}
}

func TestCompletionFormEscCancels(t *testing.T) {
	m := planned(t, "math exam in 10 days")
	m, _ = step(t, m, keyPress("1"))
	m, _ = step(t, m, keyPress("c"))
	if !m.CompletionForm.Active {
		t.Fatal("expected completion form open")
	}
	m, _ = step(t, m, keyPress("esc"))
	if m.CompletionForm.Active {
		t.Fatal("expected form closed after esc")
	}
	if len(m.Store.Sessions()) != 0 {
		t.Fatal("expected no session recorded on cancel")
	}
}

func TestAccuracyClamping(t *testing.T) {
	m := planned(t, "math exam in 10 days")
	m, _ = step(t, m, keyPress("1"))
	m, _ = step(t, m, keyPress("enter"))

	for i := 0; i < 30; i++ {
		m, _ = step(t, m, keyPress("right"))
	}
	if m.CompletionForm.Accuracy != 100 {
		t.Fatalf("expected accuracy capped at 100, got %d", m.CompletionForm.Accuracy)
	}
	for i := 0; i < 30; i++ {
		m, _ = step(t, m, keyPress("left"))
	}
	if m.CompletionForm.Accuracy != 0 {
		t.Fatalf("expected accuracy floored at 0, got %d", m.CompletionForm.Accuracy)
	}
}

func TestStatusMessages(t *testing.T) {
	m := fixedModel()
	m, _ = step(t, m, SetStatusMsg{Text: "hello"})
	if m.Status.Text != "hello" || m.Status.IsError {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	m, _ = step(t, m, ClearStatusMsg{})
	if m.Status.Text != "" {
		t.Fatalf("expected cleared status, got %+v", m.Status)
	}

	boom := errors.New("boom")
	m, _ = step(t, m, AppErrorMsg{Err: boom})
	if !errors.Is(m.LastError, boom) || !m.Status.IsError {
		t.Fatalf("expected error surfaced, got lastErr=%v status=%+v", m.LastError, m.Status)
	}
}

func TestSessionAlertMsg(t *testing.T) {
	m := fixedModel()
	alert := alarm.Alert{TaskID: "t1", Title: "Math - Session 1", FireAt: appTestNow}
	m, _ = step(t, m, SessionAlertMsg{Alert: alert})
	if len(m.AlertLog) != 1 || m.AlertLog[0].TaskID != "t1" {
		t.Fatalf("expected alert logged, got %v", m.AlertLog)
	}
	if m.Status.Text == "" {
		t.Fatal("expected status set for fired alert")
	}
}

func TestPaletteCommandFlow(t *testing.T) {
	m := fixedModel()
	m, _ = step(t, m, keyPress("/"))
	if !m.Palette.Active {
		t.Fatal("expected palette open")
	}

	m.commandInput.SetValue("plan physics exam in 2 weeks")
	m, _ = step(t, m, keyPress("enter"))
	if m.Palette.Active {
		t.Fatal("expected palette closed after enter")
	}
	names := m.Store.SubjectNames()
	if len(names) != 1 || names[0] != "Physics" {
		t.Fatalf("expected [Physics], got %v", names)
	}
}

func TestPaletteEscCancels(t *testing.T) {
	m := fixedModel()
	m, _ = step(t, m, keyPress("/"))
	m, _ = step(t, m, keyPress("esc"))
	if m.Palette.Active {
		t.Fatal("expected palette closed after esc")
	}
}

func TestPlanInputFlow(t *testing.T) {
	m := fixedModel()
	m, _ = step(t, m, keyPress("n"))
	if !m.nlFocused {
		t.Fatal("expected free-text input focused after n")
	}

	m.nlInput.SetValue("history exam in 5 days")
	m, cmd := step(t, m, keyPress("enter"))
	if m.nlFocused {
		t.Fatal("expected input blurred after enter")
	}
	if cmd == nil {
		t.Fatal("expected plan request command")
	}
	msg := cmd()
	req, ok := msg.(PlanRequestMsg)
	if !ok {
		t.Fatalf("expected PlanRequestMsg, got %T", msg)
	}
	if req.Text != "history exam in 5 days" {
		t.Fatalf("unexpected request text %q", req.Text)
	}
}

func TestPlanInputRejectsBlank(t *testing.T) {
	m := fixedModel()
	m, _ = step(t, m, keyPress("n"))
	m.nlInput.SetValue("   ")
	m, cmd := step(t, m, keyPress("enter"))
	if cmd != nil {
		t.Fatal("expected no command for blank input")
	}
	if !m.Status.IsError {
		t.Fatalf("expected error status, got %+v", m.Status)
	}
}

func TestViewRenders(t *testing.T) {
	m := planned(t, "math exam in 10 days")
	for _, view := range []View{ViewDashboard, ViewSchedule, ViewAnalytics, ViewSubjects} {
		m.CurrentView = view
		if out := m.View(); out == "" {
			t.Fatalf("view %s rendered empty", view)
		}
	}
}
