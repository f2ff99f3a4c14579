package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/kumaresh12818/smart-study-planner/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return "\n" + m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Dashboard, Action: "switch to Dashboard"},
		{Key: m.Keys.Schedule, Action: "switch to Schedule"},
		{Key: m.Keys.Analytics, Action: "switch to Analytics"},
		{Key: m.Keys.Subjects, Action: "switch to Subjects"},
		{Key: "n", Action: "plan from free text"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewDashboard:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "enter", Action: "complete selected task"},
			{Key: "s", Action: "start a timed session"},
			{Key: "left/right", Action: "adjust understanding in the form"},
		}
	case ViewSchedule:
		return []KeyBinding{
			{Key: "j/k", Action: "scroll pending tasks"},
		}
	case ViewAnalytics:
		return []KeyBinding{
			{Key: "j/k", Action: "scroll insights"},
		}
	case ViewSubjects:
		return []KeyBinding{
			{Key: "a", Action: "add a subject"},
			{Key: "tab", Action: "next form field"},
			{Key: "left/right", Action: "adjust difficulty/priority"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.viewBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.viewBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
