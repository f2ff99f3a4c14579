package update

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleDashboardKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.Dashboard.Cursor > 0 {
			m.Dashboard.Cursor--
		}
	case "down", "j":
		if m.Dashboard.Cursor < len(m.Dashboard.Tasks)-1 {
			m.Dashboard.Cursor++
		}
	case "enter", "c":
		if task, ok := m.selectedTask(); ok {
			m.CompletionForm = CompletionFormState{
				Active:    true,
				TaskID:    task.ID,
				TaskTitle: task.Title,
				Accuracy:  m.cfg.DefaultAccuracy,
			}
			m.timeInput.SetValue(strconv.Itoa(task.Duration))
			m.timeInput.Focus()
		}
	case "s":
		if task, ok := m.selectedTask(); ok {
			if err := m.startSession(task); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
			}
		}
	}
	return m, nil
}

func (m Model) handleCompletionFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.CompletionForm = CompletionFormState{}
		m.timeInput.Blur()
		return m, nil
	case "left":
		m.CompletionForm.Accuracy -= 5
		if m.CompletionForm.Accuracy < 0 {
			m.CompletionForm.Accuracy = 0
		}
		return m, nil
	case "right":
		m.CompletionForm.Accuracy += 5
		if m.CompletionForm.Accuracy > 100 {
			m.CompletionForm.Accuracy = 100
		}
		return m, nil
	case "enter":
		minutes, err := strconv.Atoi(m.timeInput.Value())
		if err != nil || minutes < 0 {
			m.Status = StatusBar{Text: "time spent must be a non-negative number of minutes", IsError: true}
			return m, nil
		}
		if err := m.completeTask(m.CompletionForm.TaskID, minutes, m.CompletionForm.Accuracy); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.CompletionForm = CompletionFormState{}
		m.timeInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.timeInput, cmd = m.timeInput.Update(msg)
	return m, cmd
}
