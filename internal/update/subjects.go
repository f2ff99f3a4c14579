package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kumaresh12818/smart-study-planner/internal/model"
)

func (m Model) handleSubjectsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "a" {
		m.SubjectForm = SubjectFormState{Active: true, Difficulty: 5, Priority: 5}
		m.nameInput.SetValue("")
		m.dateInput.SetValue("")
		m.nameInput.Focus()
		m.dateInput.Blur()
	}
	return m, nil
}

func (m Model) handleSubjectFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.SubjectForm = SubjectFormState{Difficulty: 5, Priority: 5}
		m.nameInput.Blur()
		m.dateInput.Blur()
		return m, nil
	case "tab":
		m.SubjectForm.Field = (m.SubjectForm.Field + 1) % subjectFieldCount
		m.nameInput.Blur()
		m.dateInput.Blur()
		switch m.SubjectForm.Field {
		case subjectFieldName:
			m.nameInput.Focus()
		case subjectFieldDate:
			m.dateInput.Focus()
		}
		return m, nil
	case "left":
		switch m.SubjectForm.Field {
		case subjectFieldDifficulty:
			if m.SubjectForm.Difficulty > 1 {
				m.SubjectForm.Difficulty--
			}
			return m, nil
		case subjectFieldPriority:
			if m.SubjectForm.Priority > 1 {
				m.SubjectForm.Priority--
			}
			return m, nil
		}
	case "right":
		switch m.SubjectForm.Field {
		case subjectFieldDifficulty:
			if m.SubjectForm.Difficulty < 10 {
				m.SubjectForm.Difficulty++
			}
			return m, nil
		case subjectFieldPriority:
			if m.SubjectForm.Priority < 10 {
				m.SubjectForm.Priority++
			}
			return m, nil
		}
	case "enter":
		examDate, err := model.ParseDate(m.dateInput.Value())
		if err != nil {
			m.SubjectForm.Err = "exam date must be " + model.DateLayout
			return m, nil
		}
		cfg := model.SubjectConfig{
			Name:       m.nameInput.Value(),
			Difficulty: m.SubjectForm.Difficulty,
			Priority:   m.SubjectForm.Priority,
			ExamDate:   examDate,
		}
		if err := m.addSubject(cfg); err != nil {
			m.SubjectForm.Err = err.Error()
			return m, nil
		}
		m.SubjectForm = SubjectFormState{Difficulty: 5, Priority: 5}
		m.nameInput.Blur()
		m.dateInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.SubjectForm.Field {
	case subjectFieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case subjectFieldDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
	}
	return m, cmd
}
