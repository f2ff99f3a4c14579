package update

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kumaresh12818/smart-study-planner/internal/commands"
	"github.com/kumaresh12818/smart-study-planner/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette = CommandPaletteState{}
		m.commandInput.Blur()
		m.commandInput.SetValue("")
		return m, nil
	case "enter":
		input := m.commandInput.Value()
		m.Palette = CommandPaletteState{}
		m.commandInput.Blur()
		m.commandInput.SetValue("")

		cmd, err := commands.Parse(input)
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		result, err := commands.Execute(cmd, m.paletteHandlers())
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		if result.Message != "" {
			m.Status = StatusBar{Text: result.Message}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

// paletteHandlers wires palette commands to the same actions the key
// bindings use. The receiver is a pointer into the copy the update loop is
// about to return, so mutations land in the next model.
func (m *Model) paletteHandlers() commands.Handlers {
	return commands.Handlers{
		Plan: func(args commands.PlanArgs) (commands.Result, error) {
			if err := m.generatePlan(args.Text); err != nil {
				return commands.Result{}, err
			}
			m.CurrentView = ViewSchedule
			return commands.Result{Message: m.Status.Text}, nil
		},
		Add: func(args commands.AddArgs) (commands.Result, error) {
			examDate, err := model.ParseDate(args.Due)
			if err != nil {
				return commands.Result{}, fmt.Errorf("due date must be %s: %w", model.DateLayout, err)
			}
			cfg := model.SubjectConfig{
				Name:       args.Name,
				Difficulty: args.Difficulty,
				Priority:   args.Priority,
				ExamDate:   examDate,
			}
			if err := m.addSubject(cfg); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Complete: func(args commands.CompleteArgs) (commands.Result, error) {
			task, err := m.resolveTask(args.Target)
			if err != nil {
				return commands.Result{}, err
			}
			minutes := args.Minutes
			if minutes < 0 {
				minutes = task.Duration
			}
			accuracy := args.Accuracy
			if accuracy < 0 {
				accuracy = m.cfg.DefaultAccuracy
			}
			if err := m.completeTask(task.ID, minutes, accuracy); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Show: func(args commands.ShowArgs) (commands.Result, error) {
			analytics := m.Store.Analytics()
			for _, row := range analytics.SubjectPerformance {
				if strings.ToLower(row.Name) == args.Subject {
					return commands.Result{Message: fmt.Sprintf("%s: %d%% accuracy over %d session(s), %dm studied",
						row.Name, row.Accuracy, row.Sessions, row.TimeSpent)}, nil
				}
			}
			return commands.Result{}, fmt.Errorf("unknown subject: %s", args.Subject)
		},
	}
}

// resolveTask maps a palette target to a task: a number selects from
// today's list (1-based), anything else matches a task id prefix.
func (m Model) resolveTask(target string) (model.Task, error) {
	if n, err := strconv.Atoi(target); err == nil {
		if n < 1 || n > len(m.Dashboard.Tasks) {
			return model.Task{}, fmt.Errorf("no task %d in today's list", n)
		}
		return m.Dashboard.Tasks[n-1], nil
	}
	for _, task := range m.Store.Tasks() {
		if strings.HasPrefix(strings.ToLower(task.ID), target) {
			return task, nil
		}
	}
	return model.Task{}, fmt.Errorf("no task matches %q", target)
}
