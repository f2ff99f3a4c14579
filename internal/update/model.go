package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/kumaresh12818/smart-study-planner/internal/alarm"
	"github.com/kumaresh12818/smart-study-planner/internal/model"
	"github.com/kumaresh12818/smart-study-planner/internal/tracker"
)

type View string

const (
	ViewDashboard View = "Dashboard"
	ViewSchedule  View = "Schedule"
	ViewAnalytics View = "Analytics"
	ViewSubjects  View = "Subjects"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard string
	Schedule  string
	Analytics string
	Subjects  string
	Help      string
	Quit      string
}

type DashboardState struct {
	Tasks  []model.Task
	Cursor int
}

// CompletionFormState captures the per-task inputs gathered before a
// completion is recorded: self-reported minutes and understanding.
type CompletionFormState struct {
	Active    bool
	TaskID    string
	TaskTitle string
	Accuracy  int
}

const (
	subjectFieldName = iota
	subjectFieldDate
	subjectFieldDifficulty
	subjectFieldPriority
	subjectFieldCount
)

type SubjectFormState struct {
	Active     bool
	Field      int
	Difficulty int
	Priority   int
	Err        string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type Model struct {
	CurrentView    View
	Store          *tracker.Store
	Alarm          *alarm.Engine
	AlertLog       []alarm.Alert
	Dashboard      DashboardState
	CompletionForm CompletionFormState
	SubjectForm    SubjectFormState
	Palette        CommandPaletteState
	HelpVisible    bool
	Notifications  []Notification
	DesktopEnabled bool
	notifier       DesktopNotifier
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	cfg            RuntimeConfig
	now            func() time.Time
	// Bubble components used for rich TUI controls
	nlInput          textinput.Model
	commandInput     textinput.Model
	nameInput        textinput.Model
	dateInput        textinput.Model
	timeInput        textinput.Model
	scheduleTable    table.Model
	perfBar          progress.Model
	helpModel        help.Model
	insightsViewport viewport.Model
	nlFocused        bool
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// PlanRequestMsg carries free text the user wants turned into a schedule.
type PlanRequestMsg struct {
	Text string
}

// SessionAlertMsg is delivered when the alarm engine fires for a started
// study session.
type SessionAlertMsg struct {
	Alert alarm.Alert
}

func NewModel() Model {
	return NewModelWithConfig(nil, nil, DefaultRuntimeConfig())
}

func NewModelWithAlarm(engine *alarm.Engine) Model {
	return NewModelWithConfig(engine, nil, DefaultRuntimeConfig())
}

func NewModelWithConfig(engine *alarm.Engine, notifier DesktopNotifier, cfg RuntimeConfig) Model {
	m := Model{
		CurrentView:    ViewDashboard,
		Store:          tracker.NewStore(),
		Alarm:          engine,
		DesktopEnabled: cfg.DesktopNotifications,
		notifier:       NoopDesktopNotifier{},
		SubjectForm: SubjectFormState{
			Difficulty: 5,
			Priority:   5,
		},
		Keys: GlobalKeyMap{
			Dashboard: "1",
			Schedule:  "2",
			Analytics: "3",
			Subjects:  "4",
			Help:      "?",
			Quit:      "q",
		},
		cfg: cfg,
		now: time.Now,
	}
	if notifier != nil {
		m.notifier = notifier
	}
	m.initBubbleComponents()
	m.refreshDashboard()
	m.syncScheduleTable()
	m.syncInsights()
	return m
}

func (m *Model) initBubbleComponents() {
	m.nlInput = textinput.New()
	m.nlInput.Placeholder = `try: "math and physics exam in 30 days"`
	m.nlInput.CharLimit = 120

	m.commandInput = textinput.New()
	m.commandInput.Placeholder = "plan | add | complete | show"
	m.commandInput.CharLimit = 120

	m.nameInput = textinput.New()
	m.nameInput.Placeholder = "subject name"
	m.nameInput.CharLimit = 40

	m.dateInput = textinput.New()
	m.dateInput.Placeholder = model.DateLayout
	m.dateInput.CharLimit = 10

	m.timeInput = textinput.New()
	m.timeInput.Placeholder = "minutes"
	m.timeInput.CharLimit = 4

	m.scheduleTable = table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 10},
			{Title: "Task", Width: 28},
			{Title: "Min", Width: 5},
			{Title: "Type", Width: 8},
			{Title: "Prio", Width: 4},
		}),
		table.WithHeight(12),
	)

	m.perfBar = progress.New(progress.WithDefaultGradient())
	m.perfBar.Width = 24
	m.perfBar.ShowPercentage = false

	m.helpModel = help.New()

	m.insightsViewport = viewport.New(50, 10)
}
