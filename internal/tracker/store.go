package tracker

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kumaresh12818/smart-study-planner/internal/model"
)

var (
	ErrTaskNotFound    = errors.New("tracker: task not found")
	ErrTaskCompleted   = errors.New("tracker: task already completed")
	ErrSubjectNotFound = errors.New("tracker: subject not found")
)

// Completion is the result of recording one completed task: the session that
// was appended plus the entities after the update.
type Completion struct {
	Session model.StudySession
	Task    model.Task
	Subject model.Subject
	Profile model.UserProfile
}

// Store holds the canonical in-memory collections and applies each
// completion's mutations (session append, task mark-complete, subject
// recompute, profile update) as one atomic step under a mutex, so streak
// idempotence and the recompute-from-full-history invariant hold even if
// the host drives completions from more than one goroutine.
type Store struct {
	mu       sync.Mutex
	subjects []model.Subject
	tasks    []model.Task
	sessions []model.StudySession
	profile  model.UserProfile
}

func NewStore() *Store {
	return &Store{}
}

// AddSubjects appends subjects to the tracked set. Subjects are never
// deleted in-session.
func (s *Store) AddSubjects(subjects ...model.Subject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subjects = append(s.subjects, subjects...)
}

// AddTasks merges a generated batch into the task set and re-sorts the whole
// set by scheduled date, keeping prior relative order on ties.
func (s *Store) AddTasks(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, tasks...)
	sort.SliceStable(s.tasks, func(i, j int) bool {
		return s.tasks[i].ScheduledDate.Before(s.tasks[j].ScheduledDate)
	})
}

// RecordCompletion marks the task done, appends the session, recomputes the
// owning subject's derived fields over the full history and runs the streak
// transition. An unknown or already-completed task fails before any state
// changes.
func (s *Store) RecordCompletion(taskID string, timeSpent, accuracy int, now time.Time) (Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	taskIdx := -1
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			taskIdx = i
			break
		}
	}
	if taskIdx < 0 {
		return Completion{}, ErrTaskNotFound
	}
	if s.tasks[taskIdx].Completed {
		return Completion{}, ErrTaskCompleted
	}

	subjectIdx := -1
	for i := range s.subjects {
		if s.subjects[i].ID == s.tasks[taskIdx].SubjectID {
			subjectIdx = i
			break
		}
	}
	if subjectIdx < 0 {
		return Completion{}, ErrSubjectNotFound
	}

	session := model.StudySession{
		ID:                uuid.NewString(),
		TaskID:            taskID,
		SubjectName:       s.tasks[taskIdx].SubjectName,
		TimeSpent:         timeSpent,
		Accuracy:          accuracy,
		Date:              now,
		ScheduledDuration: s.tasks[taskIdx].Duration,
	}
	if err := session.Validate(); err != nil {
		return Completion{}, err
	}

	s.sessions = append(s.sessions, session)
	s.tasks[taskIdx].Completed = true
	s.subjects[subjectIdx] = SubjectAfterSessions(s.subjects[subjectIdx], s.sessions)
	s.profile = NextStreak(s.profile, now)
	s.profile.TotalHours = totalHours(s.sessions)

	return Completion{
		Session: session,
		Task:    s.tasks[taskIdx],
		Subject: s.subjects[subjectIdx],
		Profile: s.profile,
	}, nil
}

// Analytics recomputes the aggregate view over the current log.
func (s *Store) Analytics() Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeAnalytics(s.sessions, s.subjects)
}

func (s *Store) Subjects() []model.Subject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Subject(nil), s.subjects...)
}

func (s *Store) SubjectNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.subjects))
	for _, subject := range s.subjects {
		names = append(names, subject.Name)
	}
	return names
}

func (s *Store) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Task(nil), s.tasks...)
}

func (s *Store) Sessions() []model.StudySession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.StudySession(nil), s.sessions...)
}

func (s *Store) Profile() model.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Task returns the task with the given id.
func (s *Store) Task(id string) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, task := range s.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return model.Task{}, ErrTaskNotFound
}

func totalHours(sessions []model.StudySession) int {
	minutes := 0
	for _, session := range sessions {
		minutes += session.TimeSpent
	}
	return (minutes + 30) / 60
}
