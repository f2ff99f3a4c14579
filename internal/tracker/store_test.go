package tracker

import (
	"errors"
	"testing"

	"github.com/kumaresh12818/smart-study-planner/internal/model"
)

func storeWithPlan(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	s.AddSubjects(model.Subject{
		ID:               "subj-math",
		Name:             "Math",
		Difficulty:       5,
		Priority:         8,
		PerformanceScore: 50,
	})
	s.AddTasks([]model.Task{
		{
			ID:            "task-1",
			SubjectID:     "subj-math",
			SubjectName:   "Math",
			Title:         "Math - Session 1",
			Type:          model.TaskTypeLearning,
			Duration:      150,
			ScheduledDate: model.DateOf(trackTestNow),
			Difficulty:    5,
			Priority:      8,
		},
	})
	return s
}

func TestRecordCompletionHappyPath(t *testing.T) {
	s := storeWithPlan(t)

	completion, err := s.RecordCompletion("task-1", 40, 85, trackTestNow)
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if !completion.Task.Completed {
		t.Fatal("expected task marked completed")
	}
	if completion.Session.TaskID != "task-1" || completion.Session.TimeSpent != 40 || completion.Session.Accuracy != 85 {
		t.Fatalf("unexpected session: %+v", completion.Session)
	}
	if completion.Session.ScheduledDuration != 150 {
		t.Fatalf("expected scheduled duration carried over, got %d", completion.Session.ScheduledDuration)
	}
	if completion.Subject.PerformanceScore != 85 || completion.Subject.TimeSpent != 40 {
		t.Fatalf("unexpected subject after completion: %+v", completion.Subject)
	}
	if completion.Profile.StudyStreak != 1 {
		t.Fatalf("expected streak 1, got %d", completion.Profile.StudyStreak)
	}
	// 40 minutes rounds to 1 hour.
	if completion.Profile.TotalHours != 1 {
		t.Fatalf("expected 1 total hour, got %d", completion.Profile.TotalHours)
	}

	if got := s.Sessions(); len(got) != 1 {
		t.Fatalf("expected 1 stored session, got %d", len(got))
	}
}

func TestRecordCompletionUnknownTask(t *testing.T) {
	s := storeWithPlan(t)

	if _, err := s.RecordCompletion("missing", 30, 80, trackTestNow); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if len(s.Sessions()) != 0 {
		t.Fatal("expected no session recorded for unknown task")
	}
	if s.Profile().StudyStreak != 0 {
		t.Fatal("expected profile untouched for unknown task")
	}
}

func TestRecordCompletionRejectsDoubleComplete(t *testing.T) {
	s := storeWithPlan(t)

	if _, err := s.RecordCompletion("task-1", 30, 80, trackTestNow); err != nil {
		t.Fatalf("first completion failed: %v", err)
	}
	if _, err := s.RecordCompletion("task-1", 30, 80, trackTestNow); !errors.Is(err, ErrTaskCompleted) {
		t.Fatalf("expected ErrTaskCompleted, got %v", err)
	}
	if len(s.Sessions()) != 1 {
		t.Fatalf("expected single session after rejected retry, got %d", len(s.Sessions()))
	}
}

func TestRecordCompletionInvalidAccuracyLeavesStateUntouched(t *testing.T) {
	s := storeWithPlan(t)

	if _, err := s.RecordCompletion("task-1", 30, 120, trackTestNow); !errors.Is(err, model.ErrInvalidAccuracy) {
		t.Fatalf("expected ErrInvalidAccuracy, got %v", err)
	}
	task, err := s.Task("task-1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if task.Completed {
		t.Fatal("expected task still pending after invalid session")
	}
	if len(s.Sessions()) != 0 {
		t.Fatal("expected no session stored after invalid session")
	}
}

func TestRecordCompletionUnknownSubject(t *testing.T) {
	s := NewStore()
	s.AddTasks([]model.Task{{
		ID:            "task-orphan",
		SubjectID:     "subj-gone",
		SubjectName:   "Gone",
		Title:         "Gone - Session 1",
		Type:          model.TaskTypeLearning,
		Duration:      30,
		ScheduledDate: model.DateOf(trackTestNow),
		Difficulty:    5,
		Priority:      5,
	}})

	if _, err := s.RecordCompletion("task-orphan", 30, 80, trackTestNow); !errors.Is(err, ErrSubjectNotFound) {
		t.Fatalf("expected ErrSubjectNotFound, got %v", err)
	}
}

func TestAddTasksKeepsSetSortedByDate(t *testing.T) {
	s := NewStore()
	mk := func(id string, offset int) model.Task {
		return model.Task{
			ID:            id,
			SubjectID:     "subj",
			SubjectName:   "Math",
			Title:         id,
			Type:          model.TaskTypeLearning,
			Duration:      30,
			ScheduledDate: model.DateOf(trackTestNow).AddDate(0, 0, offset),
			Difficulty:    5,
			Priority:      5,
		}
	}

	s.AddTasks([]model.Task{mk("a", 4), mk("b", 1)})
	s.AddTasks([]model.Task{mk("c", 2), mk("d", 1)})

	got := s.Tasks()
	wantOrder := []string{"b", "d", "c", "a"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("task %d = %s, want %s (full order %v)", i, got[i].ID, id, wantOrder)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := storeWithPlan(t)

	tasks := s.Tasks()
	tasks[0].Completed = true
	fresh, err := s.Task("task-1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if fresh.Completed {
		t.Fatal("mutating the returned slice must not touch store state")
	}

	names := s.SubjectNames()
	if len(names) != 1 || names[0] != "Math" {
		t.Fatalf("unexpected subject names: %v", names)
	}
}
