package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidTaskType = errors.New("model: invalid task type")

type TaskType string

const (
	TaskTypeLearning TaskType = "learning"
	TaskTypeRevision TaskType = "revision"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeLearning, TaskTypeRevision:
		return true
	default:
		return false
	}
}

// Task is one scheduled unit of study work for a subject. Tasks are created
// in batch by the planner and mutated exactly once, from Completed=false to
// Completed=true. SubjectName, Difficulty and Priority are copied from the
// subject at creation time; renaming a subject later does not rewrite them.
type Task struct {
	ID            string
	SubjectID     string
	SubjectName   string
	Title         string
	Type          TaskType
	Duration      int
	ScheduledDate time.Time
	Completed     bool
	Difficulty    int
	Priority      int
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.SubjectID) == "" {
		return errors.New("model: task subject_id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTaskType, t.Type)
	}
	if t.Duration <= 0 {
		return fmt.Errorf("model: task duration must be positive, got %d", t.Duration)
	}
	if t.ScheduledDate.IsZero() {
		return errors.New("model: task scheduled_date is required")
	}
	return nil
}

// Score is the urgency weight used when ordering today's tasks.
func (t Task) Score() int {
	return t.Priority * t.Difficulty
}
