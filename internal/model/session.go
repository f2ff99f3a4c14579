package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidAccuracy = errors.New("model: accuracy must be between 0 and 100")

// StudySession is an immutable record of one completed task. Sessions form
// an append-only log and are the sole source of truth for analytics.
type StudySession struct {
	ID                string
	TaskID            string
	SubjectName       string
	TimeSpent         int
	Accuracy          int
	Date              time.Time
	ScheduledDuration int
}

func (s StudySession) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return errors.New("model: session id is required")
	}
	if strings.TrimSpace(s.TaskID) == "" {
		return errors.New("model: session task_id is required")
	}
	if s.TimeSpent < 0 {
		return fmt.Errorf("model: session time_spent must not be negative, got %d", s.TimeSpent)
	}
	if s.Accuracy < 0 || s.Accuracy > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidAccuracy, s.Accuracy)
	}
	if s.Date.IsZero() {
		return errors.New("model: session date is required")
	}
	return nil
}

// UserProfile is the single process-wide record of streak state. StudyStreak
// counts consecutive calendar days with at least one completion;
// LastStudyDate is the date-only value of the most recent streak-changing
// completion, zero before the first one.
type UserProfile struct {
	StudyStreak   int
	TotalHours    int
	LastStudyDate time.Time
}
