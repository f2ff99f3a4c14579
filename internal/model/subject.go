package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDifficulty = errors.New("model: difficulty must be between 1 and 10")
	ErrInvalidPriority   = errors.New("model: priority must be between 1 and 10")
)

// initialPerformanceScore is the score a subject starts with before any
// session has been recorded for it.
const initialPerformanceScore = 50

// Subject is a topic with an exam date, tracked for performance.
// PerformanceScore and TimeSpent are derived: they are recomputed from the
// session history on every completion and never set directly.
type Subject struct {
	ID               string
	Name             string
	Difficulty       int
	Priority         int
	ExamDate         time.Time
	PerformanceScore int
	TimeSpent        int
}

func (s Subject) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return errors.New("model: subject id is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("model: subject name is required")
	}
	if s.Difficulty < 1 || s.Difficulty > 10 {
		return fmt.Errorf("%w: %d", ErrInvalidDifficulty, s.Difficulty)
	}
	if s.Priority < 1 || s.Priority > 10 {
		return fmt.Errorf("%w: %d", ErrInvalidPriority, s.Priority)
	}
	return nil
}

// SubjectConfig enumerates exactly the fields a caller may set when creating
// a subject. The exam date may be zero; a subject without one simply gets no
// spaced-repetition tasks.
type SubjectConfig struct {
	Name       string
	Difficulty int
	Priority   int
	ExamDate   time.Time
}

func (c SubjectConfig) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("model: subject name is required")
	}
	if c.Difficulty < 1 || c.Difficulty > 10 {
		return fmt.Errorf("%w: %d", ErrInvalidDifficulty, c.Difficulty)
	}
	if c.Priority < 1 || c.Priority > 10 {
		return fmt.Errorf("%w: %d", ErrInvalidPriority, c.Priority)
	}
	return nil
}

// NewSubject builds a subject from a config, assigning a fresh id and the
// initial derived fields.
func NewSubject(cfg SubjectConfig) (Subject, error) {
	if err := cfg.Validate(); err != nil {
		return Subject{}, err
	}
	return Subject{
		ID:               uuid.NewString(),
		Name:             strings.TrimSpace(cfg.Name),
		Difficulty:       cfg.Difficulty,
		Priority:         cfg.Priority,
		ExamDate:         DateOf(cfg.ExamDate),
		PerformanceScore: initialPerformanceScore,
	}, nil
}
