// Package planner generates study schedules. For each subject it lays out a
// fixed number of sessions spread evenly across the horizon, then adds
// revision tasks at spaced-repetition offsets that fall before the exam.
package planner

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kumaresh12818/smart-study-planner/internal/model"
)

var ErrInvalidHorizon = errors.New("planner: horizon must be at least one day")

// spacedOffsets are the day offsets after today at which revision tasks are
// scheduled. Offsets landing on or after the exam date are skipped, not
// deferred.
var spacedOffsets = []int{1, 3, 7, 14, 21}

// Generate produces the full task batch for the given subjects over a shared
// horizon of totalDays. The result is stably sorted ascending by scheduled
// date; ties keep the per-subject emission order.
func Generate(subjects []model.Subject, totalDays int, now time.Time) ([]model.Task, error) {
	if totalDays < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHorizon, totalDays)
	}
	today := model.DateOf(now)

	tasks := make([]model.Task, 0, len(subjects)*12)
	for _, subject := range subjects {
		tasks = append(tasks, sessionTasks(subject, totalDays, today)...)
		tasks = append(tasks, revisionTasks(subject, today)...)
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].ScheduledDate.Before(tasks[j].ScheduledDate)
	})
	return tasks, nil
}

func sessionTasks(subject model.Subject, totalDays int, today time.Time) []model.Task {
	sessionsNeeded := int(math.Ceil(float64(subject.Difficulty) * 2))
	timePerSession := subject.Difficulty * 30

	out := make([]model.Task, 0, sessionsNeeded)
	for i := 0; i < sessionsNeeded; i++ {
		dayOffset := int(math.Floor(float64(totalDays) / float64(sessionsNeeded) * float64(i)))
		taskType := model.TaskTypeRevision
		if i < 2 {
			taskType = model.TaskTypeLearning
		}
		out = append(out, model.Task{
			ID:            uuid.NewString(),
			SubjectID:     subject.ID,
			SubjectName:   subject.Name,
			Title:         fmt.Sprintf("%s - Session %d", subject.Name, i+1),
			Type:          taskType,
			Duration:      timePerSession,
			ScheduledDate: today.AddDate(0, 0, dayOffset),
			Difficulty:    subject.Difficulty,
			Priority:      subject.Priority,
		})
	}
	return out
}

func revisionTasks(subject model.Subject, today time.Time) []model.Task {
	if subject.ExamDate.IsZero() {
		return nil
	}
	exam := model.DateOf(subject.ExamDate)
	timePerSession := subject.Difficulty * 30

	out := make([]model.Task, 0, len(spacedOffsets))
	for idx, offset := range spacedOffsets {
		date := today.AddDate(0, 0, offset)
		if !date.Before(exam) {
			continue
		}
		out = append(out, model.Task{
			ID:            uuid.NewString(),
			SubjectID:     subject.ID,
			SubjectName:   subject.Name,
			Title:         fmt.Sprintf("%s - Revision %d", subject.Name, idx+1),
			Type:          model.TaskTypeRevision,
			Duration:      timePerSession * 7 / 10,
			ScheduledDate: date,
			Difficulty:    subject.Difficulty,
			Priority:      subject.Priority - 1,
		})
	}
	return out
}

// HorizonUntil is the horizon a single manually added subject gets: the
// number of whole days from today until its exam date.
func HorizonUntil(examDate, now time.Time) int {
	return model.DaysBetween(now, examDate)
}
