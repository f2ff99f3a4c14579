// Package tracker records task completions and derives every metric the app
// shows: per-subject rolling accuracy and time, overall analytics, and the
// day-streak state. The session log is the sole source of truth; subjects
// and the profile only carry values recomputed from it.
package tracker

import (
	"math"
	"time"

	"github.com/kumaresh12818/smart-study-planner/internal/model"
)

// Analytics is the aggregate view over the whole session log.
type Analytics struct {
	TotalSessions      int
	AvgAccuracy        int
	TotalStudyTime     int
	SubjectPerformance []SubjectPerformance
}

// SubjectPerformance is one subject's slice of the analytics, in the order
// of the subject list rather than by performance.
type SubjectPerformance struct {
	Name      string
	Accuracy  int
	Sessions  int
	TimeSpent int
}

// ComputeAnalytics recomputes the analytics from scratch. Means over zero
// sessions are 0, never a division by zero.
func ComputeAnalytics(sessions []model.StudySession, subjects []model.Subject) Analytics {
	out := Analytics{
		TotalSessions:      len(sessions),
		SubjectPerformance: make([]SubjectPerformance, 0, len(subjects)),
	}

	accuracySum := 0
	for _, s := range sessions {
		accuracySum += s.Accuracy
		out.TotalStudyTime += s.TimeSpent
	}
	if len(sessions) > 0 {
		out.AvgAccuracy = roundMean(accuracySum, len(sessions))
	}

	for _, subject := range subjects {
		row := SubjectPerformance{Name: subject.Name}
		sum := 0
		for _, s := range sessions {
			if s.SubjectName != subject.Name {
				continue
			}
			row.Sessions++
			row.TimeSpent += s.TimeSpent
			sum += s.Accuracy
		}
		if row.Sessions > 0 {
			row.Accuracy = roundMean(sum, row.Sessions)
		}
		out.SubjectPerformance = append(out.SubjectPerformance, row)
	}
	return out
}

// SubjectAfterSessions returns the subject with its derived fields
// recomputed over every session whose subject name matches.
func SubjectAfterSessions(subject model.Subject, sessions []model.StudySession) model.Subject {
	count, accuracySum, timeSum := 0, 0, 0
	for _, s := range sessions {
		if s.SubjectName != subject.Name {
			continue
		}
		count++
		accuracySum += s.Accuracy
		timeSum += s.TimeSpent
	}
	if count > 0 {
		subject.PerformanceScore = roundMean(accuracySum, count)
	} else {
		subject.PerformanceScore = 0
	}
	subject.TimeSpent = timeSum
	return subject
}

// NextStreak applies one completion event to the streak state machine.
// Completing more than one task on the same day leaves the profile
// untouched; a completion the day after the last one extends the streak;
// anything else (a gap of two or more days, or no prior completion) resets
// it to 1. LastStudyDate moves only on the streak-changing branches.
func NextStreak(profile model.UserProfile, now time.Time) model.UserProfile {
	today := model.DateOf(now)
	switch {
	case profile.LastStudyDate.Equal(today):
		return profile
	case profile.LastStudyDate.Equal(today.AddDate(0, 0, -1)):
		profile.StudyStreak++
	default:
		profile.StudyStreak = 1
	}
	profile.LastStudyDate = today
	return profile
}

func roundMean(sum, count int) int {
	return int(math.Round(float64(sum) / float64(count)))
}
