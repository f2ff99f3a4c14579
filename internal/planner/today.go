package planner

import (
	"sort"
	"time"

	"github.com/kumaresh12818/smart-study-planner/internal/model"
)

// SelectToday picks the tasks the dashboard should surface: incomplete
// overdue tasks first, then incomplete tasks scheduled for today. Each group
// is stably sorted descending by priority*difficulty; overdue tasks always
// precede today's regardless of score.
func SelectToday(tasks []model.Task, now time.Time) []model.Task {
	today := model.DateOf(now)

	var overdue, due []model.Task
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		scheduled := model.DateOf(task.ScheduledDate)
		switch {
		case scheduled.Before(today):
			overdue = append(overdue, task)
		case scheduled.Equal(today):
			due = append(due, task)
		}
	}

	byScoreDesc := func(group []model.Task) {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Score() > group[j].Score()
		})
	}
	byScoreDesc(overdue)
	byScoreDesc(due)

	return append(overdue, due...)
}
