// Package goals tracks weekly per-category hour targets against observed
// session usage.
package goals

import (
	"time"

	"screenwell/wellness-agent/internal/category"
	"screenwell/wellness-agent/internal/models"
)

// Recommendations swapped in when a goal is untouched late in the week
var adaptiveRecommendations = []string{
	"Consider adjusting this goal for next week",
	"Schedule specific time blocks for this activity",
}

// Default returns the stock weekly goal set
func Default() []models.Goal {
	return []models.Goal{
		{
			Category:    category.Productivity,
			TargetHours: 20,
			Status:      models.GoalNotStarted,
			Recommendations: []string{
				"Schedule specific productivity blocks in your calendar",
				"Start with the most important task each day",
			},
		},
		{
			Category:    category.Entertainment,
			TargetHours: 10,
			Status:      models.GoalNotStarted,
			Recommendations: []string{
				"Limit entertainment to evenings after completing work goals",
				"Use a timer to maintain boundaries",
			},
		},
		{
			Category:    category.Communication,
			TargetHours: 5,
			Status:      models.GoalNotStarted,
			Recommendations: []string{
				"Batch process emails and messages at scheduled times",
				"Use 'Do Not Disturb' mode during focus periods",
			},
		},
	}
}

// UpdateProgress folds a session's category usage (minutes) into the goals,
// returning an updated copy. Progress is capped at 100%. Goals still untouched
// from Thursday onward get adaptive recommendations instead of the static ones.
func UpdateProgress(goals []models.Goal, usage models.CategoryUsage, now time.Time) []models.Goal {
	updated := make([]models.Goal, 0, len(goals))
	for _, goal := range goals {
		goal.CurrentHours += usage.Minutes(goal.Category) / 60

		if goal.TargetHours > 0 {
			goal.Progress = min(100, int(goal.CurrentHours/goal.TargetHours*100))
		} else {
			goal.Progress = 0
		}

		switch {
		case goal.Progress == 0:
			goal.Status = models.GoalNotStarted
		case goal.Progress < 50:
			goal.Status = models.GoalInProgress
		case goal.Progress < 100:
			goal.Status = models.GoalAlmostComplete
		default:
			goal.Status = models.GoalCompleted
		}

		if goal.Status == models.GoalNotStarted && lateInWeek(now) {
			goal.Recommendations = adaptiveRecommendations
		}

		updated = append(updated, goal)
	}
	return updated
}

// lateInWeek reports whether the week is more than half over, counting the
// week from Monday.
func lateInWeek(now time.Time) bool {
	weekday := (int(now.Weekday()) + 6) % 7 // Monday = 0
	return weekday >= 3
}
