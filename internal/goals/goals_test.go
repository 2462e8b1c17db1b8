package goals

import (
	"testing"
	"time"

	"screenwell/wellness-agent/internal/category"
	"screenwell/wellness-agent/internal/models"
)

// midweek is a Tuesday, before the adaptive recommendation cutover
var midweek = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

func TestDefault(t *testing.T) {
	defaults := Default()

	if len(defaults) != 3 {
		t.Fatalf("len(Default()) = %d, want 3", len(defaults))
	}
	for _, goal := range defaults {
		if goal.Status != models.GoalNotStarted {
			t.Errorf("goal %s Status = %q, want Not Started", goal.Category, goal.Status)
		}
		if goal.Progress != 0 || goal.CurrentHours != 0 {
			t.Errorf("goal %s not zeroed: %+v", goal.Category, goal)
		}
		if len(goal.Recommendations) == 0 {
			t.Errorf("goal %s has no recommendations", goal.Category)
		}
	}
}

func TestUpdateProgress(t *testing.T) {
	usage := models.CategoryUsage{
		category.Productivity:  120, // 2 hours against a 20 hour target
		category.Communication: 180, // 3 hours against a 5 hour target
	}

	updated := UpdateProgress(Default(), usage, midweek)

	byCategory := make(map[string]models.Goal)
	for _, goal := range updated {
		byCategory[goal.Category] = goal
	}

	prod := byCategory[category.Productivity]
	if prod.CurrentHours != 2 {
		t.Errorf("Productivity CurrentHours = %v, want 2", prod.CurrentHours)
	}
	if prod.Progress != 10 {
		t.Errorf("Productivity Progress = %d, want 10", prod.Progress)
	}
	if prod.Status != models.GoalInProgress {
		t.Errorf("Productivity Status = %q, want In Progress", prod.Status)
	}

	comm := byCategory[category.Communication]
	if comm.Progress != 60 {
		t.Errorf("Communication Progress = %d, want 60", comm.Progress)
	}
	if comm.Status != models.GoalAlmostComplete {
		t.Errorf("Communication Status = %q, want Almost Complete", comm.Status)
	}

	ent := byCategory[category.Entertainment]
	if ent.Status != models.GoalNotStarted {
		t.Errorf("Entertainment Status = %q, want Not Started", ent.Status)
	}
}

func TestUpdateProgress_AccumulatesAcrossSessions(t *testing.T) {
	usage := models.CategoryUsage{category.Communication: 150} // 2.5 hours

	updated := UpdateProgress(Default(), usage, midweek)
	updated = UpdateProgress(updated, usage, midweek)

	for _, goal := range updated {
		if goal.Category != category.Communication {
			continue
		}
		if goal.CurrentHours != 5 {
			t.Errorf("CurrentHours = %v, want 5", goal.CurrentHours)
		}
		if goal.Progress != 100 {
			t.Errorf("Progress = %d, want 100", goal.Progress)
		}
		if goal.Status != models.GoalCompleted {
			t.Errorf("Status = %q, want Completed", goal.Status)
		}
	}
}

func TestUpdateProgress_CapsAtHundred(t *testing.T) {
	usage := models.CategoryUsage{category.Entertainment: 60 * 100}

	updated := UpdateProgress(Default(), usage, midweek)
	for _, goal := range updated {
		if goal.Category == category.Entertainment && goal.Progress != 100 {
			t.Errorf("Progress = %d, want capped at 100", goal.Progress)
		}
	}
}

func TestUpdateProgress_AdaptiveRecommendationsLateInWeek(t *testing.T) {
	thursday := time.Date(2026, time.September, 3, 12, 0, 0, 0, time.UTC)
	usage := models.CategoryUsage{category.Productivity: 120}

	updated := UpdateProgress(Default(), usage, thursday)

	for _, goal := range updated {
		switch goal.Category {
		case category.Productivity:
			// Goals with progress keep their static recommendations
			if goal.Recommendations[0] != "Schedule specific productivity blocks in your calendar" {
				t.Errorf("Productivity recommendations swapped despite progress: %v", goal.Recommendations)
			}
		default:
			// Untouched goals late in the week get the adjustment nudge
			want := []string{
				"Consider adjusting this goal for next week",
				"Schedule specific time blocks for this activity",
			}
			if len(goal.Recommendations) != 2 ||
				goal.Recommendations[0] != want[0] || goal.Recommendations[1] != want[1] {
				t.Errorf("%s recommendations = %v, want %v", goal.Category, goal.Recommendations, want)
			}
		}
	}
}

func TestUpdateProgress_StaticRecommendationsMidweek(t *testing.T) {
	updated := UpdateProgress(Default(), models.CategoryUsage{}, midweek)

	for _, goal := range updated {
		if goal.Recommendations[0] == "Consider adjusting this goal for next week" {
			t.Errorf("%s got adaptive recommendations on a Tuesday", goal.Category)
		}
	}
}

func TestLateInWeek(t *testing.T) {
	tests := []struct {
		day  time.Time
		want bool
	}{
		{time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), false}, // Monday
		{time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC), false}, // Wednesday
		{time.Date(2026, time.September, 3, 0, 0, 0, 0, time.UTC), true},  // Thursday
		{time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC), true},  // Saturday
		{time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC), true},  // Sunday
	}
	for _, tt := range tests {
		if got := lateInWeek(tt.day); got != tt.want {
			t.Errorf("lateInWeek(%s) = %v, want %v", tt.day.Weekday(), got, tt.want)
		}
	}
}
