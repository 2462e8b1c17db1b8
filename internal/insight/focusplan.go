package insight

import (
	"time"

	"screenwell/wellness-agent/internal/category"
	"screenwell/wellness-agent/internal/models"
)

const focusPlanSessions = 4

// FocusPlan generates a four-session focus plan from observed usage.
// Session length scales with demonstrated focus (45/35/25 minutes for more
// than 60/30/0 productive minutes), breaks shrink to 5 minutes when the
// entertainment share is high, and the last break is always 15 minutes.
// Sessions are scheduled back-to-back starting at now.
func FocusPlan(records []models.UsageRecord, usage models.CategoryUsage, totalMinutes float64, now time.Time) []models.FocusSession {
	var productiveApps []string
	for _, record := range records {
		if record.Category == category.Productivity {
			productiveApps = append(productiveApps, record.Application)
		}
	}
	if len(productiveApps) > 3 {
		productiveApps = productiveApps[:3]
	}

	productivityTime := usage.Minutes(category.Productivity)
	var sessionMinutes int
	switch {
	case productivityTime > 60:
		sessionMinutes = 45
	case productivityTime > 30:
		sessionMinutes = 35
	default:
		sessionMinutes = 25
	}

	entertainmentRatio := 0.0
	if totalMinutes > 0 {
		entertainmentRatio = usage.Minutes(category.Entertainment) / totalMinutes
	}
	breakMinutes := 10
	if entertainmentRatio > 0.4 {
		breakMinutes = 5
	}

	plan := make([]models.FocusSession, 0, focusPlanSessions)
	for i := 1; i <= focusPlanSessions; i++ {
		sessionBreak := breakMinutes
		if i == focusPlanSessions {
			sessionBreak = 15
		}
		plan = append(plan, models.FocusSession{
			Session:         i,
			DurationMinutes: sessionMinutes,
			BreakMinutes:    sessionBreak,
			FocusApps:       productiveApps,
			StartTime:       now.Add(time.Duration((sessionMinutes+breakMinutes)*(i-1)) * time.Minute),
		})
	}

	return plan
}
