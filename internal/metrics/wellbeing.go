package metrics

import (
	"fmt"

	"screenwell/wellness-agent/internal/models"
)

// Wellbeing computes the synthetic 0-100 wellbeing score. Deductions apply
// independently and additively:
//   - entertainment ratio above 0.5 deducts up to 30,
//   - productivity ratio above 0.8 (no breaks) deducts up to 20,
//   - more than 10 distinct applications deducts 2 per extra app up to 15.
//
// The score is deliberately not floored at zero.
func Wellbeing(usage models.CategoryUsage, totalMinutes float64, appCount int) models.WellbeingScore {
	score := 100
	var deductions []string

	ratios := Ratios(usage, totalMinutes)

	if ratios.Entertainment > 0.5 {
		score -= min(30, int(ratios.Entertainment*60))
		deductions = append(deductions,
			fmt.Sprintf("High entertainment usage (%d%% of time)", int(ratios.Entertainment*100)))
	}

	if ratios.Productivity > 0.8 {
		score -= min(20, int((ratios.Productivity-0.7)*100))
		deductions = append(deductions, "Excessive work focus without breaks")
	}

	if appCount > 10 {
		score -= min(15, (appCount-10)*2)
		deductions = append(deductions,
			fmt.Sprintf("Frequent application switching (%d apps)", appCount))
	}

	tier, color := scoreTier(score)

	return models.WellbeingScore{
		Score:      score,
		Category:   tier,
		Color:      color,
		Deductions: deductions,
	}
}

func scoreTier(score int) (string, string) {
	switch {
	case score >= 80:
		return "Excellent", "green"
	case score >= 60:
		return "Good", "blue"
	case score >= 40:
		return "Fair", "orange"
	default:
		return "Needs Improvement", "red"
	}
}
