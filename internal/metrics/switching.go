package metrics

import (
	"screenwell/wellness-agent/internal/category"
	"screenwell/wellness-agent/internal/models"
)

// ContextSwitching walks the usage records pairwise in the order given and
// counts adjacent category changes, tracking productivity-to-entertainment
// transitions separately. Records arrive minutes-sorted from the aggregator,
// so this measures category diversity of the session rather than the true
// chronological switch sequence.
func ContextSwitching(records []models.UsageRecord) models.SwitchAnalysis {
	switches := 0
	prodToEnt := 0

	for i := 0; i+1 < len(records); i++ {
		current := records[i].Category
		next := records[i+1].Category
		if current == next {
			continue
		}
		switches++
		if current == category.Productivity && next == category.Entertainment {
			prodToEnt++
		}
	}

	var recommendations []string
	if switches > 5 {
		recommendations = append(recommendations,
			"🔄 You're switching contexts frequently. Try timeboxing your work.")
	}
	if prodToEnt > 2 {
		recommendations = append(recommendations,
			"⚠️ Productivity interruptions detected. Consider using app blockers during focus time.")
	}
	recommendations = append(recommendations,
		"📱 Group similar tasks together to reduce mental load from switching.")

	return models.SwitchAnalysis{
		Switches:          switches,
		ProdToEntSwitches: prodToEnt,
		ImpactScore:       min(100, switches*10),
		Recommendations:   recommendations,
	}
}
