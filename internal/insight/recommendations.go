package insight

import (
	"screenwell/wellness-agent/internal/category"
	"screenwell/wellness-agent/internal/models"
)

const maxRecommendations = 5

var generalRecommendations = []string{
	"🧘 Practice mindful computing by closing unnecessary applications",
	"💡 Use the built-in blue light filter during evening hours",
	"🎯 Set specific goals for each work session",
	"⚡ Take regular micro-breaks (2 minutes every 30 minutes)",
}

// Recommendations builds the personalized recommendation list: specific
// rules fire first, the fixed general pool is appended after them, and the
// combined list is truncated to the first five entries. The general pool
// guarantees the result is never empty.
func Recommendations(usage models.CategoryUsage, totalMinutes float64) []string {
	var recommendations []string

	// Category rules compare minutes against shares of the total, so an
	// empty session fires none of them
	if prodTime, ok := usage[category.Productivity]; ok {
		if prodTime > totalMinutes*0.7 {
			recommendations = append(recommendations,
				"🎯 Consider implementing regular break intervals using the Pomodoro Technique")
		} else if prodTime < totalMinutes*0.3 {
			recommendations = append(recommendations,
				"💪 Try setting specific focus hours for deep work")
		}
	}

	if entTime, ok := usage[category.Entertainment]; ok && entTime > totalMinutes*0.4 {
		recommendations = append(recommendations,
			"⏰ Use app timers to maintain balanced screen time",
			"🌟 Schedule specific entertainment time slots")
	}

	if commTime, ok := usage[category.Communication]; ok && commTime > totalMinutes*0.3 {
		recommendations = append(recommendations,
			"📧 Set specific times for checking emails and messages",
			"🎯 Use 'Do Not Disturb' mode during focus periods")
	}

	if browserTime, ok := usage[category.Browsers]; ok && browserTime > totalMinutes*0.5 {
		recommendations = append(recommendations,
			"🌐 Use browser extensions to block distracting websites",
			"📚 Try browser tab management techniques")
	}

	recommendations = append(recommendations, generalRecommendations...)

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}
