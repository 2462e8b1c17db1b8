// Package insight applies threshold rules over derived metrics to produce
// the human-readable insight and recommendation lists.
package insight

import (
	"screenwell/wellness-agent/internal/metrics"
	"screenwell/wellness-agent/internal/models"
)

// Insights generates usage-pattern observations from category shares. An
// empty session produces no insights.
func Insights(usage models.CategoryUsage, totalMinutes float64) []models.Insight {
	var insights []models.Insight

	if totalMinutes <= 0 {
		return insights
	}

	ratios := metrics.Ratios(usage, totalMinutes)

	if ratios.Productivity < 0.3 {
		insights = append(insights, models.Insight{
			Type:    models.InsightWarning,
			Message: "🎯 Low productivity detected. Consider using time-blocking techniques.",
		})
	} else if ratios.Productivity > 0.7 {
		insights = append(insights, models.Insight{
			Type:    models.InsightInfo,
			Message: "⚡ High productivity! Remember to take breaks to avoid burnout.",
		})
	}

	if ratios.Entertainment > 0.4 {
		insights = append(insights, models.Insight{
			Type:    models.InsightWarning,
			Message: "⚠️ High entertainment usage. Try setting specific leisure time windows.",
		})
	}

	if ratios.Communication > 0.3 {
		insights = append(insights, models.Insight{
			Type:    models.InsightInfo,
			Message: "💬 Consider batching communication tasks to reduce context switching.",
		})
	}

	if totalMinutes > 120 {
		insights = append(insights, models.Insight{
			Type:    models.InsightHealth,
			Message: "🧘 Practice the 20-20-20 rule: Every 20 minutes, look 20 feet away for 20 seconds.",
		})
	}

	return insights
}
