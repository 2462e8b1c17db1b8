// Package metrics derives wellbeing indicators from aggregated usage data.
// Every function is pure over its inputs so each is independently testable.
package metrics

import (
	"screenwell/wellness-agent/internal/category"
	"screenwell/wellness-agent/internal/models"
)

// Ratios computes per-category shares of total session time. When no time
// was recorded all ratios are zero; there is no division fault.
// Entertainment folds in the legacy "Social Media" category, absent keys
// count as zero.
func Ratios(usage models.CategoryUsage, totalMinutes float64) models.Ratios {
	if totalMinutes <= 0 {
		return models.Ratios{}
	}

	return models.Ratios{
		Productivity:  usage.Minutes(category.Productivity) / totalMinutes,
		Entertainment: (usage.Minutes(category.Entertainment) + usage.Minutes(category.SocialMedia)) / totalMinutes,
		Communication: usage.Minutes(category.Communication) / totalMinutes,
	}
}
