package insight

import (
	"strings"
	"testing"

	"screenwell/wellness-agent/internal/category"
	"screenwell/wellness-agent/internal/models"
)

func TestInsights_EmptySession(t *testing.T) {
	if got := Insights(models.CategoryUsage{}, 0); len(got) != 0 {
		t.Errorf("Insights on empty session = %v, want none", got)
	}
}

func TestInsights_LowProductivityWarning(t *testing.T) {
	usage := models.CategoryUsage{
		category.Productivity: 10,
		category.Browsers:     90,
	}
	insights := Insights(usage, 100)

	if !hasInsight(insights, models.InsightWarning, "Low productivity") {
		t.Errorf("insights = %v, want low productivity warning", insights)
	}
}

func TestInsights_LowProductivityBoundary(t *testing.T) {
	// Productivity ratio exactly 1/3 is not below 0.3, so the warning must
	// not fire
	usage := models.CategoryUsage{
		category.Productivity: 30,
		category.Browsers:     60,
	}
	insights := Insights(usage, 90)

	if hasInsight(insights, models.InsightWarning, "Low productivity") {
		t.Errorf("insights = %v, low productivity warning fired at ratio 1/3", insights)
	}
	if hasInsight(insights, models.InsightInfo, "High productivity") {
		t.Errorf("insights = %v, high productivity info fired at ratio 1/3", insights)
	}
}

func TestInsights_HighProductivityInfo(t *testing.T) {
	usage := models.CategoryUsage{category.Productivity: 80}
	insights := Insights(usage, 100)

	if !hasInsight(insights, models.InsightInfo, "High productivity") {
		t.Errorf("insights = %v, want high productivity info", insights)
	}
}

func TestInsights_EntertainmentAndCommunication(t *testing.T) {
	usage := models.CategoryUsage{
		category.Entertainment: 45,
		category.Communication: 35,
		category.Productivity:  20,
	}
	insights := Insights(usage, 100)

	if !hasInsight(insights, models.InsightWarning, "High entertainment") {
		t.Errorf("insights = %v, want entertainment warning", insights)
	}
	if !hasInsight(insights, models.InsightInfo, "batching communication") {
		t.Errorf("insights = %v, want communication info", insights)
	}
}

func TestInsights_HealthTipOverTwoHours(t *testing.T) {
	usage := models.CategoryUsage{category.Productivity: 130}
	insights := Insights(usage, 130)

	if !hasInsight(insights, models.InsightHealth, "20-20-20") {
		t.Errorf("insights = %v, want 20-20-20 health tip", insights)
	}

	// Exactly 120 minutes does not trigger the tip
	usage = models.CategoryUsage{category.Productivity: 120}
	insights = Insights(usage, 120)
	if hasInsight(insights, models.InsightHealth, "20-20-20") {
		t.Errorf("insights = %v, health tip fired at exactly 120 minutes", insights)
	}
}

func hasInsight(insights []models.Insight, insightType, fragment string) bool {
	for _, ins := range insights {
		if ins.Type == insightType && strings.Contains(ins.Message, fragment) {
			return true
		}
	}
	return false
}
