package aggregate

import (
	"sort"

	"screenwell/wellness-agent/internal/category"
	"screenwell/wellness-agent/internal/models"
)

// Aggregator turns raw per-application tick counts into categorized usage
// records and per-category minute sums.
type Aggregator struct {
	registry *category.Registry
}

// New creates an aggregator backed by the given registry
func New(registry *category.Registry) *Aggregator {
	return &Aggregator{registry: registry}
}

// Aggregate builds one UsageRecord per application, sorted by minutes
// descending with ties broken by application identifier ascending, plus the
// per-category minute sums. Minutes is seconds/60 exactly, no rounding, so
// the sum of record minutes equals the sum of ticks divided by 60.
func (a *Aggregator) Aggregate(ticks map[string]int) ([]models.UsageRecord, models.CategoryUsage) {
	records := make([]models.UsageRecord, 0, len(ticks))
	usage := make(models.CategoryUsage)

	for app, seconds := range ticks {
		record := models.UsageRecord{
			Application: app,
			DisplayName: a.registry.DisplayName(app),
			Seconds:     seconds,
			Minutes:     float64(seconds) / 60.0,
			Category:    a.registry.Categorize(app),
		}
		records = append(records, record)
		usage[record.Category] += record.Minutes
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Minutes != records[j].Minutes {
			return records[i].Minutes > records[j].Minutes
		}
		return records[i].Application < records[j].Application
	})

	return records, usage
}

// TotalMinutes sums the minutes across all records
func TotalMinutes(records []models.UsageRecord) float64 {
	var total float64
	for _, record := range records {
		total += record.Minutes
	}
	return total
}
