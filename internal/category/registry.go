package category

import (
	"strings"

	"screenwell/wellness-agent/internal/config"
)

// Well-known category names. The legacy "Social Media" name does not appear
// in the stock table but older data may still carry it, so the metrics layer
// folds it into entertainment.
const (
	Productivity  = "Productivity"
	Communication = "Communication"
	Browsers      = "Browsers"
	Entertainment = "Entertainment"
	Creative      = "Creative"
	SocialMedia   = "Social Media"
	Other         = "Other"
)

const (
	fallbackEmoji = "📱"
	fallbackColor = "#95a5a6"
)

// Registry classifies application identifiers into categories and resolves
// display metadata. It is immutable after construction.
type Registry struct {
	categories   []config.CategoryDefinition
	displayNames map[string]string
}

// NewRegistry builds a registry from an ordered category table and a
// display-name table. Category order is significant: the first match wins.
func NewRegistry(categories []config.CategoryDefinition, displayNames map[string]string) *Registry {
	return &Registry{
		categories:   categories,
		displayNames: displayNames,
	}
}

// Categorize returns the category for an application identifier. Matching is
// a case-insensitive substring test against each category's member list in
// declaration order; unmatched identifiers fall back to Other.
func (r *Registry) Categorize(appID string) string {
	appLower := strings.ToLower(appID)
	for _, def := range r.categories {
		for _, member := range def.Apps {
			if strings.Contains(appLower, strings.ToLower(member)) {
				return def.Name
			}
		}
	}
	return Other
}

// DisplayName returns the friendly label for an application, or the
// identifier unchanged when no label is configured.
func (r *Registry) DisplayName(appID string) string {
	if name, ok := r.displayNames[appID]; ok {
		return name
	}
	return appID
}

// Emoji returns the display emoji for a category
func (r *Registry) Emoji(category string) string {
	for _, def := range r.categories {
		if def.Name == category {
			return def.Emoji
		}
	}
	return fallbackEmoji
}

// Color returns the display color for a category
func (r *Registry) Color(category string) string {
	for _, def := range r.categories {
		if def.Name == category {
			return def.Color
		}
	}
	return fallbackColor
}
