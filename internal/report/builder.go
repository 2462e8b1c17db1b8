// Package report assembles the full analysis output of one tracking session.
package report

import (
	"time"

	"screenwell/wellness-agent/internal/aggregate"
	"screenwell/wellness-agent/internal/config"
	"screenwell/wellness-agent/internal/goals"
	"screenwell/wellness-agent/internal/insight"
	"screenwell/wellness-agent/internal/metrics"
	"screenwell/wellness-agent/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Builder runs the analysis pipeline over raw tick counts: aggregate,
// derive metrics, generate insights and recommendations, and update weekly
// goal progress. Goal state persists across sessions for the lifetime of
// the Builder only.
type Builder struct {
	aggregator *aggregate.Aggregator
	cfg        config.NotificationConfig
	goals      []models.Goal
	logger     *zap.Logger
	now        func() time.Time
}

// NewBuilder creates a report builder
func NewBuilder(aggregator *aggregate.Aggregator, cfg config.NotificationConfig, logger *zap.Logger) *Builder {
	return &Builder{
		aggregator: aggregator,
		cfg:        cfg,
		goals:      goals.Default(),
		logger:     logger,
		now:        time.Now,
	}
}

// Build produces a Report for one completed sampling run
func (b *Builder) Build(ticks map[string]int, startedAt, endedAt time.Time) *models.Report {
	records, usage := b.aggregator.Aggregate(ticks)
	totalMinutes := aggregate.TotalMinutes(records)

	now := b.now()
	b.goals = goals.UpdateProgress(b.goals, usage, now)

	rep := &models.Report{
		RunID:           uuid.NewString(),
		StartedAt:       startedAt,
		EndedAt:         endedAt,
		Records:         records,
		Categories:      usage,
		TotalMinutes:    totalMinutes,
		Ratios:          metrics.Ratios(usage, totalMinutes),
		Wellbeing:       metrics.Wellbeing(usage, totalMinutes, len(records)),
		EyeStrain:       metrics.EyeStrain(totalMinutes),
		EyeCare:         metrics.EyeCare(usage, totalMinutes),
		Switching:       metrics.ContextSwitching(records),
		Insights:        insight.Insights(usage, totalMinutes),
		Recommendations: insight.Recommendations(usage, totalMinutes),
		BlueLight: metrics.BlueLight(
			totalMinutes,
			b.cfg.BlueLightThreshold,
			now.Hour(),
			b.cfg.EveningStartHour,
			b.cfg.EveningEndHour,
		),
		FocusPlan: insight.FocusPlan(records, usage, totalMinutes, now),
		Goals:     b.goals,
	}

	b.logger.Info("Report built",
		zap.String("run_id", rep.RunID),
		zap.Int("applications", len(records)),
		zap.Float64("total_minutes", totalMinutes),
		zap.Int("wellbeing_score", rep.Wellbeing.Score),
	)

	return rep
}
