package report

import (
	"testing"
	"time"

	"screenwell/wellness-agent/internal/aggregate"
	"screenwell/wellness-agent/internal/category"
	"screenwell/wellness-agent/internal/config"
	"screenwell/wellness-agent/internal/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBuilder(t *testing.T, hour int) *Builder {
	t.Helper()

	registry := category.NewRegistry(config.DefaultCategories(), config.DefaultDisplayNames())
	b := NewBuilder(aggregate.New(registry), config.DefaultConfig().Notifications, zap.NewNop())
	b.now = func() time.Time {
		return time.Date(2026, time.September, 1, hour, 0, 0, 0, time.UTC)
	}
	return b
}

func TestBuild_FullPipeline(t *testing.T) {
	b := newTestBuilder(t, 10)

	started := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	ended := started.Add(time.Hour)
	ticks := map[string]int{
		"chrome.exe": 3600,
		"code.exe":   1800,
	}

	rep := b.Build(ticks, started, ended)

	require.NotEmpty(t, rep.RunID)
	require.Equal(t, started, rep.StartedAt)
	require.Equal(t, ended, rep.EndedAt)

	require.Len(t, rep.Records, 2)
	require.Equal(t, "chrome.exe", rep.Records[0].Application)
	require.Equal(t, "🌐 Google Chrome", rep.Records[0].DisplayName)
	require.Equal(t, category.Browsers, rep.Records[0].Category)
	require.Equal(t, 60.0, rep.Records[0].Minutes)
	require.Equal(t, "code.exe", rep.Records[1].Application)
	require.Equal(t, category.Productivity, rep.Records[1].Category)
	require.Equal(t, 30.0, rep.Records[1].Minutes)

	require.Equal(t, 90.0, rep.TotalMinutes)
	require.InDelta(t, 1.0/3.0, rep.Ratios.Productivity, 1e-12)
	require.Zero(t, rep.Ratios.Entertainment)

	// Two apps, no entertainment, productivity within bounds
	require.Equal(t, 100, rep.Wellbeing.Score)
	require.Equal(t, "Excellent", rep.Wellbeing.Category)
	require.Empty(t, rep.Wellbeing.Deductions)

	// 90 minutes of screen time is high strain territory
	require.Equal(t, models.RiskHigh, rep.EyeStrain.Risk)
	require.Equal(t, 5.0, rep.EyeStrain.NextBreakMinutes)

	// Exactly 90 minutes stays on the stock 20-20-20 routine, and the
	// productivity usage earns the reading reminder
	require.Equal(t, 20, rep.EyeCare.Base.IntervalMinutes)
	require.Equal(t, 20, rep.EyeCare.Base.DurationSeconds)
	require.Len(t, rep.EyeCare.Exercises, 3)
	require.Contains(t, rep.EyeCare.Reminders, "Increase font size for reading to reduce eye strain")

	// Browsers then Productivity in descending usage order is one switch
	require.Equal(t, 1, rep.Switching.Switches)
	require.Equal(t, 0, rep.Switching.ProdToEntSwitches)
	require.Equal(t, 10, rep.Switching.ImpactScore)

	// Productivity share sits at exactly one third, above the low-focus line
	for _, in := range rep.Insights {
		require.NotContains(t, in.Message, "Low productivity")
	}

	require.NotEmpty(t, rep.Recommendations)
	require.LessOrEqual(t, len(rep.Recommendations), 5)

	// Morning build over the threshold gets the usage tip but not the evening one
	require.Len(t, rep.BlueLight, 1)
	require.Contains(t, rep.BlueLight[0], "Prolonged screen usage")

	require.Len(t, rep.FocusPlan, 4)
	require.Equal(t, []string{"code.exe"}, rep.FocusPlan[0].FocusApps)

	require.Len(t, rep.Goals, 3)
}

func TestBuild_GoalProgressAccumulatesAcrossSessions(t *testing.T) {
	b := newTestBuilder(t, 10)
	started := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)

	// 2 productive hours per session against the 20 hour weekly target
	ticks := map[string]int{"code.exe": 7200}

	first := b.Build(ticks, started, started.Add(2*time.Hour))
	second := b.Build(ticks, started.Add(2*time.Hour), started.Add(4*time.Hour))

	var firstProd, secondProd models.Goal
	for _, g := range first.Goals {
		if g.Category == category.Productivity {
			firstProd = g
		}
	}
	for _, g := range second.Goals {
		if g.Category == category.Productivity {
			secondProd = g
		}
	}

	require.Equal(t, 2.0, firstProd.CurrentHours)
	require.Equal(t, 10, firstProd.Progress)
	require.Equal(t, models.GoalInProgress, firstProd.Status)

	require.Equal(t, 4.0, secondProd.CurrentHours)
	require.Equal(t, 20, secondProd.Progress)
}

func TestBuild_EmptySession(t *testing.T) {
	b := newTestBuilder(t, 10)
	now := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)

	rep := b.Build(map[string]int{}, now, now)

	require.NotEmpty(t, rep.RunID)
	require.Empty(t, rep.Records)
	require.Zero(t, rep.TotalMinutes)
	require.Equal(t, 100, rep.Wellbeing.Score)
	require.Equal(t, models.RiskLow, rep.EyeStrain.Risk)
	// Light sessions relax the eye break interval
	require.Equal(t, 30, rep.EyeCare.Base.IntervalMinutes)
	require.Empty(t, rep.BlueLight)
	require.Len(t, rep.Goals, 3)
}

func TestBuild_DistinctRunIDs(t *testing.T) {
	b := newTestBuilder(t, 10)
	now := time.Now()

	first := b.Build(map[string]int{"code.exe": 60}, now, now)
	second := b.Build(map[string]int{"code.exe": 60}, now, now)

	require.NotEqual(t, first.RunID, second.RunID)
}
