package sampler

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"screenwell/wellness-agent/internal/category"
	"screenwell/wellness-agent/internal/config"
	"screenwell/wellness-agent/internal/notify"
	"screenwell/wellness-agent/internal/platform"

	"go.uber.org/zap"
)

// ErrAlreadyRunning is returned when Run is called while another run is in
// progress. At most one sampling loop may be active per Sampler.
var ErrAlreadyRunning = errors.New("sampler is already running")

// Options bundle the per-run sampling parameters
type Options struct {
	Duration         time.Duration
	Interval         time.Duration
	CountMode        string
	TrackedApps      []string
	IgnoredApps      []string
	ThresholdSeconds int
	CooldownSeconds  int
	TimeoutSeconds   int
	EveningStartHour int
	EveningEndHour   int
}

// OptionsFromConfig derives sampling options from the agent configuration
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Duration:         time.Duration(cfg.Tracking.SessionDuration) * time.Second,
		Interval:         time.Duration(cfg.Tracking.PollInterval) * time.Second,
		CountMode:        cfg.Tracking.CountMode,
		TrackedApps:      cfg.TrackedApps(),
		IgnoredApps:      cfg.Tracking.IgnoredApps,
		ThresholdSeconds: cfg.Notifications.ThresholdSeconds,
		CooldownSeconds:  cfg.Notifications.CooldownSeconds,
		TimeoutSeconds:   cfg.Notifications.TimeoutSeconds,
		EveningStartHour: cfg.Notifications.EveningStartHour,
		EveningEndHour:   cfg.Notifications.EveningEndHour,
	}
}

// Sampler polls the process table at a fixed cadence and accumulates one
// tick per tracked application sighting. It blocks its caller for the whole
// run; callers that must stay responsive run it on a background goroutine.
type Sampler struct {
	platform platform.Platform
	registry *category.Registry
	notifier notify.Notifier
	opts     Options
	tracked  map[string]struct{}
	ignored  map[string]struct{}
	logger   *zap.Logger
	running  atomic.Bool
	now      func() time.Time
}

// New creates a sampler. The ignore-list wins over the allow-list.
func New(
	platform platform.Platform,
	registry *category.Registry,
	notifier notify.Notifier,
	opts Options,
	logger *zap.Logger,
) *Sampler {
	tracked := make(map[string]struct{}, len(opts.TrackedApps))
	for _, app := range opts.TrackedApps {
		tracked[app] = struct{}{}
	}
	ignored := make(map[string]struct{}, len(opts.IgnoredApps))
	for _, app := range opts.IgnoredApps {
		ignored[app] = struct{}{}
	}

	return &Sampler{
		platform: platform,
		registry: registry,
		notifier: notifier,
		opts:     opts,
		tracked:  tracked,
		ignored:  ignored,
		logger:   logger,
		now:      time.Now,
	}
}

// Run samples the process table until the configured duration elapses or the
// context is cancelled, and returns the per-application tick counts
// accumulated so far. Stop via context is cooperative, checked once per tick.
func (s *Sampler) Run(ctx context.Context) (map[string]int, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrAlreadyRunning
	}
	defer s.running.Store(false)

	// Cooldown state is scoped to this run
	gate := notify.NewCooldownGate(time.Duration(s.opts.CooldownSeconds) * time.Second)

	s.logger.Info("Sampling started",
		zap.Duration("duration", s.opts.Duration),
		zap.Duration("interval", s.opts.Interval),
		zap.String("count_mode", s.opts.CountMode),
		zap.Int("tracked_apps", len(s.tracked)),
	)

	ticks := make(map[string]int)
	deadline := s.now().Add(s.opts.Duration)

	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	for s.now().Before(deadline) {
		s.sampleTick(ticks, gate)

		select {
		case <-ticker.C:
		case <-ctx.Done():
			s.logger.Info("Sampling stopped early", zap.Int("apps_observed", len(ticks)))
			return ticks, nil
		}
	}

	s.logger.Info("Sampling completed", zap.Int("apps_observed", len(ticks)))
	return ticks, nil
}

// sampleTick runs one enumeration pass, incrementing tick counts and firing
// the threshold and evening-window notification side effects.
func (s *Sampler) sampleTick(ticks map[string]int, gate *notify.CooldownGate) {
	processes, err := s.platform.ListProcesses()
	if err != nil {
		// A failed enumeration skips the tick, never aborts the run
		s.logger.Warn("Process enumeration failed", zap.Error(err))
		return
	}

	var seen map[string]struct{}
	if s.opts.CountMode == config.CountModeDistinct {
		seen = make(map[string]struct{})
	}

	for _, proc := range processes {
		if _, ok := s.tracked[proc.Name]; !ok {
			continue
		}
		if _, ok := s.ignored[proc.Name]; ok {
			continue
		}
		if seen != nil {
			if _, dup := seen[proc.Name]; dup {
				continue
			}
			seen[proc.Name] = struct{}{}
		}

		ticks[proc.Name]++

		if s.opts.ThresholdSeconds > 0 && ticks[proc.Name] >= s.opts.ThresholdSeconds {
			s.sendBreakAlert(gate, proc.Name, ticks[proc.Name])
		}
	}

	hour := s.now().Hour()
	if hour >= s.opts.EveningStartHour && hour < s.opts.EveningEndHour {
		s.sendBlueLightAlert()
	}
}

func (s *Sampler) sendBreakAlert(gate *notify.CooldownGate, appName string, seconds int) {
	displayName := s.registry.DisplayName(appName)
	if !gate.Allow(displayName) {
		return
	}

	message := fmt.Sprintf("You've been using %s for %.1f sec.\nTime for a quick break! 🎯", displayName, float64(seconds))
	if err := s.notifier.Notify("⏰ Smart Screen Time Alert", message, s.opts.TimeoutSeconds); err != nil {
		s.logger.Warn("Failed to send break alert",
			zap.String("application", appName),
			zap.Error(err),
		)
	}
}

func (s *Sampler) sendBlueLightAlert() {
	message := "It's evening time! Enable your blue light filter to reduce eye strain and improve sleep quality."
	if err := s.notifier.Notify("🕶️ Blue Light Filter Suggestion", message, s.opts.TimeoutSeconds); err != nil {
		s.logger.Warn("Failed to send blue light alert", zap.Error(err))
	}
}
