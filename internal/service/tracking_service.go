package service

import (
	"context"
	"sync"
	"time"

	"screenwell/wellness-agent/internal/models"
	"screenwell/wellness-agent/internal/report"
	"screenwell/wellness-agent/internal/sampler"

	"go.uber.org/zap"
)

// TrackingService runs sampling sessions on a background goroutine and
// publishes the resulting reports. The sampler blocks for a whole session,
// so the service owns the goroutine that absorbs that wait.
type TrackingService struct {
	sampler    *sampler.Sampler
	builder    *report.Builder
	continuous bool
	logger     *zap.Logger

	latest   *models.Report
	sessions int
	sampling bool
	mu       sync.RWMutex

	cancel   context.CancelFunc
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewTrackingService creates a tracking service. With continuous enabled a
// new session starts as soon as the previous one completes; otherwise a
// single session runs and the service idles.
func NewTrackingService(
	sampler *sampler.Sampler,
	builder *report.Builder,
	continuous bool,
	logger *zap.Logger,
) *TrackingService {
	return &TrackingService{
		sampler:    sampler,
		builder:    builder,
		continuous: continuous,
		logger:     logger,
		stopChan:   make(chan struct{}),
	}
}

// Start launches the session loop
func (ts *TrackingService) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	ts.cancel = cancel

	ts.wg.Add(1)
	go ts.sessionLoop(ctx)

	ts.logger.Info("Tracking service started", zap.Bool("continuous", ts.continuous))
	return nil
}

// Stop cancels the active session and waits for the loop to exit
func (ts *TrackingService) Stop() {
	ts.mu.Lock()
	select {
	case <-ts.stopChan:
		// Already stopped
		ts.mu.Unlock()
		return
	default:
		close(ts.stopChan)
	}
	ts.mu.Unlock()

	if ts.cancel != nil {
		ts.cancel()
	}
	ts.wg.Wait()
	ts.logger.Info("Tracking service stopped")
}

// LatestReport returns the most recent report, if any session has completed
func (ts *TrackingService) LatestReport() (*models.Report, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.latest, ts.latest != nil
}

// Status returns the current tracking status
func (ts *TrackingService) Status() map[string]interface{} {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	status := map[string]interface{}{
		"sampling":           ts.sampling,
		"continuous":         ts.continuous,
		"sessions_completed": ts.sessions,
	}
	if ts.latest != nil {
		status["last_run_id"] = ts.latest.RunID
		status["last_total_minutes"] = ts.latest.TotalMinutes
	}
	return status
}

func (ts *TrackingService) sessionLoop(ctx context.Context) {
	defer ts.wg.Done()

	for {
		select {
		case <-ts.stopChan:
			return
		default:
		}

		ts.runSession(ctx)

		if !ts.continuous {
			return
		}
	}
}

func (ts *TrackingService) runSession(ctx context.Context) {
	startedAt := time.Now()

	ts.mu.Lock()
	ts.sampling = true
	ts.mu.Unlock()

	ticks, err := ts.sampler.Run(ctx)

	ts.mu.Lock()
	ts.sampling = false
	ts.mu.Unlock()

	if err != nil {
		ts.logger.Error("Sampling session failed", zap.Error(err))
		return
	}

	// A cancelled session still yields a valid partial result; report it
	// unless nothing was observed and we are shutting down
	select {
	case <-ts.stopChan:
		if len(ticks) == 0 {
			return
		}
	default:
	}

	rep := ts.builder.Build(ticks, startedAt, time.Now())

	ts.mu.Lock()
	ts.latest = rep
	ts.sessions++
	ts.mu.Unlock()
}
