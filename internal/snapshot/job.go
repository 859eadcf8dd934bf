package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aurelioguzman/tendermarket-backend/internal/analytics"
	"github.com/aurelioguzman/tendermarket-backend/pkg/logger"
)

// DashboardSnapshotName is the snapshot key suffix for the unified dashboard.
const DashboardSnapshotName = "dashboard"

const defaultSnapshotTTL = 30 * time.Minute

// dashboardSource is the slice of the analytics service the job needs.
type dashboardSource interface {
	UnifiedDashboard(ctx context.Context) (*analytics.DashboardReport, error)
}

// snapshotStore is the redis surface used for publishing snapshots.
type snapshotStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	SnapshotKey(name string) string
}

// JobParams configure the dashboard snapshot job.
type JobParams struct {
	Analytics dashboardSource
	Store     snapshotStore
	Logger    *logger.Logger
	TTL       time.Duration
}

// Job precomputes the unified dashboard and publishes it to redis so the API
// can serve it without touching the database. The TTL keeps a dead worker
// from serving stale numbers indefinitely.
type Job struct {
	analytics dashboardSource
	store     snapshotStore
	logg      *logger.Logger
	ttl       time.Duration
}

// NewJob builds the snapshot job.
func NewJob(params JobParams) (*Job, error) {
	if params.Analytics == nil {
		return nil, fmt.Errorf("analytics service required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	ttl := params.TTL
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}
	return &Job{
		analytics: params.Analytics,
		store:     params.Store,
		logg:      params.Logger,
		ttl:       ttl,
	}, nil
}

// Name implements cron.Job.
func (j *Job) Name() string { return "dashboard-snapshot" }

// Run computes and publishes one snapshot.
func (j *Job) Run(ctx context.Context) error {
	dashboard, err := j.analytics.UnifiedDashboard(ctx)
	if err != nil {
		return fmt.Errorf("computing dashboard: %w", err)
	}

	payload, err := json.Marshal(dashboard)
	if err != nil {
		return fmt.Errorf("marshaling dashboard: %w", err)
	}

	key := j.store.SnapshotKey(DashboardSnapshotName)
	if err := j.store.Set(ctx, key, payload, j.ttl); err != nil {
		return fmt.Errorf("publishing snapshot: %w", err)
	}

	j.logg.Info(j.logg.WithField(ctx, "health_score", dashboard.HealthScore), "dashboard snapshot published")
	return nil
}
