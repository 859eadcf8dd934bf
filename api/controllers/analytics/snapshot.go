package analytics

import (
	"context"
	"net/http"

	"github.com/aurelioguzman/tendermarket-backend/api/responses"
	"github.com/aurelioguzman/tendermarket-backend/internal/analytics"
	"github.com/aurelioguzman/tendermarket-backend/pkg/logger"
)

// SnapshotReader serves the last dashboard snapshot a worker published.
type SnapshotReader interface {
	LatestDashboard(ctx context.Context) (*analytics.DashboardReport, error)
}

// DashboardSnapshot serves GET /api/v1/analytics/dashboard/snapshot.
func DashboardSnapshot(reader SnapshotReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		dashboard, err := reader.LatestDashboard(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dashboard)
	}
}
