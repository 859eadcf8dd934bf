package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aurelioguzman/tendermarket-backend/internal/analytics"
	pkgerrors "github.com/aurelioguzman/tendermarket-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type fakeSnapshotReader struct {
	dashboard *analytics.DashboardReport
	err       error
}

func (f *fakeSnapshotReader) LatestDashboard(context.Context) (*analytics.DashboardReport, error) {
	return f.dashboard, f.err
}

func TestDashboardSnapshot_ServesStoredDashboard(t *testing.T) {
	reader := &fakeSnapshotReader{dashboard: &analytics.DashboardReport{HealthScore: 4.2}}
	rec := httptest.NewRecorder()

	DashboardSnapshot(reader, testLogger())(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/dashboard/snapshot", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"platform_health_score":4.2`)
}

func TestDashboardSnapshot_NotYetPublished(t *testing.T) {
	reader := &fakeSnapshotReader{err: pkgerrors.New(pkgerrors.CodeNotFound, "no dashboard snapshot available yet")}
	rec := httptest.NewRecorder()

	DashboardSnapshot(reader, testLogger())(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/dashboard/snapshot", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "snapshot")
}
