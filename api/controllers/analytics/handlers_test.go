package analytics

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aurelioguzman/tendermarket-backend/internal/analytics"
	"github.com/aurelioguzman/tendermarket-backend/pkg/enums"
	pkgerrors "github.com/aurelioguzman/tendermarket-backend/pkg/errors"
	"github.com/aurelioguzman/tendermarket-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService records the arguments handlers forward and returns canned
// reports.
type fakeService struct {
	lastDays         int
	lastForecastDays int
	lastPeriod       string
	lastInsight      enums.InsightPeriod
	lastSellerID     *uuid.UUID
	err              error
}

var _ analytics.Service = (*fakeService)(nil)

func (f *fakeService) UserAnalytics(_ context.Context, days int) (*analytics.UserAnalyticsReport, error) {
	f.lastDays = days
	if f.err != nil {
		return nil, f.err
	}
	return &analytics.UserAnalyticsReport{WindowDays: days}, nil
}

func (f *fakeService) SalesAnalytics(_ context.Context, days int) (*analytics.SalesAnalyticsReport, error) {
	f.lastDays = days
	if f.err != nil {
		return nil, f.err
	}
	return &analytics.SalesAnalyticsReport{WindowDays: days}, nil
}

func (f *fakeService) MarketplaceAnalytics(_ context.Context, days int) (*analytics.MarketplaceAnalyticsReport, error) {
	f.lastDays = days
	if f.err != nil {
		return nil, f.err
	}
	return &analytics.MarketplaceAnalyticsReport{WindowDays: days}, nil
}

func (f *fakeService) PredictiveAnalytics(_ context.Context, forecastDays int) (*analytics.PredictiveReport, error) {
	f.lastForecastDays = forecastDays
	if f.err != nil {
		return nil, f.err
	}
	return &analytics.PredictiveReport{ForecastDays: forecastDays}, nil
}

func (f *fakeService) MarketTrends(_ context.Context, period string) ([]analytics.MarketTrend, error) {
	f.lastPeriod = period
	if f.err != nil {
		return nil, f.err
	}
	return []analytics.MarketTrend{{Category: "electronics", TrendDirection: enums.TrendDirectionUp}}, nil
}

func (f *fakeService) SellerPerformance(_ context.Context, sellerID *uuid.UUID) ([]analytics.SellerPerformance, error) {
	f.lastSellerID = sellerID
	if f.err != nil {
		return nil, f.err
	}
	return []analytics.SellerPerformance{}, nil
}

func (f *fakeService) RevenueInsights(_ context.Context, period enums.InsightPeriod) ([]analytics.RevenueInsight, error) {
	f.lastInsight = period
	if f.err != nil {
		return nil, f.err
	}
	return []analytics.RevenueInsight{}, nil
}

func (f *fakeService) UnifiedDashboard(_ context.Context) (*analytics.DashboardReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &analytics.DashboardReport{HealthScore: 7.5}, nil
}

func (f *fakeService) ServiceHealth() *analytics.ServiceHealthReport {
	return &analytics.ServiceHealthReport{Status: "operational"}
}

func (f *fakeService) Close() {}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "analytics-test", Output: io.Discard})
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestUserAnalytics_DefaultsWindow(t *testing.T) {
	service := &fakeService{}
	rec := httptest.NewRecorder()

	UserAnalytics(service, testLogger())(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/users", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultWindowDays, service.lastDays)
}

func TestUserAnalytics_ForwardsDays(t *testing.T) {
	service := &fakeService{}
	rec := httptest.NewRecorder()

	UserAnalytics(service, testLogger())(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/users?days=90", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 90, service.lastDays)
}

func TestUserAnalytics_RejectsOutOfRangeDays(t *testing.T) {
	service := &fakeService{}
	rec := httptest.NewRecorder()

	UserAnalytics(service, testLogger())(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/users?days=900", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, service.lastDays, "service must not be called on invalid input")
}

func TestSalesAnalytics_ServiceError(t *testing.T) {
	service := &fakeService{err: pkgerrors.New(pkgerrors.CodeDependency, "database unavailable")}
	rec := httptest.NewRecorder()

	SalesAnalytics(service, testLogger())(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/sales", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPredictiveAnalytics_BoundsForecastDays(t *testing.T) {
	service := &fakeService{}

	rec := httptest.NewRecorder()
	PredictiveAnalytics(service, testLogger())(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/predictive?forecast_days=14", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 14, service.lastForecastDays)

	rec = httptest.NewRecorder()
	PredictiveAnalytics(service, testLogger())(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/predictive?forecast_days=91", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarketTrends_PassesPeriodThrough(t *testing.T) {
	service := &fakeService{}
	rec := httptest.NewRecorder()

	MarketTrends(service, testLogger())(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/trends?period=12w", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "12w", service.lastPeriod)
}

func TestMarketTrends_DefaultPeriod(t *testing.T) {
	service := &fakeService{}
	rec := httptest.NewRecorder()

	MarketTrends(service, testLogger())(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/trends", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7d", service.lastPeriod)
}

func TestMarketTrends_RejectsOversizedPeriod(t *testing.T) {
	service := &fakeService{}
	rec := httptest.NewRecorder()

	MarketTrends(service, testLogger())(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/trends?period=aaaaaaaaaaaaaaaa", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, service.lastPeriod)
}

func TestSellerPerformance_OptionalSellerID(t *testing.T) {
	service := &fakeService{}
	rec := httptest.NewRecorder()

	SellerPerformance(service, testLogger())(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/sellers", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, service.lastSellerID)

	sellerID := uuid.New()
	rec = httptest.NewRecorder()
	SellerPerformance(service, testLogger())(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/sellers?seller_id="+sellerID.String(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, service.lastSellerID)
	assert.Equal(t, sellerID, *service.lastSellerID)
}

func TestSellerPerformance_RejectsMalformedID(t *testing.T) {
	service := &fakeService{}
	rec := httptest.NewRecorder()

	SellerPerformance(service, testLogger())(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/sellers?seller_id=not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRevenueInsights_ValidatesPeriod(t *testing.T) {
	service := &fakeService{}

	rec := httptest.NewRecorder()
	RevenueInsights(service, testLogger())(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/revenue-insights?period=weekly", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, enums.InsightPeriodWeekly, service.lastInsight)

	rec = httptest.NewRecorder()
	RevenueInsights(service, testLogger())(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/revenue-insights?period=hourly", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRevenueInsights_DefaultsMonthly(t *testing.T) {
	service := &fakeService{}
	rec := httptest.NewRecorder()

	RevenueInsights(service, testLogger())(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/revenue-insights", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, enums.InsightPeriodMonthly, service.lastInsight)
}

func TestUnifiedDashboard_ReturnsComposite(t *testing.T) {
	service := &fakeService{}
	rec := httptest.NewRecorder()

	UnifiedDashboard(service, testLogger())(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Contains(t, string(envelope["data"]), `"platform_health_score":7.5`)
}

func TestServiceHealth_ReportsDescriptor(t *testing.T) {
	rec := httptest.NewRecorder()

	ServiceHealth(&fakeService{})(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"operational"`)
}
