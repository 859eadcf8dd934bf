package analytics

import (
	"net/http"

	"github.com/aurelioguzman/tendermarket-backend/api/validators"
	pkgerrors "github.com/aurelioguzman/tendermarket-backend/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// Query parameter bounds for the analytics surface.
const (
	defaultWindowDays   = 30
	minWindowDays       = 1
	maxWindowDays       = 365
	defaultForecastDays = 30
	minForecastDays     = 1
	maxForecastDays     = 90
)

var validate = validator.New()

// trendParams carries the validated market-trends query.
type trendParams struct {
	Period string `validate:"required,max=8"`
}

// insightParams carries the validated revenue-insights query.
type insightParams struct {
	Period string `validate:"required,oneof=weekly monthly quarterly"`
}

func parseWindowDays(r *http.Request) (int, error) {
	return validators.ParseQueryInt(r, "days", defaultWindowDays, minWindowDays, maxWindowDays)
}

func parseForecastDays(r *http.Request) (int, error) {
	return validators.ParseQueryInt(r, "forecast_days", defaultForecastDays, minForecastDays, maxForecastDays)
}

func parseTrendParams(r *http.Request) (trendParams, error) {
	params := trendParams{Period: validators.ParseQueryString(r, "period", "7d")}
	if err := validate.Struct(params); err != nil {
		return trendParams{}, pkgerrors.New(pkgerrors.CodeValidation, "period must be a short Nd/Nw/Nm/Ny expression").WithDetails(map[string]any{"field": "period"})
	}
	return params, nil
}

func parseInsightParams(r *http.Request) (insightParams, error) {
	params := insightParams{Period: validators.ParseQueryString(r, "period", "monthly")}
	if err := validate.Struct(params); err != nil {
		return insightParams{}, pkgerrors.New(pkgerrors.CodeValidation, "period must be weekly, monthly, or quarterly").WithDetails(map[string]any{"field": "period"})
	}
	return params, nil
}
