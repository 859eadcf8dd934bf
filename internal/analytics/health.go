package analytics

// Static service descriptor values reported by ServiceHealth.
const (
	serviceName    = "tendermarket-analytics"
	serviceVersion = "1.2.0"
)

// ServiceHealth reports the service's capabilities and live cache counters.
// It issues no store queries.
func (s *service) ServiceHealth() *ServiceHealthReport {
	return &ServiceHealthReport{
		Service: serviceName,
		Version: serviceVersion,
		Status:  "operational",
		Capabilities: []string{
			metricUsers,
			metricSales,
			metricMarketplace,
			metricPredictive,
			metricTrends,
			metricSellers,
			metricRevenueInsights,
			"unified_dashboard",
		},
		Cache:       s.cache.Stats(),
		GeneratedAt: s.now().UTC(),
	}
}
