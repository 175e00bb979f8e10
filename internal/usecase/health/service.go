package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
	// CheckFallback indicates a component running in its fallback mode.
	CheckFallback CheckResult = "fallback"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	catalog CatalogInspector
	cache   CachePinger
}

// New creates a Service. cache can be nil.
func New(catalog CatalogInspector, cache CachePinger) *Service {
	return &Service{catalog: catalog, cache: cache}
}

// Check runs health checks against all components.
// An empty catalog is unhealthy; a missing index or cache only degrades.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.catalog.Size() == 0 {
		checks["catalog"] = CheckError
	} else {
		checks["catalog"] = CheckOK
	}

	if s.catalog.Ranking() {
		checks["similarity"] = CheckOK
	} else {
		checks["similarity"] = CheckFallback
	}

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			checks["cache"] = CheckError
		} else {
			checks["cache"] = CheckOK
		}
	}

	status := Healthy
	if checks["catalog"] == CheckError {
		status = Unhealthy
	} else {
		for _, v := range checks {
			if v != CheckOK {
				status = Degraded
				break
			}
		}
	}

	return Report{Status: status, Checks: checks}
}
