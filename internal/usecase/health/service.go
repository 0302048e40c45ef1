package health

import (
	"context"
	"time"
)

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
)

// DefaultTimeout bounds a single component check.
const DefaultTimeout = 2 * time.Second

// Report aggregates health check results.
type Report struct {
	Status Status
	Driver string
	Checks map[string]CheckResult
}

type namedCheck struct {
	name string
	p    Pinger
}

// Service coordinates health checks.
type Service struct {
	driver  string
	checks  []namedCheck
	timeout time.Duration
}

// New creates a Service probing the record store behind driver.
func New(db Pinger, driver string) *Service {
	return &Service{
		driver:  driver,
		checks:  []namedCheck{{name: "database", p: db}},
		timeout: DefaultTimeout,
	}
}

// WithCheck adds a named component check.
func (s *Service) WithCheck(name string, p Pinger) *Service {
	s.checks = append(s.checks, namedCheck{name: name, p: p})
	return s
}

// Check pings every component, each under its own timeout.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, len(s.checks))
	failed := 0

	for _, c := range s.checks {
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		err := c.p.Ping(cctx)
		cancel()

		if err != nil {
			checks[c.name] = CheckError
			failed++
			continue
		}
		checks[c.name] = CheckOK
	}

	status := Healthy
	switch {
	case failed == len(s.checks):
		status = Unhealthy
	case failed > 0:
		status = Degraded
	}

	return Report{Status: status, Driver: s.driver, Checks: checks}
}
