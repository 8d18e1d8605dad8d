package healthcheck

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"
)

// Checker is a dependency whose reachability decides the health of the service.
type Checker interface {
	Ping(ctx context.Context) error
}

// HealthCheck is the health check handler.
type HealthCheck struct {
	checkers map[string]Checker
	timeout  time.Duration
}

// New creates a HealthCheck pinging every checker within timeout.
func New(timeout time.Duration, checkers map[string]Checker) HealthCheck {
	return HealthCheck{checkers: checkers, timeout: timeout}
}

// Handler is used to control the flow of GET /health endpoint
func (hc HealthCheck) Handler(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if IsHealthCheckRequest(r) {
			hc.ServeHTTP(w, r)

			return
		}

		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

// ServeHTTP answers ok when every checker responds, 503 with the failing names otherwise.
func (hc HealthCheck) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), hc.timeout)
	defer cancel()

	names := make([]string, 0, len(hc.checkers))
	for name := range hc.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	var failing []string
	for _, name := range names {
		if err := hc.checkers[name].Ping(ctx); err != nil {
			failing = append(failing, fmt.Sprintf("%s: %v", name, err))
		}
	}

	if len(failing) > 0 {
		w.WriteHeader(http.StatusServiceUnavailable)
		for _, f := range failing {
			fmt.Fprintln(w, f)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// IsHealthCheckRequest is used to check if the request is a health check request
func IsHealthCheckRequest(r *http.Request) bool {
	return r.Method == http.MethodGet && r.URL.Path == "/health"
}
