// Package metrics provides Prometheus instrumentation for the API server.
//
// Metrics are opt-in: nothing is collected until InitRegistry is called.
// Collector constructors return nil while metrics are disabled, and every
// collector method is nil-receiver safe, so instrumented code never has to
// check whether metrics are on.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registryMu sync.RWMutex
	registry   *prometheus.Registry
)

// InitRegistry creates the process-wide Prometheus registry with the standard
// Go runtime and process collectors. Calling it more than once is a no-op.
func InitRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()

	if registry != nil {
		return
	}

	registry = prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// IsEnabled reports whether InitRegistry has been called.
func IsEnabled() bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry != nil
}

// Registry returns the process-wide registry, or nil when metrics are
// disabled. Collector constructors accept the nil and return nil collectors.
func Registry() *prometheus.Registry {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry
}

// Handler returns the HTTP handler serving the /metrics endpoint.
// Returns a 404 handler when metrics are disabled.
func Handler() http.Handler {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if registry == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
