package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name. It is fed by a
// go-redis hook installed in the cache package.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "quill_redis_errors_total",
	Help: "Total number of Redis errors by command",
}, []string{"command"})

// CacheRequests counts cache-aside lookups by outcome (hit or miss).
var CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "quill_cache_requests_total",
	Help: "Total cache-aside lookups by outcome",
}, []string{"outcome"})

var (
	promOnce     sync.Once
	promInstance *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus HTTP middleware for the given service
// name. It serves the default registry so the domain counters above end up
// on the same /metrics endpoint as the HTTP metrics. The instance is built
// once per process; the default registry rejects double registration.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInstance = fiberprometheus.NewWithRegistry(prometheus.DefaultRegisterer, serviceName, "http", "", nil)
	})
	return promInstance
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
