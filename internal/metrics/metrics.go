package metrics

import (
    "sync"
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/collectors"
)

var (
    // Registry is the dedicated Prometheus registry for the API
    Registry = prometheus.NewRegistry()
    // HTTPRequests counts requests by method, path, and status
    HTTPRequests = prometheus.NewCounterVec(
        prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
        []string{"method", "path", "status"},
    )
    // HTTPDuration records request durations in seconds
    HTTPDuration = prometheus.NewHistogramVec(
        prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
        []string{"method", "path", "status"},
    )
    // HTTPRateLimited counts requests rejected by the limiter
    HTTPRateLimited = prometheus.NewCounter(
        prometheus.CounterOpts{Name: "http_rate_limited_total", Help: "Requests rejected by the rate limiter."},
    )

    // PlanRequests counts plan outcomes: accepted, relaxed, invalid, error, timeout
    PlanRequests = prometheus.NewCounterVec(
        prometheus.CounterOpts{Name: "plan_requests_total", Help: "Plan requests by outcome."},
        []string{"outcome"},
    )
    // PlanAttempts records how many constructions a plan needed
    PlanAttempts = prometheus.NewHistogram(
        prometheus.HistogramOpts{Name: "plan_attempts", Help: "Tour constructions per plan.", Buckets: []float64{1, 2, 3, 5, 8, 10, 15, 20}},
    )
    // PlanFallbacks counts plans returned without satisfying the category rules
    PlanFallbacks = prometheus.NewCounter(
        prometheus.CounterOpts{Name: "plan_fallbacks_total", Help: "Plans returned after the retry budget was exhausted."},
    )
    // PlanDuration records planning latency in seconds
    PlanDuration = prometheus.NewHistogram(
        prometheus.HistogramOpts{Name: "plan_duration_seconds", Help: "Planning latency in seconds.", Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2}},
    )
    // PlanPOIs records candidate counts per plan
    PlanPOIs = prometheus.NewHistogram(
        prometheus.HistogramOpts{Name: "plan_pois", Help: "Candidate POIs per plan after filtering.", Buckets: []float64{0, 2, 4, 6, 8, 12, 16, 24, 32, 48}},
    )
)

// RegisterDefault registers collectors to the default registry.
func RegisterDefault() {
    regOnce.Do(func(){
        Registry.MustRegister(HTTPRequests)
        Registry.MustRegister(HTTPDuration)
        Registry.MustRegister(HTTPRateLimited)
        Registry.MustRegister(PlanRequests)
        Registry.MustRegister(PlanAttempts)
        Registry.MustRegister(PlanFallbacks)
        Registry.MustRegister(PlanDuration)
        Registry.MustRegister(PlanPOIs)
        // Go/process collectors on our registry
        Registry.MustRegister(collectors.NewGoCollector())
        Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
    })
}

var regOnce sync.Once
