package api

import (
    "bufio"
    "errors"
    "net"
    "net/http"
    "strconv"
    "time"

    "go.uber.org/zap"

    "poiroute/internal/metrics"
)

// statusRecorder captures the response status. It forwards Hijack so the
// websocket upgrade still works behind the middleware chain.
type statusRecorder struct {
    http.ResponseWriter
    status int
}

func (r *statusRecorder) WriteHeader(code int) {
    r.status = code
    r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
    h, ok := r.ResponseWriter.(http.Hijacker)
    if !ok { return nil, nil, errors.New("response writer does not support hijacking") }
    if r.status == 0 { r.status = http.StatusSwitchingProtocols }
    return h.Hijack()
}

// routeLabel keeps metric label cardinality bounded.
func routeLabel(path string) string {
    switch path {
    case "/v1/plans", "/v1/plans/runs", "/v1/plans/events/ws", "/healthz", "/readyz", "/metrics", "/debug/info":
        return path
    }
    return "other"
}

// LogMiddleware writes one access log line per request and records HTTP metrics.
func LogMiddleware(log *zap.Logger, next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        start := time.Now()
        rec := &statusRecorder{ResponseWriter: w}
        next.ServeHTTP(rec, r)
        if rec.status == 0 { rec.status = http.StatusOK }
        dur := time.Since(start)
        status := strconv.Itoa(rec.status)
        path := routeLabel(r.URL.Path)
        metrics.HTTPRequests.WithLabelValues(r.Method, path, status).Inc()
        metrics.HTTPDuration.WithLabelValues(r.Method, path, status).Observe(dur.Seconds())
        log.Info("http request",
            zap.String("remote", r.RemoteAddr),
            zap.String("method", r.Method),
            zap.String("path", r.URL.Path),
            zap.Int("status", rec.status),
            zap.Duration("duration", dur),
        )
    })
}

// RateLimit rejects requests beyond the configured rate with 429. Probes and
// scrapes are never limited.
func (s *Server) RateLimit(next http.Handler) http.Handler {
    if s.limiter == nil { return next }
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        switch r.URL.Path {
        case "/healthz", "/readyz", "/metrics":
            next.ServeHTTP(w, r)
            return
        }
        if !s.limiter.Allow() {
            metrics.HTTPRateLimited.Inc()
            w.Header().Set("Retry-After", "1")
            writeProblem(w, http.StatusTooManyRequests, "Too Many Requests", "rate limit exceeded", r.URL.Path)
            return
        }
        next.ServeHTTP(w, r)
    })
}
