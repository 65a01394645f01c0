package main

import (
    "context"
    "errors"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/prometheus/client_golang/prometheus/promhttp"
    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"

    "poiroute/internal/api"
    "poiroute/internal/config"
    "poiroute/internal/metrics"
)

func main() {
    cfg, err := config.Load()
    if err != nil {
        // logger not configured yet
        _, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
        os.Exit(1)
    }
    logger, err := newLogger(cfg.LogLevel)
    if err != nil {
        _, _ = os.Stderr.WriteString("logger: " + err.Error() + "\n")
        os.Exit(1)
    }
    defer func() { _ = logger.Sync() }()

    srvDeps, err := api.NewServer(cfg, logger)
    if err != nil {
        logger.Fatal("failed to init server", zap.Error(err))
    }
    metrics.RegisterDefault()

    mux := http.NewServeMux()

    // Planning
    mux.HandleFunc("/v1/plans", srvDeps.PlanHandler)
    mux.HandleFunc("/v1/plans/runs", srvDeps.PlanRunsHandler)
    mux.HandleFunc("/v1/plans/events/ws", srvDeps.PlanEventsWSHandler)

    // Health
    mux.HandleFunc("/healthz", srvDeps.HealthHandler)
    mux.HandleFunc("/readyz", srvDeps.ReadyHandler)

    // Ops
    mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
    mux.HandleFunc("/debug/info", srvDeps.DebugJSON)

    addr := ":" + cfg.Port
    srv := &http.Server{
        Addr:              addr,
        Handler:           api.LogMiddleware(logger.Named("http"), srvDeps.RateLimit(mux)),
        ReadHeaderTimeout: 5 * time.Second,
    }

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()
    go func() {
        <-ctx.Done()
        shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
        defer cancel()
        _ = srv.Shutdown(shutdownCtx)
    }()

    logger.Info("API listening", zap.String("addr", addr), zap.Int("maxAttempts", srvDeps.Planner.Config().MaxAttempts))
    if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
        logger.Fatal("server error", zap.Error(err))
    }
}

func newLogger(level string) (*zap.Logger, error) {
    lvl, err := zapcore.ParseLevel(level)
    if err != nil { return nil, err }
    zc := zap.NewProductionConfig()
    zc.Level = zap.NewAtomicLevelAt(lvl)
    return zc.Build()
}
