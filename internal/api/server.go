package api

import (
    "context"
    "net/http"
    "strings"

    "go.uber.org/zap"
    "golang.org/x/time/rate"

    "poiroute/internal/config"
    "poiroute/internal/planner"
    "poiroute/internal/store"
)

type Server struct {
    Store   store.Store
    Broker  EventBroker
    Planner *planner.Planner
    Log     *zap.Logger

    cfg     config.Config
    limiter *rate.Limiter // nil when RATE_RPS is 0
}

// NewServer creates a Server. If no database URL is configured, uses the in-memory store.
func NewServer(cfg config.Config, log *zap.Logger) (*Server, error) {
    if log == nil { log = zap.NewNop() }
    var s store.Store
    if strings.TrimSpace(cfg.DatabaseURL) == "" {
        s = store.NewMemory()
    } else {
        sp, err := store.NewPostgres(cfg.DatabaseURL)
        if err != nil {
            return nil, err
        }
        if cfg.Migrate {
            if err := sp.MigrateDir("db/migrations"); err != nil {
                log.Warn("migrations failed", zap.Error(err))
            }
        }
        s = sp
    }
    // Broker selection
    var broker EventBroker
    if cfg.RedisURL != "" {
        if rb, err := NewRedisBroker(cfg.RedisURL, log); err == nil {
            broker = rb
        } else {
            log.Warn("redis broker unavailable, using in-memory broker", zap.Error(err))
            broker = NewBroker()
        }
    } else {
        broker = NewBroker()
    }
    var lim *rate.Limiter
    if cfg.RateRPS > 0 {
        lim = rate.NewLimiter(rate.Limit(cfg.RateRPS), cfg.RateBurst)
    }
    return &Server{
        Store:   s,
        Broker:  broker,
        Planner: planner.New(cfg.Planner, log.Named("planner")),
        Log:     log,
        cfg:     cfg,
        limiter: lim,
    }, nil
}

func (s *Server) withTenant(r *http.Request) (context.Context, string) {
    // For now, get tenant from header; in production decode from JWT.
    tenant := r.Header.Get("X-Tenant-Id")
    if tenant == "" { tenant = "t_demo" }
    ctx := context.WithValue(r.Context(), ctxKeyTenant{}, tenant)
    return ctx, tenant
}

type ctxKeyTenant struct{}
