package api

import (
    "context"
    "errors"
    "fmt"
    "net/http"
    "time"

    "github.com/google/uuid"
    "go.uber.org/zap"

    "poiroute/internal/metrics"
    "poiroute/internal/model"
    "poiroute/internal/planner"
    "poiroute/internal/store"
)

// perPOIBudget extends the plan timeout for larger candidate sets.
const perPOIBudget = 20 * time.Millisecond

// PlanHandler handles POST /v1/plans
func (s *Server) PlanHandler(w http.ResponseWriter, r *http.Request) {
    if r.Method != http.MethodPost {
        writeProblem(w, http.StatusMethodNotAllowed, "Method Not Allowed", "", r.URL.Path)
        return
    }
    var req model.PlanRequest
    if err := decodeJSON(w, r, &req); err != nil {
        metrics.PlanRequests.WithLabelValues("invalid").Inc()
        writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error(), r.URL.Path)
        return
    }
    ctx, tenant := s.withTenant(r)
    if req.TenantID != "" { tenant = req.TenantID }
    in, err := validatePlanRequest(&req)
    if err != nil {
        metrics.PlanRequests.WithLabelValues("invalid").Inc()
        writeProblem(w, http.StatusBadRequest, "Invalid plan request", err.Error(), r.URL.Path)
        return
    }
    metrics.PlanPOIs.Observe(float64(len(in.pois)))

    planID := uuid.New().String()
    preq := planner.Request{
        POIs:   in.pois,
        Cycle:  req.Cycle,
        Origin: in.origin,
        Start:  in.start,
        End:    in.end,
        Observe: func(e planner.Event) {
            s.Broker.Publish(tenant, StreamEvent{
                Type:   "plan." + string(e.Kind),
                PlanID: planID,
                Data:   map[string]any{"attempt": e.Attempt, "valid": e.Valid, "tour": in.originalTour(e.Tour)},
            })
        },
    }

    ctx, cancel := context.WithTimeout(ctx, s.cfg.PlanTimeout+time.Duration(len(in.pois))*perPOIBudget)
    defer cancel()
    started := time.Now()
    res, err := s.plan(ctx, preq)
    elapsed := time.Since(started)
    metrics.PlanDuration.Observe(elapsed.Seconds())

    var ve *planner.ValidationError
    switch {
    case errors.Is(err, context.DeadlineExceeded):
        metrics.PlanRequests.WithLabelValues("timeout").Inc()
        writeProblem(w, http.StatusServiceUnavailable, "Plan timed out", fmt.Sprintf("no route within %v", elapsed.Round(time.Millisecond)), r.URL.Path)
        return
    case errors.As(err, &ve):
        metrics.PlanRequests.WithLabelValues("invalid").Inc()
        if ve.Index >= 0 { ve.Index = in.originalIndex(ve.Index) }
        writeProblem(w, http.StatusBadRequest, "Invalid plan request", ve.Error(), r.URL.Path)
        return
    case err != nil:
        metrics.PlanRequests.WithLabelValues("error").Inc()
        s.Log.Error("plan failed", zap.String("planId", planID), zap.Error(err))
        writeProblem(w, http.StatusInternalServerError, "Plan failed", err.Error(), r.URL.Path)
        return
    }

    outcome := "accepted"
    if res.Relaxed {
        outcome = "relaxed"
        metrics.PlanFallbacks.Inc()
    }
    metrics.PlanRequests.WithLabelValues(outcome).Inc()
    if res.Attempts > 0 { metrics.PlanAttempts.Observe(float64(res.Attempts)) }

    run := model.PlanRun{
        ID:         planID,
        TenantID:   tenant,
        POICount:   len(in.pois),
        Cycle:      req.Cycle,
        Attempts:   res.Attempts,
        Relaxed:    res.Relaxed,
        DistanceKm: res.DistanceKm,
        DurationMs: int(elapsed.Milliseconds()),
    }
    if _, err := s.Store.SavePlanRun(r.Context(), run); err != nil {
        s.Log.Warn("save plan run failed", zap.String("planId", planID), zap.Error(err))
    }
    s.Log.Info("plan computed",
        zap.String("planId", planID),
        zap.String("tenant", tenant),
        zap.Int("pois", len(in.pois)),
        zap.Int("attempts", res.Attempts),
        zap.Bool("relaxed", res.Relaxed),
        zap.Float64("distanceKm", res.DistanceKm),
        zap.Duration("took", elapsed),
    )
    writeJSON(w, http.StatusOK, model.PlanResponse{
        PlanID:     planID,
        Stops:      res.Stops,
        Tour:       in.originalTour(res.Tour),
        Attempts:   res.Attempts,
        Relaxed:    res.Relaxed,
        DistanceKm: res.DistanceKm,
        Dropped:    len(req.POIs) - len(in.pois),
    })
}

// plan runs the planner, giving up when ctx expires. The planner itself is not
// interruptible; an abandoned run finishes in the background.
func (s *Server) plan(ctx context.Context, req planner.Request) (planner.Result, error) {
    type outcome struct {
        res planner.Result
        err error
    }
    done := make(chan outcome, 1)
    go func() {
        res, err := s.Planner.Plan(req)
        done <- outcome{res, err}
    }()
    select {
    case o := <-done:
        return o.res, o.err
    case <-ctx.Done():
        return planner.Result{}, ctx.Err()
    }
}

// PlanRunsHandler handles GET /v1/plans/runs
func (s *Server) PlanRunsHandler(w http.ResponseWriter, r *http.Request) {
    if r.Method != http.MethodGet {
        writeProblem(w, http.StatusMethodNotAllowed, "Method Not Allowed", "", r.URL.Path)
        return
    }
    ctx, tenant := s.withTenant(r)
    cursor := r.URL.Query().Get("cursor")
    limit := 100
    if v := r.URL.Query().Get("limit"); v != "" { fmt.Sscanf(v, "%d", &limit) }
    items, next, err := s.Store.ListPlanRuns(ctx, tenant, cursor, limit)
    if errors.Is(err, store.ErrNotFound) {
        writeProblem(w, http.StatusBadRequest, "Invalid cursor", cursor, r.URL.Path)
        return
    }
    if err != nil {
        writeProblem(w, http.StatusInternalServerError, "List plan runs failed", err.Error(), r.URL.Path)
        return
    }
    writeJSON(w, http.StatusOK, map[string]any{"items": items, "nextCursor": next})
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
    writeJSON(w, 200, map[string]string{"status": "ok"})
}

func (s *Server) ReadyHandler(w http.ResponseWriter, r *http.Request) {
    ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
    defer cancel()
    if err := s.Store.Ping(ctx); err != nil { writeProblem(w, 503, "Not Ready", err.Error(), r.URL.Path); return }
    writeJSON(w, 200, map[string]string{"status": "ready"})
}
