package store

import (
    "context"
    "errors"

    "poiroute/internal/model"
)

// Store persists plan-run audit records. Ordered routes are never stored.
type Store interface {
    SavePlanRun(ctx context.Context, run model.PlanRun) (model.PlanRun, error)
    ListPlanRuns(ctx context.Context, tenantID, cursor string, limit int) (items []model.PlanRun, nextCursor string, err error)
    Ping(ctx context.Context) error
}

var ErrNotFound = errors.New("not found")

const (
    defaultListLimit = 100
    maxListLimit     = 500
)

func clampLimit(limit int) int {
    if limit <= 0 || limit > maxListLimit { return defaultListLimit }
    return limit
}
