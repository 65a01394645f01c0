package store

import (
    "context"
    "sync"
    "time"

    "github.com/google/uuid"
    "poiroute/internal/model"
)

// Memory is a simple in-memory store used when no DATABASE_URL is set.
type Memory struct {
    mu    sync.Mutex
    runs  map[string]model.PlanRun // id -> run
    byTen map[string][]string      // tenant -> run ids, oldest first
}

func NewMemory() *Memory {
    return &Memory{
        runs:  map[string]model.PlanRun{},
        byTen: map[string][]string{},
    }
}

func (m *Memory) SavePlanRun(ctx context.Context, run model.PlanRun) (model.PlanRun, error) {
    m.mu.Lock(); defer m.mu.Unlock()
    if run.ID == "" { run.ID = uuid.New().String() }
    if run.CreatedAt == "" { run.CreatedAt = time.Now().UTC().Format(time.RFC3339) }
    if _, exists := m.runs[run.ID]; !exists {
        m.byTen[run.TenantID] = append(m.byTen[run.TenantID], run.ID)
    }
    m.runs[run.ID] = run
    return run, nil
}

// ListPlanRuns pages through a tenant's runs in insertion order. The cursor is
// the id of the last run on the previous page.
func (m *Memory) ListPlanRuns(ctx context.Context, tenantID, cursor string, limit int) ([]model.PlanRun, string, error) {
    m.mu.Lock(); defer m.mu.Unlock()
    limit = clampLimit(limit)
    ids := m.byTen[tenantID]
    start := 0
    if cursor != "" {
        found := false
        for i, id := range ids {
            if id == cursor { start = i + 1; found = true; break }
        }
        if !found { return nil, "", ErrNotFound }
    }
    out := []model.PlanRun{}
    var next string
    for i := start; i < len(ids) && len(out) < limit; i++ {
        out = append(out, m.runs[ids[i]])
        next = ids[i]
    }
    if start+len(out) >= len(ids) { next = "" }
    return out, next, nil
}

func (m *Memory) Ping(ctx context.Context) error { return nil }
