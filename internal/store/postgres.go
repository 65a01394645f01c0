package store

import (
    "context"
    "database/sql"
    "fmt"
    "os"
    "path/filepath"
    "sort"
    "time"

    "github.com/google/uuid"
    _ "github.com/jackc/pgx/v5/stdlib"

    "poiroute/internal/model"
)

type Postgres struct {
    db *sql.DB
}

func NewPostgres(dsn string) (*Postgres, error) {
    db, err := sql.Open("pgx", dsn)
    if err != nil {
        return nil, err
    }
    if err := db.Ping(); err != nil {
        return nil, err
    }
    return &Postgres{db: db}, nil
}

func (p *Postgres) Ping(ctx context.Context) error { return p.db.PingContext(ctx) }

func (p *Postgres) Close() error { return p.db.Close() }

// MigrateDir applies every .sql file in dir in lexical order. Migrations are
// written to be idempotent.
func (p *Postgres) MigrateDir(dir string) error {
    files, err := migrationFiles(dir)
    if err != nil { return err }
    for _, f := range files {
        body, err := os.ReadFile(f)
        if err != nil { return fmt.Errorf("read migration %s: %w", f, err) }
        if _, err := p.db.Exec(string(body)); err != nil {
            return fmt.Errorf("apply migration %s: %w", filepath.Base(f), err)
        }
    }
    return nil
}

func migrationFiles(dir string) ([]string, error) {
    files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
    if err != nil { return nil, err }
    sort.Strings(files)
    return files, nil
}

func (p *Postgres) SavePlanRun(ctx context.Context, run model.PlanRun) (model.PlanRun, error) {
    if run.ID == "" { run.ID = uuid.New().String() }
    var created time.Time
    err := p.db.QueryRowContext(ctx, `INSERT INTO plan_runs (id, tenant_id, poi_count, cycle, attempts, relaxed, distance_km, duration_ms)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING created_at`, run.ID, run.TenantID, run.POICount, run.Cycle, run.Attempts, run.Relaxed, run.DistanceKm, run.DurationMs).Scan(&created)
    if err != nil { return model.PlanRun{}, err }
    run.CreatedAt = created.UTC().Format(time.RFC3339)
    return run, nil
}

func (p *Postgres) ListPlanRuns(ctx context.Context, tenantID, cursor string, limit int) ([]model.PlanRun, string, error) {
    limit = clampLimit(limit)
    var rows *sql.Rows
    var err error
    if cursor != "" {
        rows, err = p.db.QueryContext(ctx, `SELECT id::text, poi_count, cycle, attempts, relaxed, distance_km, duration_ms, created_at
            FROM plan_runs WHERE tenant_id=$1 AND (created_at, id) > (SELECT created_at, id FROM plan_runs WHERE id::text=$2)
            ORDER BY created_at, id LIMIT $3`, tenantID, cursor, limit)
    } else {
        rows, err = p.db.QueryContext(ctx, `SELECT id::text, poi_count, cycle, attempts, relaxed, distance_km, duration_ms, created_at
            FROM plan_runs WHERE tenant_id=$1 ORDER BY created_at, id LIMIT $2`, tenantID, limit)
    }
    if err != nil { return nil, "", err }
    defer rows.Close()
    out := []model.PlanRun{}
    var last string
    for rows.Next() {
        var r model.PlanRun
        var created time.Time
        if err := rows.Scan(&r.ID, &r.POICount, &r.Cycle, &r.Attempts, &r.Relaxed, &r.DistanceKm, &r.DurationMs, &created); err != nil { return nil, "", err }
        r.TenantID = tenantID
        r.CreatedAt = created.UTC().Format(time.RFC3339)
        out = append(out, r)
        last = r.ID
    }
    if err := rows.Err(); err != nil { return nil, "", err }
    next := ""
    if len(out) == limit { next = last }
    return out, next, nil
}
