package api

import (
    "context"
    "encoding/json"
    "sync"
    "time"

    redis "github.com/redis/go-redis/v9"
    "go.uber.org/zap"
)

type EventBroker interface {
    Subscribe(tenantID string) chan StreamEvent
    Unsubscribe(tenantID string, ch chan StreamEvent)
    Publish(tenantID string, evt StreamEvent)
}

// RedisBroker implements EventBroker over Redis Pub/Sub so that every
// instance sees plans computed by its peers.
type RedisBroker struct {
    rdb *redis.Client
    log *zap.Logger

    mu   sync.Mutex
    subs map[chan StreamEvent]*redis.PubSub
}

func NewRedisBroker(url string, log *zap.Logger) (*RedisBroker, error) {
    opt, err := redis.ParseURL(url)
    if err != nil { return nil, err }
    rdb := redis.NewClient(opt)
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := rdb.Ping(ctx).Err(); err != nil {
        _ = rdb.Close()
        return nil, err
    }
    if log == nil { log = zap.NewNop() }
    return &RedisBroker{rdb: rdb, log: log, subs: map[chan StreamEvent]*redis.PubSub{}}, nil
}

func (b *RedisBroker) Subscribe(tenantID string) chan StreamEvent {
    ch := make(chan StreamEvent, 16)
    ctx := context.Background()
    ps := b.rdb.Subscribe(ctx, chanName(tenantID))
    // initial consume to ensure subscription
    if _, err := ps.Receive(ctx); err != nil {
        b.log.Warn("redis subscribe failed", zap.String("tenant", tenantID), zap.Error(err))
    }
    b.mu.Lock()
    b.subs[ch] = ps
    b.mu.Unlock()
    go func() {
        defer close(ch)
        for msg := range ps.Channel() {
            var evt StreamEvent
            if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
                b.log.Debug("dropping malformed event", zap.Error(err))
                continue
            }
            select { case ch <- evt: default: }
        }
    }()
    return ch
}

// Unsubscribe closes the PubSub; the forwarding goroutine then closes ch.
func (b *RedisBroker) Unsubscribe(tenantID string, ch chan StreamEvent) {
    b.mu.Lock()
    ps, ok := b.subs[ch]
    delete(b.subs, ch)
    b.mu.Unlock()
    if ok { _ = ps.Close() }
}

func (b *RedisBroker) Publish(tenantID string, evt StreamEvent) {
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    data, err := json.Marshal(evt)
    if err != nil { return }
    if err := b.rdb.Publish(ctx, chanName(tenantID), data).Err(); err != nil {
        b.log.Warn("redis publish failed", zap.String("tenant", tenantID), zap.Error(err))
    }
}

func (b *RedisBroker) Close() error { return b.rdb.Close() }

func chanName(tenantID string) string { return "plans:" + tenantID }
