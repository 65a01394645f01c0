package api

import (
    "sync"
)

// StreamEvent is what subscribers of a tenant's planner stream receive.
type StreamEvent struct {
    Type   string         `json:"type"`
    PlanID string         `json:"planId"`
    Data   map[string]any `json:"data,omitempty"`
}

type Broker struct {
    mu      sync.Mutex
    subs    map[string]map[chan StreamEvent]struct{} // tenantId -> set of channels
}

func NewBroker() *Broker {
    return &Broker{subs: map[string]map[chan StreamEvent]struct{}{}}
}

func (b *Broker) Subscribe(tenantID string) chan StreamEvent {
    ch := make(chan StreamEvent, 16)
    b.mu.Lock()
    if b.subs[tenantID] == nil { b.subs[tenantID] = map[chan StreamEvent]struct{}{} }
    b.subs[tenantID][ch] = struct{}{}
    b.mu.Unlock()
    return ch
}

func (b *Broker) Unsubscribe(tenantID string, ch chan StreamEvent) {
    b.mu.Lock()
    defer b.mu.Unlock()
    m := b.subs[tenantID]
    if _, ok := m[ch]; !ok { return }
    delete(m, ch)
    if len(m) == 0 { delete(b.subs, tenantID) }
    close(ch)
}

// Publish never blocks; slow subscribers miss events.
func (b *Broker) Publish(tenantID string, evt StreamEvent) {
    b.mu.Lock()
    m := b.subs[tenantID]
    for ch := range m {
        select { case ch <- evt: default: }
    }
    b.mu.Unlock()
}
