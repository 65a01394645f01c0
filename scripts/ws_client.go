// Package main runs a demo WebSocket client that watches planner events
// while it submits a plan.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const samplePlan = `{
  "pois": [
    {"name": "Gwangjang Market", "kakaoCode": "FD6", "location": {"lat": 37.5700, "lng": 126.9996}},
    {"name": "Cafe Onion Anguk", "kakaoCode": "CE7", "location": {"lat": 37.5776, "lng": 126.9865}},
    {"name": "Gyeongbokgung", "kakaoCode": "AT4", "location": {"lat": 37.5796, "lng": 126.9770}},
    {"name": "National Folk Museum", "kakaoCode": "CT1", "location": {"lat": 37.5815, "lng": 126.9790}},
    {"name": "Tosokchon", "category": "restaurant", "location": {"lat": 37.5778, "lng": 126.9714}},
    {"name": "Blue Bottle Samcheong", "types": ["cafe"], "location": {"lat": 37.5811, "lng": 126.9812}}
  ],
  "origin": {"lat": 37.5759, "lng": 126.9768}
}`

func main() {
	log, _ := zap.NewDevelopment()
	defer func() { _ = log.Sync() }()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	base := fmt.Sprintf("http://localhost:%s", port)

	// Connect WS first so no event is missed
	u := url.URL{Scheme: "ws", Host: "localhost:" + port, Path: "/v1/plans/events/ws"}
	hdr := http.Header{}
	hdr.Set("X-Tenant-Id", "t_demo")
	c, _, err := websocket.DefaultDialer.Dial(u.String(), hdr)
	if err != nil {
		log.Fatal("dial", zap.Error(err))
	}
	defer func() { _ = c.Close() }()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var m map[string]any
			if err := c.ReadJSON(&m); err != nil {
				log.Info("stream ended", zap.Error(err))
				return
			}
			log.Info("WS <-", zap.Any("event", m))
		}
	}()

	req, _ := http.NewRequest(http.MethodPost, base+"/v1/plans", bytes.NewReader([]byte(samplePlan)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Tenant-Id", "t_demo")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal("plan request", zap.Error(err))
	}
	defer func() { _ = resp.Body.Close() }()
	var plan map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&plan); err != nil {
		log.Fatal("decode plan", zap.Error(err))
	}
	log.Info("plan", zap.Int("status", resp.StatusCode), zap.Any("body", plan))

	// Wait briefly to receive the remaining events
	select {
	case <-time.After(2 * time.Second):
	case <-done:
	}
}
