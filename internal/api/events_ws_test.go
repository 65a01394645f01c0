package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPlanEventsStream(t *testing.T) {
	s := newTestServer(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/plans", s.PlanHandler)
	mux.HandleFunc("/v1/plans/events/ws", s.PlanEventsWSHandler)
	ts := httptest.NewServer(LogMiddleware(zap.NewNop(), mux))
	defer ts.Close()

	hdr := http.Header{}
	hdr.Set("X-Tenant-Id", "t_ws")
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/v1/plans/events/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, hdr)
	require.NoError(t, err)
	defer conn.Close()

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/v1/plans", strings.NewReader(trianglePlan))
	require.NoError(t, err)
	req.Header.Set("X-Tenant-Id", "t_ws")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var kinds []string
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for len(kinds) < 2 {
		var evt StreamEvent
		require.NoError(t, conn.ReadJSON(&evt))
		assert.NotEmpty(t, evt.PlanID)
		kinds = append(kinds, evt.Type)
	}
	assert.Equal(t, []string{"plan.attempt", "plan.accepted"}, kinds)
}
