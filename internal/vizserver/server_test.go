package vizserver

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lao-tseu-is-alive/go-flock3d/pb"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tochemey/goakt/v3/actor"
	"google.golang.org/protobuf/encoding/protojson"
)

func newTestServer(t *testing.T, opts ...Option) (*Server, *httptest.Server, *simulation.Engine) {
	t.Helper()
	cfg := simulation.DefaultConfig()
	cfg.NumAgents = 20
	cfg.Obstacles = nil
	ctx := context.Background()
	engine, err := simulation.Start(ctx, cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = engine.Stop(ctx) })

	s := NewServer(engine, 0, opts...)
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return s, ts, engine
}

func TestServer_Health(t *testing.T) {
	var access bytes.Buffer
	_, ts, _ := newTestServer(t, WithAccessLog(&access))

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
	assert.Contains(t, access.String(), "GET /healthz")
}

func TestServer_Snapshot(t *testing.T) {
	_, ts, engine := newTestServer(t)
	require.NoError(t, actor.Tell(context.Background(), engine.Flock, &pb.Tick{Steps: 2}))

	resp, err := http.Get(ts.URL + "/snapshot")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	snap := &pb.WorldSnapshot{}
	require.NoError(t, protojson.Unmarshal(body, snap))
	assert.Equal(t, uint64(2), snap.GetFrame())
	assert.Len(t, snap.GetAgents(), 20)
}

func TestServer_TuningAndRespawn(t *testing.T) {
	_, ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/tuning", "application/json", strings.NewReader(`{"maxSpeedFactor": 3, "fieldOfView": true}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/tuning", "application/json", strings.NewReader(`{"maxSpeed": 3}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "unknown field")

	resp, err = http.Post(ts.URL+"/respawn", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/respawn")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServer_WebsocketStream(t *testing.T) {
	s, ts, _ := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return s.Hub().Len() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, s.Publish(&pb.WorldSnapshot{Frame: 42, Agents: []*pb.AgentState{{Id: "a"}}}))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	kind, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, kind)
	snap := &pb.WorldSnapshot{}
	require.NoError(t, protojson.Unmarshal(data, snap))
	assert.Equal(t, uint64(42), snap.GetFrame())
	assert.Equal(t, "a", snap.GetAgents()[0].GetId())

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return s.Hub().Len() == 0 }, time.Second, 5*time.Millisecond,
		"closing the socket removes the watcher")
}

func TestServer_RunPublishesTicks(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.NumAgents = 10
	engine, err := simulation.Start(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer func() { _ = engine.Stop(context.Background()) }()

	s := NewServer(engine, 200)
	watcher := s.Hub().Add()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()

	select {
	case frame := <-watcher.Frames():
		snap := &pb.WorldSnapshot{}
		require.NoError(t, protojson.Unmarshal(frame, snap))
		assert.NotZero(t, snap.GetFrame())
	case <-time.After(3 * time.Second):
		t.Fatal("no frame published")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not stop")
	}
}

func TestHub_DropsForSlowWatchers(t *testing.T) {
	h := NewHub()
	w := h.Add()
	for i := 0; i < watcherBuffer+3; i++ {
		h.Broadcast([]byte{byte(i)})
	}
	assert.Len(t, w.frames, watcherBuffer)
	assert.Equal(t, []byte{0}, <-w.Frames(), "the oldest frames are kept")
	h.Remove(w.ID())
	assert.Zero(t, h.Len())
}
