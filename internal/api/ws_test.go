package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestWSEndpoint(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://localhost:8000", "ws://localhost:8000/ws/main"},
		{"http://localhost:8000/", "ws://localhost:8000/ws/main"},
		{"https://hive.example.com", "wss://hive.example.com/ws/main"},
	}
	for _, tt := range tests {
		if got := wsEndpoint(tt.base, "main"); got != tt.want {
			t.Errorf("wsEndpoint(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}

func TestLiveClient_SubscribeAndReceive(t *testing.T) {
	upgrader := websocket.Upgrader{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws/tester" {
			t.Errorf("path = %q", r.URL.Path)
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		// Echo a task_update for every subscribe, like the backend does.
		for {
			var msg wsSubscribe
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			if msg.Type != "subscribe" {
				continue
			}
			out, _ := json.Marshal(LiveUpdate{
				Type: "task_update", TaskID: msg.TaskID,
				Status: TaskRunning, Progress: 33,
			})
			conn.WriteMessage(websocket.TextMessage, out)
		}
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lc, err := DialLive(ctx, ts.URL, "tester")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer lc.Close()

	if err := lc.Subscribe("task_9"); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	select {
	case upd := <-lc.Updates():
		if upd.TaskID != "task_9" || upd.Progress != 33 {
			t.Errorf("update = %+v", upd)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no update received")
	}
}

func TestLiveClient_UpdatesClosedOnServerDrop(t *testing.T) {
	upgrader := websocket.Upgrader{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn.Close() // drop immediately
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lc, err := DialLive(ctx, ts.URL, "tester")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	select {
	case _, ok := <-lc.Updates():
		if ok {
			t.Error("expected closed channel, got an update")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("updates channel never closed")
	}
}
