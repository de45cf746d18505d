package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const wsWriteTimeout = 5 * time.Second

// LiveUpdate is a push frame from the backend's /ws channel. The backend
// sends task_update in reply to a subscribe and task_complete when a workflow
// finishes; polling stays the source of truth in between.
type LiveUpdate struct {
	Type     string     `json:"type"` // "task_update" or "task_complete"
	TaskID   string     `json:"task_id"`
	Status   TaskStatus `json:"status"`
	Progress float64    `json:"progress,omitempty"`
	Logs     []LogEntry `json:"logs,omitempty"`
}

type wsSubscribe struct {
	Type   string `json:"type"`
	TaskID string `json:"task_id"`
}

// LiveClient holds one WebSocket connection to the backend.
type LiveClient struct {
	conn    *websocket.Conn
	updates chan LiveUpdate

	mu     sync.Mutex // guards writes; gorilla allows one concurrent writer
	closed bool
}

// DialLive connects to the backend's WebSocket endpoint as clientID and
// starts the read pump. Callers must drain Updates until it is closed.
func DialLive(ctx context.Context, baseURL, clientID string) (*LiveClient, error) {
	wsURL := wsEndpoint(baseURL, clientID)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", wsURL, err)
	}

	lc := &LiveClient{
		conn:    conn,
		updates: make(chan LiveUpdate, 16),
	}
	go lc.readPump()
	return lc, nil
}

// Updates returns the channel of push frames. It is closed when the
// connection drops or Close is called.
func (lc *LiveClient) Updates() <-chan LiveUpdate { return lc.updates }

// Subscribe asks the backend to push updates for the given task.
func (lc *LiveClient) Subscribe(taskID string) error {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	if lc.closed {
		return fmt.Errorf("subscribe: connection closed")
	}
	data, err := json.Marshal(wsSubscribe{Type: "subscribe", TaskID: taskID})
	if err != nil {
		return err
	}
	lc.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return lc.conn.WriteMessage(websocket.TextMessage, data)
}

// Close tears down the connection.
func (lc *LiveClient) Close() error {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	if lc.closed {
		return nil
	}
	lc.closed = true
	return lc.conn.Close()
}

func (lc *LiveClient) readPump() {
	defer func() {
		lc.Close()
		close(lc.updates)
	}()

	for {
		_, raw, err := lc.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure,
			) {
				log.Printf("[ws] read error: %v", err)
			}
			return
		}

		var upd LiveUpdate
		if err := json.Unmarshal(raw, &upd); err != nil {
			log.Printf("[ws] malformed frame: %v", err)
			continue
		}

		select {
		case lc.updates <- upd:
		default:
			// Slow consumer; drop the frame. The poller will catch up.
		}
	}
}

// wsEndpoint converts the HTTP base URL into the ws:// endpoint for clientID.
func wsEndpoint(baseURL, clientID string) string {
	u := strings.TrimRight(baseURL, "/")
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	return u + "/ws/" + clientID
}
