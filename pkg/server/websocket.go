package server

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/treestore-dev/treestore/pkg/store"
)

const (
	// subscribeHandshakeTimeout bounds the wait for the client's path list.
	subscribeHandshakeTimeout = 10 * time.Second

	// eventBuffer is the per-connection outbound queue. A slow client drops
	// events rather than stalling the store's flush pass.
	eventBuffer = 64

	writeTimeout = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// subscribeRequest is the first message a client sends after the upgrade.
// An empty path list subscribes to whole-tree flush events.
type subscribeRequest struct {
	Paths []string `json:"paths"`
}

// changeEvent reports that the value at a path changed across a flush.
type changeEvent struct {
	Type   string `json:"type"` // always "change"
	Path   string `json:"path"`
	Old    any    `json:"old"`
	Value  any    `json:"value"`
	Absent bool   `json:"absent,omitempty"`
}

// flushEvent reports one whole-tree flush.
type flushEvent struct {
	Type string `json:"type"` // always "flush"
	Seq  uint64 `json:"seq"`
}

// handleSubscribe upgrades the connection and streams store events.
//
// Store listeners run inside flush passes and must stay cheap, so they only
// enqueue onto the connection's buffered channel; the handler goroutine does
// the actual writes.
func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	clientID := uuid.NewString()
	logger := s.logger.With("client_id", clientID)

	conn.SetReadDeadline(time.Now().Add(subscribeHandshakeTimeout))
	var req subscribeRequest
	if err := conn.ReadJSON(&req); err != nil {
		logger.Warn("subscribe handshake failed", "error", err)
		return
	}
	conn.SetReadDeadline(time.Time{})

	_, span := s.tracer.Start(r.Context(), "store.subscribe")
	defer span.End()

	events := make(chan any, eventBuffer)
	done := make(chan struct{})

	push := func(ev any) {
		select {
		case <-done:
		case events <- ev:
		default:
			logger.Warn("subscriber event dropped, client too slow")
		}
	}

	var stops []func()
	if len(req.Paths) == 0 {
		var seq atomic.Uint64
		stops = append(stops, s.store.SubscribeWhole(func() {
			push(flushEvent{Type: "flush", Seq: seq.Add(1)})
		}))
	} else {
		for _, path := range req.Paths {
			path := path
			stops = append(stops, s.store.SubscribePath(path, func(old, next any) {
				ev := changeEvent{Type: "change", Path: path, Old: old, Value: next}
				if store.IsAbsent(next) {
					ev.Value, ev.Absent = nil, true
				}
				if store.IsAbsent(old) {
					ev.Old = nil
				}
				push(ev)
			}))
		}
	}

	defer func() {
		close(done)
		for _, stop := range stops {
			stop()
		}
	}()

	logger.Info("subscriber connected", "paths", req.Paths)

	// Reader goroutine: its only job is noticing the client going away.
	readerClosed := make(chan struct{})
	go func() {
		defer close(readerClosed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(ev); err != nil {
				logger.Warn("subscriber write failed", "error", err)
				return
			}
		case <-readerClosed:
			logger.Info("subscriber disconnected")
			return
		case <-r.Context().Done():
			return
		}
	}
}
