package web

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/state"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Same-origin embedding only; CORS posture matches the JSON API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWS streams state snapshots to the page so download progress and
// selection changes appear without polling.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log().Warn("ws_upgrade_failed", "error", err)
		return
	}
	defer conn.Close()

	// Coalescing buffer: a burst of store writes keeps only the newest
	// snapshot; the writer below never blocks a store mutation.
	updates := make(chan state.Snapshot, 1)
	push := func(snap state.Snapshot) {
		for {
			select {
			case updates <- snap:
				return
			default:
				select {
				case <-updates:
				default:
				}
			}
		}
	}

	unsub := s.Composer.State.Subscribe(push)
	defer unsub()

	push(s.Composer.State.Snapshot())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case snap := <-updates:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteJSON(snap); err != nil {
				return
			}
		}
	}
}
