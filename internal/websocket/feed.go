package websocket

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/ottodot/mathpal-backend/internal/model"
)

// Feed fans newly created problem sessions out to connected clients, so a
// history view updates without remounting.
type Feed struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	log   zerolog.Logger
}

func NewFeed(log zerolog.Logger) *Feed {
	return &Feed{
		conns: make(map[*websocket.Conn]struct{}),
		log:   log.With().Str("component", "session_feed").Logger(),
	}
}

// Register adds a connection to the feed.
func (f *Feed) Register(conn *websocket.Conn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conns[conn] = struct{}{}
}

// Unregister removes a connection from the feed.
func (f *Feed) Unregister(conn *websocket.Conn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.conns, conn)
}

// BroadcastSession pushes a session-created event to every connected
// client. Dead connections are dropped from the feed.
func (f *Feed) BroadcastSession(s model.ProblemSession) {
	event := SessionCreatedEvent{
		Event:   EventSessionCreated,
		Session: s,
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.conns {
		if err := WriteTyped(conn, event); err != nil {
			f.log.Debug().Err(err).Msg("dropping dead feed connection")
			conn.Close()
			delete(f.conns, conn)
		}
	}
}

// Count returns the number of connected clients.
func (f *Feed) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.conns)
}
