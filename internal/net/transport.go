package net

import (
	"log"
	"sync"

	"ShapeBoard/internal/export"
	"ShapeBoard/internal/state"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Session is one browser tab drawing on its own board.
type Session struct {
	ID       string
	Board    *state.Board
	importer *export.Importer
	conn     *websocket.Conn
}

func newSession(conn *websocket.Conn, name string) *Session {
	board := state.NewBoard(name)
	return &Session{
		ID:       uuid.NewString(),
		Board:    board,
		importer: export.NewImporter(board),
		conn:     conn,
	}
}

// SessionManager tracks the live sessions so their drawings can be
// downloaded over plain HTTP.
type SessionManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewSessionManager creates a new manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

// Add registers a session that just connected.
func (sm *SessionManager) Add(s *Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sessions[s.ID] = s
	log.Printf("[SERVER] Session %s opened from %s", s.ID, s.conn.RemoteAddr())
}

// Remove forgets a session once its socket is gone.
func (sm *SessionManager) Remove(s *Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, s.ID)
	log.Printf("[SERVER] Session %s closed", s.ID)
}

// Get looks a session up by id.
func (sm *SessionManager) Get(id string) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	s, ok := sm.sessions[id]
	return s, ok
}

// Len returns the number of live sessions.
func (sm *SessionManager) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}
