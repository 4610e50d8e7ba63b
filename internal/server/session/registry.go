// Package session tracks which authenticated user is attached to which live
// connection. The registry is presence bookkeeping only: request routing is
// purely request/response and never consults it.
package session

import (
	"net"
	"sync"
	"time"
)

// Session is one live login: user identity plus the connection it arrived on.
type Session struct {
	UserID     string
	Username   string
	Conn       net.Conn
	LoggedInAt time.Time
}

// Registry is the process-wide user→connection map. All methods are safe
// for concurrent use.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Bind records a successful login. A repeated login for the same user
// overwrites the previous entry, so the newest connection wins.
func (r *Registry) Bind(userID, username string, conn net.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[userID] = &Session{
		UserID:     userID,
		Username:   username,
		Conn:       conn,
		LoggedInAt: time.Now(),
	}
}

// Release drops every session still owned by conn. Called on disconnect;
// an entry already overwritten by a newer login on another connection is
// left alone.
func (r *Registry) Release(conn net.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for userID, s := range r.sessions {
		if s.Conn == conn {
			delete(r.sessions, userID)
		}
	}
}

// Get returns the live session for userID, if any.
func (r *Registry) Get(userID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[userID]
	return s, ok
}

// Count returns the number of logged-in users.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
