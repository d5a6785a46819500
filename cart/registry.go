package cart

import (
	"net/http"
	"sync"
)

// Carts hands out one Store per session id. Sessions are identified by the
// X-Session-ID header or a "sid" cookie; requests carrying neither share a
// single process-wide cart, matching the one-browser-session model. Carts
// live only in memory and die with the process.
type Carts struct {
	mu       sync.Mutex
	sessions map[string]*Store
	fallback *Store
}

func NewCarts() *Carts {
	return &Carts{
		sessions: make(map[string]*Store),
		fallback: NewStore(),
	}
}

// Sessions is the process-wide registry used by the HTTP handlers.
var Sessions = NewCarts()

// Session returns the store for the given session id, creating it on first
// use. An empty id returns the shared fallback store.
func (c *Carts) Session(id string) *Store {
	if id == "" {
		return c.fallback
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.sessions[id]; ok {
		return s
	}
	s := NewStore()
	c.sessions[id] = s
	return s
}

// Drop discards a session's cart entirely.
func (c *Carts) Drop(id string) {
	if id == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, id)
}

// SessionID extracts the cart session id from a request.
func SessionID(r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	if ck, err := r.Cookie("sid"); err == nil {
		return ck.Value
	}
	return ""
}
