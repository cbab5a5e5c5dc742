package herald

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// SessionTTL is how long a pending selection survives without a form
// submission.
const SessionTTL = 300 * time.Second

// SessionKind separates pending selections of different command families.
type SessionKind string

const (
	KindSay      SessionKind = "say"
	KindAnnounce SessionKind = "announce"
)

// Kinds lists every session kind herald serves.
func Kinds() []SessionKind {
	return []SessionKind{KindSay, KindAnnounce}
}

// Session is a channel selection waiting for its form submission.
type Session struct {
	ActorID   string
	ChannelID string
	GuildID   string
	Options   map[string]string
	CreatedAt time.Time
}

// SessionStore holds at most one Session per actor. Put, Take and Sweep
// serialize on a single mutex, so a session is observed by exactly one of
// Take or Sweep.
type SessionStore struct {
	clock clock.Clock

	mu       sync.Mutex
	sessions map[string]Session
}

// NewSessionStore creates an empty store stamping sessions with c.
func NewSessionStore(c clock.Clock) *SessionStore {
	return &SessionStore{
		clock:    c,
		sessions: make(map[string]Session),
	}
}

// Put records a selection for actorID, replacing any pending one.
func (s *SessionStore) Put(actorID, channelID, guildID string, options map[string]string) Session {
	sess := Session{
		ActorID:   actorID,
		ChannelID: channelID,
		GuildID:   guildID,
		Options:   options,
		CreatedAt: s.clock.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[actorID] = sess
	return sess
}

// Take removes and returns the session for actorID.
func (s *SessionStore) Take(actorID string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[actorID]
	if ok {
		delete(s.sessions, actorID)
	}
	return sess, ok
}

// Sweep removes every session older than ttl at now and reports how many
// were removed.
func (s *SessionStore) Sweep(ttl time.Duration, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.CreatedAt) > ttl {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Len returns the number of pending sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sessions owns one SessionStore per SessionKind.
type Sessions struct {
	clock  clock.Clock
	stores map[SessionKind]*SessionStore
}

// NewSessions creates a store for every kind in Kinds.
func NewSessions(c clock.Clock) *Sessions {
	s := &Sessions{
		clock:  c,
		stores: make(map[SessionKind]*SessionStore),
	}
	for _, k := range Kinds() {
		s.stores[k] = NewSessionStore(c)
	}
	return s
}

// Store returns the store for kind, or nil if kind is unknown.
func (s *Sessions) Store(kind SessionKind) *SessionStore {
	return s.stores[kind]
}

// Sweep sweeps every store against the current clock time.
func (s *Sessions) Sweep(ttl time.Duration) int {
	now := s.clock.Now()
	n := 0
	for _, st := range s.stores {
		n += st.Sweep(ttl, now)
	}
	return n
}

// Clock returns the clock sessions are stamped with.
func (s *Sessions) Clock() clock.Clock {
	return s.clock
}
