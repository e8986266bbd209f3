package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const memorySweepInterval = time.Minute

type MemoryOptions struct {
	Name string
	// MaxAge is how long a session lives after its last save. Zero keeps
	// sessions for the life of the process.
	MaxAge time.Duration
}

// MemoryStore keeps sessions in process memory. It backs tests and single
// instance development runs. Each save pushes a session's expiry MaxAge into
// the future; expired entries are swept on save.
type MemoryStore struct {
	opts MemoryOptions
	now  func() time.Time

	mu        sync.Mutex
	sessions  map[string]memoryEntry
	lastSweep time.Time
}

type memoryEntry struct {
	values    map[string][]byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

func NewMemoryStore(opts MemoryOptions) *MemoryStore {
	return &MemoryStore{opts: opts, now: time.Now, sessions: map[string]memoryEntry{}}
}

func (s *MemoryStore) Open(r *http.Request, w http.ResponseWriter) (Session, error) {
	sess := &memorySession{store: s, w: w, values: map[string][]byte{}}
	if ck, err := r.Cookie(s.opts.Name); err == nil {
		s.mu.Lock()
		now := s.now()
		stored, ok := s.sessions[ck.Value]
		switch {
		case ok && stored.expired(now):
			delete(s.sessions, ck.Value)
		case ok:
			sess.id = ck.Value
			for k, v := range stored.values {
				sess.values[k] = append([]byte(nil), v...)
			}
		}
		s.mu.Unlock()
	}
	if sess.id == "" {
		sess.id = uuid.NewString()
	}
	return sess, nil
}

// Len reports how many live sessions are held.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for _, e := range s.sessions {
		if !e.expired(now) {
			n++
		}
	}
	return n
}

func (s *MemoryStore) expiry(now time.Time) time.Time {
	if s.opts.MaxAge <= 0 {
		return time.Time{}
	}
	return now.Add(s.opts.MaxAge)
}

// sweep drops expired sessions. Callers hold s.mu.
func (s *MemoryStore) sweep(now time.Time) {
	if s.opts.MaxAge <= 0 || now.Sub(s.lastSweep) < memorySweepInterval {
		return
	}
	s.lastSweep = now
	for id, e := range s.sessions {
		if e.expired(now) {
			delete(s.sessions, id)
		}
	}
}

type memorySession struct {
	store  *MemoryStore
	w      http.ResponseWriter
	id     string
	values map[string][]byte
}

func (s *memorySession) Get(key string) ([]byte, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memorySession) Set(key string, value []byte) error {
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *memorySession) Save() error {
	snapshot := make(map[string][]byte, len(s.values))
	for k, v := range s.values {
		snapshot[k] = append([]byte(nil), v...)
	}
	s.store.mu.Lock()
	now := s.store.now()
	s.store.sweep(now)
	s.store.sessions[s.id] = memoryEntry{values: snapshot, expiresAt: s.store.expiry(now)}
	s.store.mu.Unlock()

	ck := &http.Cookie{Name: s.store.opts.Name, Value: s.id, Path: "/", HttpOnly: true}
	if s.store.opts.MaxAge > 0 {
		ck.MaxAge = int(s.store.opts.MaxAge / time.Second)
	}
	http.SetCookie(s.w, ck)
	return nil
}
