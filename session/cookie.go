package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

type CookieOptions struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// CookieStore keeps the whole session in a signed cookie.
type CookieStore struct {
	name  string
	store *sessions.CookieStore
}

func NewCookieStore(secret []byte, opts CookieOptions) *CookieStore {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(opts.MaxAge / time.Second),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(store.Options.MaxAge)
	return &CookieStore{name: opts.Name, store: store}
}

func (s *CookieStore) Open(r *http.Request, w http.ResponseWriter) (Session, error) {
	// A cookie that fails to decode (rotated secret, tampering) yields a fresh session.
	sess, err := s.store.Get(r, s.name)
	if sess == nil {
		return nil, fmt.Errorf("open cookie session: %w", err)
	}
	return &cookieSession{sess: sess, r: r, w: w}, nil
}

type cookieSession struct {
	sess *sessions.Session
	r    *http.Request
	w    http.ResponseWriter
}

func (s *cookieSession) Get(key string) ([]byte, bool, error) {
	v, ok := s.sess.Values[key]
	if !ok {
		return nil, false, nil
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, false, fmt.Errorf("session value %q has type %T", key, v)
	}
	return b, true, nil
}

func (s *cookieSession) Set(key string, value []byte) error {
	s.sess.Values[key] = value
	return nil
}

func (s *cookieSession) Save() error {
	return s.sess.Save(s.r, s.w)
}
