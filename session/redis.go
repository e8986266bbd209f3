package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisOptions struct {
	Name   string
	MaxAge time.Duration
	Secure bool
	Prefix string
}

// RedisStore keeps session values in a redis hash; the cookie only carries
// the session id.
type RedisStore struct {
	client *redis.Client
	opts   RedisOptions
}

func NewRedisStore(client *redis.Client, opts RedisOptions) *RedisStore {
	if opts.Prefix == "" {
		opts.Prefix = "session:"
	}
	return &RedisStore{client: client, opts: opts}
}

func (s *RedisStore) key(id string) string {
	return s.opts.Prefix + id
}

func (s *RedisStore) Open(r *http.Request, w http.ResponseWriter) (Session, error) {
	sess := &redisSession{
		store:   s,
		ctx:     r.Context(),
		w:       w,
		values:  map[string][]byte{},
		changed: map[string]bool{},
	}

	if ck, err := r.Cookie(s.opts.Name); err == nil {
		if id, err := uuid.Parse(ck.Value); err == nil {
			stored, err := s.client.HGetAll(r.Context(), s.key(id.String())).Result()
			if err != nil && !errors.Is(err, redis.Nil) {
				return nil, fmt.Errorf("load session: %w", err)
			}
			if len(stored) > 0 {
				sess.id = id.String()
				for k, v := range stored {
					sess.values[k] = []byte(v)
				}
			}
		}
	}
	if sess.id == "" {
		sess.id = uuid.NewString()
		sess.isNew = true
	}
	return sess, nil
}

type redisSession struct {
	store   *RedisStore
	ctx     context.Context
	w       http.ResponseWriter
	id      string
	isNew   bool
	values  map[string][]byte
	changed map[string]bool
}

func (s *redisSession) Get(key string) ([]byte, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *redisSession) Set(key string, value []byte) error {
	s.values[key] = value
	s.changed[key] = true
	return nil
}

// Save writes changed values, refreshes the TTL and reissues the cookie.
func (s *redisSession) Save() error {
	key := s.store.key(s.id)
	ttl := s.store.opts.MaxAge

	_, err := s.store.client.TxPipelined(s.ctx, func(pipe redis.Pipeliner) error {
		for k := range s.changed {
			pipe.HSet(s.ctx, key, k, s.values[k])
		}
		if ttl > 0 {
			pipe.Expire(s.ctx, key, ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session %s: %w", s.id, err)
	}
	s.changed = map[string]bool{}

	http.SetCookie(s.w, &http.Cookie{
		Name:     s.store.opts.Name,
		Value:    s.id,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   s.store.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
