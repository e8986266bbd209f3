package session

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const contextKey = "session"

var ErrNoSession = errors.New("session: no session opened for this request")

// Session is the per-request view of one visitor's session state. Values
// written with Set reach the client or backend only when Save is called.
type Session interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Save() error
}

// Store opens the session that belongs to a request.
type Store interface {
	Open(r *http.Request, w http.ResponseWriter) (Session, error)
}

// Middleware opens the request's session and puts it on the gin context.
func Middleware(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := store.Open(c.Request, c.Writer)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to open session"})
			return
		}
		c.Set(contextKey, sess)
		c.Next()
	}
}

func FromContext(c *gin.Context) (Session, error) {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil, ErrNoSession
	}
	sess, ok := v.(Session)
	if !ok {
		return nil, ErrNoSession
	}
	return sess, nil
}
