package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Identity is the caller derived from the Authorization header. The token is
// trusted to be the caller id; this is not a cryptographic verification.
type Identity struct {
	ID string
}

// Auth binds the caller identity from the Authorization header, accepting
// both "Bearer <token>" and a bare "<token>". It never rejects a request:
// a missing or empty token just leaves the request anonymous, and the
// owner-gated routes decide what anonymous callers may do.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.Split(header, " ")
		token := parts[0]
		if len(parts) == 2 {
			token = parts[1]
		}
		if token == "" {
			c.Next()
			return
		}

		c.Set(identityKey, Identity{ID: token})
		c.Next()
	}
}

// CurrentIdentity returns the caller bound by Auth, if any.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	ident, ok := v.(Identity)
	return ident, ok
}
