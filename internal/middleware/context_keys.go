package middleware

import "github.com/gin-gonic/gin"

const identityCtxKey = contextKey("identity")

// Identity is the authenticated caller stored in the request context.
type Identity struct {
	UserID int64
	Role   string
}

// GetIdentityFromContext retrieves the authenticated caller from the Gin
// context. It returns the identity and a boolean indicating if it was found.
func GetIdentityFromContext(c *gin.Context) (Identity, bool) {
	val := c.Request.Context().Value(identityCtxKey)
	if val == nil {
		return Identity{}, false
	}
	identity, ok := val.(Identity)
	return identity, ok
}
