package middleware

import (
	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

// OptionalFirebaseAuth sets firebase_uid when a valid token is present but
// never rejects the request. Rendering works logged out; only sync needs an
// identity.
func OptionalFirebaseAuth(authClient *auth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" || authClient == nil {
			c.Next()
			return
		}

		decodedToken, err := authClient.VerifyIDToken(c.Request.Context(), token)
		if err == nil {
			c.Set("firebase_uid", decodedToken.UID)
		}
		c.Next()
	}
}
