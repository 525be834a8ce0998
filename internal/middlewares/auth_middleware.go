package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"admin_backend/internal/responses"
	"admin_backend/internal/utils"
)

const SubjectKey = "subject"

// Authenticate accepts "Bearer <token>" signed with secret and stores the
// token subject under SubjectKey.
func Authenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Abort(c, http.StatusUnauthorized, "Missing Authorization header")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			responses.Abort(c, http.StatusUnauthorized, "Invalid Authorization format")
			return
		}

		claims, err := utils.VerifyJWT(parts[1], secret)
		if err != nil {
			responses.Abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Next()
	}
}
