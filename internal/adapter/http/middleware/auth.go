package middleware

import (
	"net/http"
	"os"
	"strings"

	"mecstock/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ctxRoleKey = "auth_role"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or malformed authorization header", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role", http.StatusForbidden)
)

// Auth validates a Bearer JWT signed with JWT_SECRET (HS256) and stores the
// token's role claim in the request context. When JWT_SECRET is unset the
// middleware is a no-op, so local development works without tokens.
func Auth() gin.HandlerFunc {
	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		if role, ok := claims["role"].(string); ok {
			c.Set(ctxRoleKey, role)
		}
		c.Next()
	}
}

// RequireRole gates a route on the role claim set by Auth. Like Auth, it is
// a no-op when JWT_SECRET is unset.
func RequireRole(role string) gin.HandlerFunc {
	if os.Getenv("JWT_SECRET") == "" {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if got, ok := c.Get(ctxRoleKey); !ok || got != role {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}
